package glass

import (
	"fmt"
	"strings"

	"github.com/glassexplorer/glassexplorer/pkg/archive"
	"github.com/glassexplorer/glassexplorer/pkg/asciiart"
	"github.com/glassexplorer/glassexplorer/pkg/devices"
	"github.com/glassexplorer/glassexplorer/pkg/fsutils"
	"github.com/glassexplorer/glassexplorer/pkg/logging"
	"github.com/glassexplorer/glassexplorer/pkg/viewers"
	"go.uber.org/zap"
)

var (
	archiveCompress = archive.Compress
	archiveExtract  = archive.Extract
	renderASCII     = asciiart.Render
)

// Every action reports its outcome in the status log; none of them returns an error.

func (e *Explorer) quit() {
	logging.L().Info("quit")
	e.app.Stop()
}

// refresh makes dirPath the tree root. The selection survives only while it is still
// displayed under the same root.
func (e *Explorer) refresh(st *State, dirPath string) {
	if dirPath == "" {
		return
	}
	tree, err := e.nav.Refresh(e.ctx, dirPath)
	if err != nil {
		e.fail("refresh", dirPath, "Error: %v", err)
		return
	}
	newPath := e.nav.CurrentPath()
	if newPath != st.CurrentPath || tree.Find(st.SelectedPath) == nil {
		st.SelectedPath = ""
	}
	st.CurrentPath = newPath
	e.tree.render(tree, st.SelectedPath)
	e.header.setPath(newPath)
	logging.L().Debug("refreshed", zap.String("path", newPath), zap.Int("children", len(tree.Root.Children)))
}

// open makes a selected directory the new root, or previews a selected file.
func (e *Explorer) open(st *State) {
	switch {
	case st.SelectedPath == "":
		return
	case fsutils.IsDir(st.SelectedPath):
		e.refresh(st, st.SelectedPath)
	default:
		e.showPreview(st.SelectedPath)
	}
}

func (e *Explorer) goUp(st *State) {
	before := e.nav.CurrentPath()
	tree, err := e.nav.GoUp(e.ctx)
	if err != nil {
		e.fail("go up", before, "Error: %v", err)
		return
	}
	if e.nav.CurrentPath() == before {
		return
	}
	st.CurrentPath = e.nav.CurrentPath()
	st.SelectedPath = ""
	e.tree.render(tree, "")
	e.header.setPath(st.CurrentPath)
}

func (e *Explorer) compress(st *State) {
	src := st.Target()
	if src == "" {
		e.log("Nada que comprimir.")
		return
	}
	dest, err := archiveCompress(e.ctx, src)
	if err != nil {
		e.fail("compress", src, "Error al comprimir: %v", err)
		return
	}
	e.log(fmt.Sprintf("¡Comprimido a %s!", dest))
	logging.L().Info("compressed", zap.String("src", src), zap.String("dest", dest))
	e.refresh(st, st.CurrentPath)
}

func (e *Explorer) extract(st *State) {
	src := st.SelectedPath
	if src == "" || archive.DetectFormat(src) == archive.FormatUnknown {
		e.log("Selecciona un archivo .zip o .tar.gz para extraer.")
		return
	}
	dest, err := archiveExtract(e.ctx, src)
	if err != nil {
		e.fail("extract", src, "Error al extraer: %v", err)
		return
	}
	e.log(fmt.Sprintf("¡Extraído en %s!", dest))
	logging.L().Info("extracted", zap.String("src", src), zap.String("dest", dest))
	e.refresh(st, st.CurrentPath)
}

func (e *Explorer) toggleBrightness(_ *State) {
	level, err := devices.ToggleBrightness(e.opts.Brightness)
	if err != nil {
		e.fail("brightness", "", "Brillo no soportado: %v", err)
		return
	}
	e.log(fmt.Sprintf("Brillo ajustado a %d%%.", level))
	logging.L().Info("brightness set", zap.Int("level", level))
}

func (e *Explorer) scanWiFi(_ *State) {
	ssids, err := e.opts.WiFi.Scan(e.ctx)
	if err != nil {
		e.fail("wifi", "", "WiFi no soportado: %v", err)
		return
	}
	if len(ssids) == 0 {
		e.log("No se encontraron redes.")
	} else {
		e.log("Redes encontradas: " + strings.Join(ssids, ", "))
	}
	logging.L().Info("wifi scanned", zap.Strings("ssids", ssids))
}

func (e *Explorer) showASCII(st *State) {
	if !viewers.IsImageFile(st.SelectedPath) {
		e.log("Selecciona una imagen para ver como ASCII.")
		return
	}
	art, err := renderASCII(st.SelectedPath, e.opts.AsciiWidth)
	if err != nil {
		e.fail("ascii", st.SelectedPath, "No se pudo mostrar la imagen ASCII: %v", err)
		return
	}
	e.preview.setText(escape(art))
}

func (e *Explorer) log(msg string) {
	e.status.append(msg)
}

// fail reports err in the status log and as a structured record.
func (e *Explorer) fail(op, path, format string, err error) {
	e.log(fmt.Sprintf(format, err))
	logging.L().Warn(op+" failed", zap.String("path", path), zap.Error(err))
}
