package glass

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/glassexplorer/glassexplorer/pkg/chroma2tcell"
	"github.com/glassexplorer/glassexplorer/pkg/gitutils"
	"github.com/glassexplorer/glassexplorer/pkg/logging"
	"github.com/glassexplorer/glassexplorer/pkg/viewers"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const previewTitle = "Vista Previa"

var (
	colorizeFile = chroma2tcell.ColorizeFile
	getGitStatus = gitutils.GetGitStatus
	getImageMeta = viewers.GetImageMeta
	escape       = tview.Escape
)

type previewPanel struct {
	*tview.TextView
	boxed *boxed
}

func newPreviewPanel() *previewPanel {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetScrollable(true)
	return &previewPanel{
		TextView: tv,
		boxed:    newBoxed(tv, previewTitle, WithLeftBorder(), WithRightBorder()),
	}
}

func (p *previewPanel) Draw(screen tcell.Screen) {
	p.boxed.Draw(screen)
}

// setText replaces the preview with text that may carry colour tags.
func (p *previewPanel) setText(text string) {
	p.SetText(text)
	p.ScrollToBeginning()
}

func (e *Explorer) selectPath(st *State, path string) {
	st.SelectedPath = path
	e.showPreview(path)
}

func (e *Explorer) showPreview(path string) {
	r := viewers.PreviewN(path, e.opts.PreviewChars)
	switch r.Kind {
	case viewers.KindDirectory:
		text := escape(r.String())
		if status := getGitStatus(path, false); status != nil {
			text += "\n\n" + status.String()
		}
		e.preview.setText(text)
	case viewers.KindText:
		e.preview.setText(e.renderText(path, r.Text))
	default:
		logging.L().Warn("preview failed", zap.String("path", path), zap.String("reason", r.Reason))
		e.preview.setText(escape(r.String()))
	}
}

func (e *Explorer) renderText(path, text string) string {
	if viewers.IsImageFile(path) {
		if meta, err := getImageMeta(path); err == nil {
			return "[gray]Imagen " + escape(meta.String()) + "[-]\nPulsa i para verla como ASCII."
		}
	}
	colorized, _, err := colorizeFile(filepath.Base(path), text)
	if err != nil {
		logging.L().Debug("colorize failed", zap.String("path", path), zap.Error(err))
	}
	return colorized
}
