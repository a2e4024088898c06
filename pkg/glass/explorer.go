// Package glass is the interactive shell: a tree of the local filesystem with
// a preview pane, an action bar and a status log.
package glass

import (
	"context"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/glassexplorer/glassexplorer/pkg/asciiart"
	"github.com/glassexplorer/glassexplorer/pkg/devices"
	"github.com/glassexplorer/glassexplorer/pkg/files"
	"github.com/glassexplorer/glassexplorer/pkg/files/osfile"
	"github.com/glassexplorer/glassexplorer/pkg/navtree"
	"github.com/glassexplorer/glassexplorer/pkg/viewers"
	"github.com/rivo/tview"
)

const (
	AppTitle       = "Glass Explorer - Terminal File Manager"
	welcomeMessage = "Bienvenido a Glass Explorer. Usa las teclas indicadas abajo."
)

// Options configures an Explorer. Zero values fall back to the OS-backed defaults.
type Options struct {
	StartDir     string
	AsciiWidth   int
	PreviewChars int
	Store        files.Store
	Brightness   devices.Brightness
	WiFi         devices.WiFi
}

func (o Options) withDefaults() Options {
	if o.StartDir == "" {
		o.StartDir = "~"
	}
	if o.AsciiWidth <= 0 {
		o.AsciiWidth = asciiart.DefaultWidth
	}
	if o.PreviewChars <= 0 {
		o.PreviewChars = viewers.MaxPreviewChars
	}
	if o.Store == nil {
		o.Store = osfile.NewStore()
	}
	if o.Brightness == nil {
		o.Brightness = devices.NewBacklight()
	}
	if o.WiFi == nil {
		o.WiFi = devices.NetworkManager{}
	}
	return o
}

// Explorer is the root primitive of the application.
type Explorer struct {
	*tview.Flex
	app   App
	ctx   context.Context
	opts  Options
	nav   *navtree.Navigator
	state State

	header  *header
	tree    *treePanel
	preview *previewPanel
	actions *actionsPanel
	status  *statusPanel
	footer  *footer
}

func NewExplorer(app App, o Options) *Explorer {
	o = o.withDefaults()
	e := &Explorer{
		Flex: tview.NewFlex().SetDirection(tview.FlexRow),
		app:  app,
		ctx:  context.Background(),
		opts: o,
		nav:  navtree.NewNavigator(o.Store),
	}
	e.header = newHeader(o.Store.RootTitle(), time.Now)
	e.tree = newTreePanel(e)
	e.preview = newPreviewPanel()
	e.status = newStatusPanel()
	e.actions = newActionsPanel(e)
	e.footer = newFooter(e)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(e.preview, 0, 2, false).
		AddItem(e.actions, e.actions.height(), 0, false).
		AddItem(e.status, 0, 1, false)

	body := tview.NewFlex().
		AddItem(e.tree, 0, 1, true).
		AddItem(right, 0, 1, false)

	e.AddItem(e.header, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(e.footer, 1, 0, false)

	e.SetInputCapture(e.inputCapture)

	e.refresh(&e.state, o.StartDir)
	e.log(welcomeMessage)
	return e
}

// SetupApp wires an Explorer into a tview application.
func SetupApp(app *tview.Application, o Options) *Explorer {
	a := NewApp(app)
	e := NewExplorer(a, o)
	a.EnableMouse(true)
	a.SetRoot(e, true)
	a.SetFocus(e.tree)
	return e
}

// State returns a copy of the navigation state.
func (e *Explorer) State() State {
	return e.state
}

func (e *Explorer) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch ctrlKey(event) {
	case 'b':
		e.toggleBrightness(&e.state)
		return nil
	case 'w':
		e.scanWiFi(&e.state)
		return nil
	}
	switch event.Key() {
	case tcell.KeyF1:
		e.showHelp()
		return nil
	case tcell.KeyTab:
		e.cycleFocus()
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return event
		}
		switch event.Rune() {
		case 'q':
			e.quit()
			return nil
		case 'c':
			e.compress(&e.state)
			return nil
		case 'e':
			e.extract(&e.state)
			return nil
		case 'i':
			e.showASCII(&e.state)
			return nil
		case 'r':
			e.refresh(&e.state, e.state.CurrentPath)
			return nil
		}
	}
	return event
}

// ctrlKey returns the lower-case letter of a Ctrl+letter event, or 0.
// Terminals report these either as control keys or as runes with ModCtrl.
func ctrlKey(event *tcell.EventKey) rune {
	switch event.Key() {
	case tcell.KeyCtrlB:
		return 'b'
	case tcell.KeyCtrlW:
		return 'w'
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModCtrl != 0 {
			return unicode.ToLower(event.Rune())
		}
	}
	return 0
}

func (e *Explorer) cycleFocus() {
	if e.tree.HasFocus() {
		e.app.SetFocus(e.actions.first())
		return
	}
	e.app.SetFocus(e.tree)
}
