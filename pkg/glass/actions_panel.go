package glass

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const actionsTitle = "Acciones"

// command is one user action. Its key, its button and its footer entry all run the same func.
type command struct {
	label  string
	key    string
	action func()
}

func (e *Explorer) commands() []command {
	return []command{
		{label: "Comprimir", key: "c", action: func() { e.compress(&e.state) }},
		{label: "Extraer", key: "e", action: func() { e.extract(&e.state) }},
		{label: "WiFi", key: "Ctrl+W", action: func() { e.scanWiFi(&e.state) }},
		{label: "Brillo", key: "Ctrl+B", action: func() { e.toggleBrightness(&e.state) }},
		{label: "Ver Imagen ASCII", key: "i", action: func() { e.showASCII(&e.state) }},
		{label: "Refrescar", key: "r", action: func() { e.refresh(&e.state, e.state.CurrentPath) }},
		{label: "Abrir/Navegar", key: "Enter", action: func() { e.open(&e.state) }},
		{label: "Atrás", key: "Backspace", action: func() { e.goUp(&e.state) }},
		{label: "Ayuda", key: "F1", action: e.showHelp},
		{label: "Salir", key: "q", action: e.quit},
	}
}

const actionColumns = 2

type actionsPanel struct {
	*tview.Grid
	boxed   *boxed
	buttons []*tview.Button
	e       *Explorer
}

func newActionsPanel(e *Explorer) *actionsPanel {
	grid := tview.NewGrid().SetGap(0, 1).SetColumns(0, 0)
	p := &actionsPanel{
		Grid:  grid,
		boxed: newBoxed(grid, actionsTitle, WithLeftBorder(), WithRightBorder()),
		e:     e,
	}
	for i, c := range e.commands() {
		b := tview.NewButton(c.label + " (" + c.key + ")").SetSelectedFunc(c.action)
		b.SetBackgroundColor(Style.ButtonColor)
		b.SetInputCapture(p.buttonInputCapture(i))
		p.buttons = append(p.buttons, b)
		grid.AddItem(b, i/actionColumns, i%actionColumns, 1, 1, 0, 0, false)
	}
	rows := make([]int, p.height()-2)
	for i := range rows {
		rows[i] = 1
	}
	grid.SetRows(rows...)
	return p
}

func (p *actionsPanel) Draw(screen tcell.Screen) {
	p.boxed.Draw(screen)
}

// height is the rows needed for all buttons plus the frame.
func (p *actionsPanel) height() int {
	return (len(p.buttons)+actionColumns-1)/actionColumns + 2
}

func (p *actionsPanel) first() tview.Primitive {
	return p.buttons[0]
}

func (p *actionsPanel) buttonInputCapture(i int) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		next := -1
		switch event.Key() {
		case tcell.KeyRight:
			next = i + 1
		case tcell.KeyLeft:
			next = i - 1
		case tcell.KeyDown:
			next = i + actionColumns
		case tcell.KeyUp:
			next = i - actionColumns
		case tcell.KeyEscape:
			p.e.app.SetFocus(p.e.tree)
			return nil
		default:
			return event
		}
		if next >= 0 && next < len(p.buttons) {
			p.e.app.SetFocus(p.buttons[next])
		}
		return nil
	}
}
