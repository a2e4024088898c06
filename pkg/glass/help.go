package glass

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (e *Explorer) showHelp() {
	modal, _, _ := e.createHelpModal()
	e.app.SetRoot(modal, true)
}

func (e *Explorer) helpText() string {
	var sb strings.Builder
	for _, c := range e.commands() {
		_, _ = fmt.Fprintf(&sb, "%-10s %s\n", c.key, c.label)
	}
	sb.WriteString("\nEspacio / ←→  Expandir o plegar carpeta\nTab           Cambiar entre árbol y acciones")
	return sb.String()
}

func (e *Explorer) createHelpModal() (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetText(e.helpText())
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeHelp := func() {
		e.app.SetRoot(e, true)
		e.app.SetFocus(e.tree)
	}
	closeOnKey := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeOnKey)

	button = tview.NewButton("Cerrar").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeOnKey)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true).
		SetTitle(" Glass Explorer - Ayuda ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = tview.NewGrid().
		SetColumns(0, 52, 0).
		SetRows(0, 17, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}
