package glass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// footer lists the hotkeys. Clicking an entry runs it like the key would.
type footer struct {
	*tview.TextView
	commands []command
}

func newFooter(e *Explorer) *footer {
	f := &footer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
		commands: e.commands(),
	}
	f.SetHighlightedFunc(f.highlighted)
	f.SetText(f.render())
	return f
}

func (f *footer) render() string {
	const separator = "┊"
	items := make([]string, len(f.commands))
	for i, c := range f.commands {
		items[i] = fmt.Sprintf(`["%d"][%s]%s[-] %s[""]`, i, Style.HotkeyColor, c.key, c.label)
	}
	return strings.Join(items, separator)
}

func (f *footer) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	i, err := strconv.Atoi(added[0])
	if err != nil || i < 0 || i >= len(f.commands) {
		return
	}
	f.commands[i].action()
	// Clear the highlight so the next click on the same entry is reported as added again.
	f.Highlight()
}
