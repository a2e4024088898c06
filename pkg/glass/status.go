package glass

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/glassexplorer/glassexplorer/pkg/fsutils"
	"github.com/rivo/tview"
)

const (
	statusTitle = "Registro"
	maxLogLines = 200
)

// statusPanel is the append-only log of action outcomes.
type statusPanel struct {
	*tview.TextView
	boxed *boxed
	lines []string
}

func newStatusPanel() *statusPanel {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetTextColor(Style.LogColor)
	return &statusPanel{
		TextView: tv,
		boxed:    newBoxed(tv, statusTitle, WithLeftBorder(), WithRightBorder()),
	}
}

func (s *statusPanel) Draw(screen tcell.Screen) {
	s.boxed.Draw(screen)
}

func (s *statusPanel) append(msg string) {
	s.lines = append(s.lines, msg)
	if len(s.lines) > maxLogLines {
		s.lines = s.lines[len(s.lines)-maxLogLines:]
	}
	escaped := make([]string, len(s.lines))
	for i, line := range s.lines {
		escaped[i] = tview.Escape(line)
	}
	s.SetText(strings.Join(escaped, "\n"))
	s.ScrollToEnd()
}

// Lines returns the logged messages, oldest first.
func (s *statusPanel) Lines() []string {
	return append([]string(nil), s.lines...)
}

func (s *statusPanel) last() string {
	if len(s.lines) == 0 {
		return ""
	}
	return s.lines[len(s.lines)-1]
}

// header shows the application title, the current directory, its volume usage and a clock.
type header struct {
	*tview.Box
	host  string
	path  string
	usage string
	now   func() time.Time
}

func newHeader(host string, now func() time.Time) *header {
	return &header{
		Box:  tview.NewBox(),
		host: host,
		now:  now,
	}
}

func (h *header) setPath(path string) {
	h.path = path
	h.usage = volumeUsage(path)
}

func (h *header) text() string {
	var sb strings.Builder
	sb.WriteString("[::b]" + AppTitle + "[::-]")
	if h.host != "" {
		sb.WriteString(" [gray]@" + tview.Escape(h.host) + "[-]")
	}
	if h.path != "" {
		sb.WriteString(" │ " + tview.Escape(fsutils.ShortenHome(h.path)))
	}
	if h.usage != "" {
		sb.WriteString(" │ [green]" + h.usage + "[-]")
	}
	return sb.String()
}

func (h *header) Draw(screen tcell.Screen) {
	h.Box.DrawForSubclass(screen, h)
	x, y, width, _ := h.GetInnerRect()
	clock := h.now().Format("15:04:05")
	tview.Print(screen, h.text(), x, y, width-len(clock)-1, tview.AlignLeft, Style.TitleColor)
	tview.Print(screen, clock, x, y, width, tview.AlignRight, Style.TitleColor)
}
