package glass

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/require"
)

type fakeBrightness struct {
	level int
	err   error
}

func (f *fakeBrightness) Get() (int, error) {
	return f.level, f.err
}

func (f *fakeBrightness) Set(level int) error {
	f.level = level
	return nil
}

type fakeWiFi struct {
	ssids []string
	err   error
}

func (f fakeWiFi) Scan(context.Context) ([]string, error) {
	return f.ssids, f.err
}

// newScenarioDir creates <tmp>/x with a.txt and b/c.txt.
func newScenarioDir(t *testing.T) string {
	t.Helper()
	x := filepath.Join(t.TempDir(), "x")
	require.NoError(t, os.MkdirAll(filepath.Join(x, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(x, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(x, "b", "c.txt"), []byte("nested"), 0o644))
	return x
}

func stubDiskUsage(t *testing.T) {
	t.Helper()
	orig := diskUsage
	t.Cleanup(func() {
		diskUsage = orig
	})
	diskUsage = func(string) (*disk.UsageStat, error) {
		return &disk.UsageStat{Free: 2 * 1024 * 1024 * 1024, Total: 256 * 1024 * 1024 * 1024}, nil
	}
}

func newExplorerForTest(t *testing.T, app App, o Options) (*Explorer, string) {
	t.Helper()
	stubDiskUsage(t)
	dir := newScenarioDir(t)
	if o.StartDir == "" {
		o.StartDir = dir
	}
	if o.Brightness == nil {
		o.Brightness = &fakeBrightness{level: 50}
	}
	if o.WiFi == nil {
		o.WiFi = fakeWiFi{ssids: []string{"Home", "Cafe"}}
	}
	if app == nil {
		app = NewApp(nil)
	}
	return NewExplorer(app, o), dir
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func rootLabels(e *Explorer) []string {
	var labels []string
	for _, child := range e.tree.GetRoot().GetChildren() {
		labels = append(labels, child.GetText())
	}
	return labels
}

// readLine reads a full line from the screen.
func readLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

func newSimScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}
