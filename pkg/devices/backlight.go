package devices

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultBacklightRoot is where Linux exposes backlight devices.
const DefaultBacklightRoot = "/sys/class/backlight"

var (
	osReadDir   = os.ReadDir
	osReadFile  = os.ReadFile
	osWriteFile = os.WriteFile
)

// Backlight drives the first device under Root through its sysfs attributes,
// scaling the raw range 0..max_brightness to 0..100.
type Backlight struct {
	Root string
}

var _ Brightness = (*Backlight)(nil)

func NewBacklight() *Backlight {
	return &Backlight{Root: DefaultBacklightRoot}
}

func (b *Backlight) Get() (int, error) {
	dir, err := b.device()
	if err != nil {
		return 0, err
	}
	maxRaw, err := readInt(filepath.Join(dir, "max_brightness"))
	if err != nil {
		return 0, err
	}
	raw, err := readInt(filepath.Join(dir, "brightness"))
	if err != nil {
		return 0, err
	}
	if maxRaw <= 0 {
		return 0, fmt.Errorf("%s: %w: max_brightness is %d", dir, ErrDeviceUnavailable, maxRaw)
	}
	return (raw*100 + maxRaw/2) / maxRaw, nil
}

// Set writes level as a percentage of max_brightness, clamped to the device range.
func (b *Backlight) Set(level int) error {
	dir, err := b.device()
	if err != nil {
		return err
	}
	maxRaw, err := readInt(filepath.Join(dir, "max_brightness"))
	if err != nil {
		return err
	}
	raw := level * maxRaw / 100
	if raw < 0 {
		raw = 0
	}
	if raw > maxRaw {
		raw = maxRaw
	}
	target := filepath.Join(dir, "brightness")
	if err = osWriteFile(target, []byte(strconv.Itoa(raw)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

func (b *Backlight) device() (string, error) {
	root := b.Root
	if root == "" {
		root = DefaultBacklightRoot
	}
	entries, err := osReadDir(root)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", root, ErrDeviceUnavailable, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%s: %w: no backlight devices", root, ErrDeviceUnavailable)
	}
	sort.Strings(names)
	return filepath.Join(root, names[0]), nil
}

func readInt(filePath string) (int, error) {
	data, err := osReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return v, nil
}
