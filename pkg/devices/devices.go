// Package devices talks to the display backlight and the wireless network manager.
package devices

import (
	"context"
	"errors"
)

// ErrDeviceUnavailable is returned when the host lacks the device or the tool to drive it.
var ErrDeviceUnavailable = errors.New("device unavailable")

// Brightness reads and writes the display brightness as a percentage.
type Brightness interface {
	Get() (int, error)
	Set(level int) error
}

// WiFi lists the names of visible wireless networks.
type WiFi interface {
	Scan(ctx context.Context) ([]string, error)
}

// BrightnessStep is added to the current level by ToggleBrightness.
const BrightnessStep = 10

// NextBrightness is (current + BrightnessStep) % 110: 95 becomes 105 and 100 wraps to 0.
// Levels above 100 are possible and are left to the backend to clamp.
func NextBrightness(current int) int {
	return (current + BrightnessStep) % 110
}

// ToggleBrightness steps the brightness and returns the level it requested.
func ToggleBrightness(svc Brightness) (int, error) {
	current, err := svc.Get()
	if err != nil {
		return 0, err
	}
	next := NextBrightness(current)
	if err = svc.Set(next); err != nil {
		return next, err
	}
	return next, nil
}
