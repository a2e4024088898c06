package devices

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v3/net"
)

var (
	netInterfaces = func(ctx context.Context) ([]net.InterfaceStat, error) {
		return net.InterfacesWithContext(ctx)
	}
	runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return exec.CommandContext(ctx, name, args...).Output()
	}
)

// NetworkManager scans with nmcli once a wireless interface is present.
type NetworkManager struct{}

var _ WiFi = NetworkManager{}

// Scan returns SSIDs in nmcli order, skipping hidden networks and repeats.
func (NetworkManager) Scan(ctx context.Context) ([]string, error) {
	ifaces, err := netInterfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	if !hasWireless(ifaces) {
		return nil, fmt.Errorf("%w: no wireless interface", ErrDeviceUnavailable)
	}
	out, err := runCommand(ctx, "nmcli", "-t", "-f", "SSID", "dev", "wifi", "list")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
		}
		return nil, fmt.Errorf("nmcli failed: %w", err)
	}
	return parseSSIDs(out), nil
}

func hasWireless(ifaces []net.InterfaceStat) bool {
	for _, iface := range ifaces {
		if strings.HasPrefix(iface.Name, "wl") || strings.HasPrefix(iface.Name, "wifi") {
			return true
		}
	}
	return false
}

func parseSSIDs(out []byte) []string {
	var ssids []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		// nmcli -t escapes ':' in values as '\:'
		ssid := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), `\:`, ":")
		if ssid == "" || ssid == "--" {
			continue
		}
		if _, ok := seen[ssid]; ok {
			continue
		}
		seen[ssid] = struct{}{}
		ssids = append(ssids, ssid)
	}
	return ssids
}
