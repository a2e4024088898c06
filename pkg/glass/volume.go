package glass

import (
	"github.com/glassexplorer/glassexplorer/pkg/fsutils"
	"github.com/glassexplorer/glassexplorer/pkg/logging"
	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"
)

var diskUsage = disk.Usage

// volumeUsage describes free space on the volume holding path, or "" when unknown.
func volumeUsage(path string) string {
	usage, err := diskUsage(path)
	if err != nil {
		logging.L().Debug("disk usage unavailable", zap.String("path", path), zap.Error(err))
		return ""
	}
	return fsutils.VolumeUsageText(usage.Free, usage.Total)
}
