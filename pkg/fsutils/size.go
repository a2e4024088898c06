package fsutils

import (
	"fmt"
	"strconv"
)

// GetSizeShortText returns a human readable size string.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	if val >= unit && exp < 3 {
		val /= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB"}
	if exp >= len(units) {
		exp = len(units) - 1
	}
	return strconv.FormatInt(val, 10) + units[exp]
}

// VolumeUsageText formats free and total bytes of a volume, e.g. "12GB libres de 256GB".
func VolumeUsageText(free, total uint64) string {
	return fmt.Sprintf("%s libres de %s", GetSizeShortText(int64(free)), GetSizeShortText(int64(total)))
}
