package ui

import (
	"strings"

	"github.com/rjmorel/statgrid/model"
)

// MountMark classifies a mount path into a one-glyph marker for the
// narrow disk column.
type MountMark struct {
	Glyph rune
	Color model.RGB
	Label string
}

// MountMarker classifies a filesystem path. NVMe scratch mounts, bulk
// storage, home, the root/system tree, and removable media each get
// their own marker.
func MountMarker(path string) MountMark {
	switch {
	case strings.HasPrefix(path, "/mnt/nvme"):
		return MountMark{Glyph: 'N', Color: model.ColorCyan, Label: "nvme"}
	case strings.HasPrefix(path, "/mnt/storage"), strings.HasPrefix(path, "/mnt/hdd"):
		return MountMark{Glyph: 'D', Color: model.ColorBlue, Label: "disk"}
	case strings.HasPrefix(path, "/home"):
		return MountMark{Glyph: 'h', Color: model.ColorGreen, Label: "home"}
	case path == "/", strings.HasPrefix(path, "/usr"), strings.HasPrefix(path, "/var"):
		return MountMark{Glyph: '/', Color: model.ColorWhite, Label: "sys"}
	case strings.HasPrefix(path, "/mnt"), strings.HasPrefix(path, "/media"):
		return MountMark{Glyph: 'M', Color: model.ColorOrange, Label: "mnt"}
	default:
		return MountMark{Glyph: '?', Color: model.ColorGray, Label: "other"}
	}
}
