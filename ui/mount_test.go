package ui

import "testing"

func TestMountMarker(t *testing.T) {
	tests := []struct {
		path string
		want rune
	}{
		{"/mnt/nvme0", 'N'},
		{"/mnt/nvme1/scratch", 'N'},
		{"/mnt/storage", 'D'},
		{"/mnt/hdd2", 'D'},
		{"/home/alex", 'h'},
		{"/", '/'},
		{"/usr/lib", '/'},
		{"/var/log", '/'},
		{"/mnt/usb", 'M'},
		{"/media/cdrom", 'M'},
		{"/srv/data", '?'},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := MountMarker(tt.path)
			if m.Glyph != tt.want {
				t.Errorf("MountMarker(%q).Glyph = %q, want %q", tt.path, m.Glyph, tt.want)
			}
			if m.Label == "" {
				t.Errorf("MountMarker(%q) missing label", tt.path)
			}
		})
	}
}
