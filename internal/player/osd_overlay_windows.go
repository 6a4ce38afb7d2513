//go:build windows

package player

import "github.com/gen2brain/go-mpv"

// The osd-overlay command needs mpv_command_node, which is only reachable
// through cgo; on Windows the controls are simply not drawn.
func osdOverlaySet(m *mpv.Mpv, id int, data string, resX, resY int) error {
	return nil
}

func osdOverlayRemove(m *mpv.Mpv, id int) error {
	return nil
}
