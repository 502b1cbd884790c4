//go:build windows

package commands

import "golang.org/x/sys/windows"

// raisePriority moves the process to the high priority class, falling back to
// above normal. Realtime is never used since it can starve the desktop.
func raisePriority() error {
	process := windows.CurrentProcess()
	if err := windows.SetPriorityClass(process, windows.HIGH_PRIORITY_CLASS); err != nil {
		return windows.SetPriorityClass(process, windows.ABOVE_NORMAL_PRIORITY_CLASS)
	}
	return nil
}
