//go:build unix

package commands

import "golang.org/x/sys/unix"

// highPriorityNice is the nice value requested with --high-priority.
// Negative values need CAP_SYS_NICE or root.
const highPriorityNice = -10

func raisePriority() error {
	return unix.Setpriority(unix.PRIO_PROCESS, 0, highPriorityNice)
}
