//go:build !windows && !unix

package commands

import "errors"

func raisePriority() error {
	return errors.New("not supported on this platform")
}
