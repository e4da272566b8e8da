// Package pipefs manages the well-known named pipe the producer writes to.
package pipefs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DefaultPath is the well-known pipe address on this platform, mirroring
// the producer's \\.\pipe\usn-watcher naming on Windows.
const DefaultPath = "/tmp/usn-watcher.pipe"

// Ensure makes sure a FIFO exists at path, creating it when absent.
// With the FIFO in place a consumer started before the producer simply
// blocks in open() until the producer attaches, instead of failing.
func Ensure(path string) error {
	var st unix.Stat_t
	err := unix.Stat(path, &st)
	if err == nil {
		if st.Mode&unix.S_IFMT != unix.S_IFIFO {
			return fmt.Errorf("%s exists but is not a named pipe", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := unix.Mkfifo(path, 0o600); err != nil {
		return fmt.Errorf("creating pipe %s: %w", path, err)
	}
	return nil
}
