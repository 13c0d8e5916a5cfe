package privilege

import (
	"errors"
	"os"
)

// geteuid is swapped out in tests via SetGeteuidForTest.
var geteuid = os.Geteuid

// SetGeteuidForTest replaces the euid probe and returns a restore function.
func SetGeteuidForTest(fn func() int) func() {
	prev := geteuid
	geteuid = fn
	return func() { geteuid = prev }
}

// EnsureRoot fails unless the process runs with effective uid 0. Backup and
// restore touch the Docker volumes tree directly and need that elevation.
func EnsureRoot() error {
	if geteuid() != 0 {
		return errors.New("this command must run as root (sudo ...)")
	}
	return nil
}
