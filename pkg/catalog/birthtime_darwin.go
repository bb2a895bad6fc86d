//go:build darwin

package catalog

import (
	"os"
	"syscall"
)

// birthtime returns the file creation time in epoch seconds where the
// platform exposes one.
func birthtime(info os.FileInfo) (int64, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return stat.Birthtimespec.Sec, true
}
