//go:build !darwin && !windows

package catalog

import "os"

// birthtime returns the file creation time in epoch seconds where the
// platform exposes one. Linux and the remaining platforms don't surface a
// birth time through os.FileInfo, so the field stays absent there.
func birthtime(_ os.FileInfo) (int64, bool) {
	return 0, false
}
