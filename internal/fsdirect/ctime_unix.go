//go:build !windows

package fsdirect

import (
	"os"
	"time"
)

// creationTime approximates creation time with the modification time.
// Birth time is not portably exposed on non-Windows platforms.
func creationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
