//go:build windows

package fsdirect

import (
	"os"
	"syscall"
	"time"
)

// creationTime extracts the true creation time from the Win32 metadata.
func creationTime(info os.FileInfo) time.Time {
	if data, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, data.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
