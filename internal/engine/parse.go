package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	sferrors "github.com/swiftfs/swiftfs/internal/errors"
)

// filetimeEpochDiff is the offset between the Windows file-time epoch
// (1601-01-01) and the Unix epoch (1970-01-01), in 100ns ticks.
const filetimeEpochDiff = 116444736000000000

// Entry is one dated result line: a creation timestamp and the path it
// belongs to.
type Entry struct {
	Created time.Time
	Path    string
}

// ParseNames converts plain name-list output into absolute paths, one per
// line. Empty lines are discarded. Ordering from the engine is preserved;
// callers requiring order-independence must sort.
func ParseNames(out string) []string {
	lines := strings.Split(out, "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}

// ParseDatedNames converts date+name output into entries. Each line splits
// on the first space into a file-time integer and the remaining text as the
// path. A missing separator or a non-integer leading field is a
// transport-class parse failure.
func ParseDatedNames(out string) ([]Entry, error) {
	lines := strings.Split(out, "\n")
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		idx := strings.IndexByte(line, ' ')
		if idx < 0 {
			return nil, sferrors.ParseError(
				fmt.Sprintf("dated result line has no separator: %q", line), nil)
		}

		ft, err := strconv.ParseUint(line[:idx], 10, 64)
		if err != nil {
			return nil, sferrors.ParseError(
				fmt.Sprintf("dated result line has invalid file-time field: %q", line[:idx]), err)
		}

		entries = append(entries, Entry{
			Created: FiletimeToTime(ft),
			Path:    line[idx+1:],
		})
	}
	return entries, nil
}

// FiletimeToTime converts a Windows file-time value (100ns ticks since
// 1601-01-01 UTC) to a time.Time.
func FiletimeToTime(ft uint64) time.Time {
	ns := (int64(ft) - filetimeEpochDiff) * 100
	return time.Unix(0, ns).UTC()
}

// TimeToFiletime converts a time.Time to a Windows file-time value.
func TimeToFiletime(t time.Time) uint64 {
	return uint64(t.UnixNano()/100 + filetimeEpochDiff)
}
