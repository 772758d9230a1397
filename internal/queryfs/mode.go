package queryfs

// SearchMode selects listing depth for GetFiles and GetDirectories.
type SearchMode int

const (
	// TopDirectoryOnly lists immediate children of the queried directory.
	TopDirectoryOnly SearchMode = iota
	// AllDirectories lists all descendants of the queried directory. The
	// queried directory itself is never part of the result set.
	AllDirectories
)

// String returns the mode name for logging.
func (m SearchMode) String() string {
	switch m {
	case TopDirectoryOnly:
		return "TopDirectoryOnly"
	case AllDirectories:
		return "AllDirectories"
	default:
		return "invalid"
	}
}

func (m SearchMode) valid() bool {
	return m == TopDirectoryOnly || m == AllDirectories
}

func (m SearchMode) recursive() bool {
	return m == AllDirectories
}
