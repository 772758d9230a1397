package engine

// Engine argument vocabulary. The engine is an "es"-style command-line
// search client: attribute flags select files or directories, scope flags
// anchor the query to an exact path, a parent, or a path prefix, and
// column flags add fields to each output line.
const (
	// flagDirsOnly restricts results to directories.
	flagDirsOnly = "/ad"
	// flagFilesOnly restricts results to files.
	flagFilesOnly = "/a-d"
	// flagExactPath matches the full path exactly.
	flagExactPath = "-p"
	// flagParent lists immediate children of a directory.
	flagParent = "-parent"
	// flagPathPrefix lists everything under a path prefix.
	flagPathPrefix = "-path"
	// flagMaxResults caps the number of results.
	flagMaxResults = "-n"
	// flagDateCreated adds the creation time column.
	flagDateCreated = "-dc"
	// flagDateFormat selects the date column encoding.
	flagDateFormat = "-date-format"
	// dateFormatFiletime prints dates as raw Windows file-time integers.
	dateFormatFiletime = "filetime"
)

// Kind selects whether a query targets files or directories.
type Kind int

const (
	// KindFile targets regular files.
	KindFile Kind = iota
	// KindDir targets directories.
	KindDir
)

func (k Kind) flag() string {
	if k == KindDir {
		return flagDirsOnly
	}
	return flagFilesOnly
}

// ExistsQuery matches the exact canonical path, filtered to files or
// directories. At most one result is requested; any output means the path
// exists in the index.
func ExistsQuery(kind Kind, path string) []string {
	return []string{kind.flag(), flagMaxResults, "1", flagExactPath, path}
}

// ListQuery lists the immediate children of dir, filtered by kind.
func ListQuery(kind Kind, dir string) []string {
	return []string{kind.flag(), flagParent, dir}
}

// ListRecursiveQuery lists all descendants under dir. The scope carries a
// trailing separator so the anchor directory itself never appears in the
// results.
func ListRecursiveQuery(kind Kind, dir, separator string) []string {
	return []string{kind.flag(), flagPathPrefix, dir + separator}
}

// CreationTimeQuery requests the creation time of the exact canonical path
// as a raw file-time integer column.
func CreationTimeQuery(kind Kind, path string) []string {
	return []string{
		kind.flag(),
		flagDateCreated, flagDateFormat, dateFormatFiletime,
		flagExactPath, path,
	}
}

// ProbeQuery is the minimal readiness probe for a volume root: any single
// result under the root proves the index is populated for that volume.
func ProbeQuery(root, separator string) []string {
	return []string{flagMaxResults, "1", flagParent, root + separator}
}

