package queryfs

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/swiftfs/swiftfs/internal/config"
	"github.com/swiftfs/swiftfs/internal/engine"
	sferrors "github.com/swiftfs/swiftfs/internal/errors"
	"github.com/swiftfs/swiftfs/internal/fsdirect"
)

// Route identifies which path served an operation.
type Route string

const (
	// RouteIndex means the index engine answered.
	RouteIndex Route = "index"
	// RouteDirect means the direct filesystem answered.
	RouteDirect Route = "direct"
	// RouteFallback means the engine failed and the direct filesystem
	// answered after the permanent downgrade.
	RouteFallback Route = "fallback"
)

// Recorder receives one event per completed operation. Implementations
// must be safe for concurrent use.
type Recorder interface {
	Record(op, path string, route Route, latency time.Duration, resultCount int)
}

// Client answers filesystem metadata queries, preferring the external index
// engine and falling back to the direct filesystem. It owns all mutable
// state: the per-volume readiness cache and the engine availability flag.
type Client struct {
	transport engine.Transport
	direct    fsdirect.FS
	logger    *slog.Logger
	recorder  Recorder
	verify    bool

	// available starts true and is cleared permanently on the first
	// engine failure. Reads are racy by design; the worst case is one
	// extra engine attempt before every caller observes the downgrade.
	available atomic.Bool

	// readiness maps volume root -> "index populated". Entries are
	// write-once for the life of the Client; a root is never re-probed.
	mu        sync.Mutex
	readiness map[string]bool
}

// Option customizes a Client.
type Option func(*Client)

// WithTransport overrides the engine transport.
func WithTransport(t engine.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithFS overrides the direct filesystem collaborator.
func WithFS(fs fsdirect.FS) Option {
	return func(c *Client) { c.direct = fs }
}

// WithLogger overrides the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRecorder attaches a telemetry recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// New creates a Client from configuration.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		logger:    slog.Default(),
		direct:    fsdirect.NewOSFS(),
		verify:    cfg.Verify.Enabled,
		readiness: make(map[string]bool),
	}
	c.available.Store(true)
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = engine.NewProcessTransport(cfg.Engine.Binary, cfg.Engine.ExtraArgs, c.logger)
	}
	return c
}

// Available reports whether the index engine is still in use. Once false
// it never becomes true again for the life of the Client.
func (c *Client) Available() bool {
	return c.available.Load()
}

// disable flips the availability switch after an engine failure. Every
// operation for the remainder of the Client's life routes directly to the
// filesystem.
func (c *Client) disable(op string, err error) {
	c.logger.Error("index engine failed, disabling index permanently",
		slog.String("op", op),
		slog.String("category", string(sferrors.GetCategory(err))),
		slog.String("error", err.Error()))
	c.available.Store(false)
}

// FileExists reports whether path names an existing regular file.
func (c *Client) FileExists(ctx context.Context, path string) (bool, error) {
	return c.exists(ctx, "file_exists", engine.KindFile, path)
}

// DirectoryExists reports whether path names an existing directory.
func (c *Client) DirectoryExists(ctx context.Context, path string) (bool, error) {
	return c.exists(ctx, "dir_exists", engine.KindDir, path)
}

func (c *Client) exists(ctx context.Context, op string, kind engine.Kind, path string) (bool, error) {
	start := time.Now()
	cpath, err := canonicalize(path)
	if err != nil {
		return false, err
	}

	route := RouteDirect
	if c.useIndex(ctx, cpath) {
		found, qerr := c.indexExists(ctx, op, kind, cpath)
		if qerr == nil {
			c.record(op, cpath, RouteIndex, start, boolCount(found))
			return found, nil
		}
		if !sferrors.IsEngineFailure(qerr) {
			// Verification mismatches propagate; they are contract
			// violations, not availability signals.
			return false, qerr
		}
		c.disable(op, qerr)
		route = RouteFallback
	}

	found := c.directExists(kind, cpath)
	c.record(op, cpath, route, start, boolCount(found))
	return found, nil
}

func (c *Client) indexExists(ctx context.Context, op string, kind engine.Kind, cpath string) (bool, error) {
	if c.verify {
		return c.verifiedExists(ctx, op, kind, cpath)
	}
	out, err := c.transport.Query(ctx, engine.ExistsQuery(kind, cpath))
	if err != nil {
		return false, err
	}
	return len(engine.ParseNames(out)) > 0, nil
}

// GetFiles returns the absolute paths of files under dir. Ordering is not
// guaranteed; callers requiring a stable order must sort.
func (c *Client) GetFiles(ctx context.Context, dir string, mode SearchMode) ([]string, error) {
	return c.list(ctx, "get_files", engine.KindFile, dir, mode)
}

// GetDirectories returns the absolute paths of directories under dir. The
// queried dir itself is never included.
func (c *Client) GetDirectories(ctx context.Context, dir string, mode SearchMode) ([]string, error) {
	return c.list(ctx, "get_dirs", engine.KindDir, dir, mode)
}

func (c *Client) list(ctx context.Context, op string, kind engine.Kind, dir string, mode SearchMode) ([]string, error) {
	start := time.Now()
	cdir, err := canonicalize(dir)
	if err != nil {
		return nil, err
	}
	if !mode.valid() {
		return nil, sferrors.New(sferrors.ErrCodeInvalidSearchMode,
			"unsupported search mode", nil).
			WithDetail("mode", mode.String())
	}

	route := RouteDirect
	if c.useIndex(ctx, cdir) {
		paths, qerr := c.indexList(ctx, op, kind, cdir, mode)
		if qerr == nil {
			c.record(op, cdir, RouteIndex, start, len(paths))
			return paths, nil
		}
		if !sferrors.IsEngineFailure(qerr) {
			return nil, qerr
		}
		c.disable(op, qerr)
		route = RouteFallback
	}

	paths, err := c.directList(kind, cdir, mode)
	if err != nil {
		return nil, err
	}
	c.record(op, cdir, route, start, len(paths))
	return paths, nil
}

func (c *Client) indexList(ctx context.Context, op string, kind engine.Kind, cdir string, mode SearchMode) ([]string, error) {
	if c.verify {
		return c.verifiedList(ctx, op, kind, cdir, mode)
	}
	args := engine.ListQuery(kind, cdir)
	if mode.recursive() {
		args = engine.ListRecursiveQuery(kind, cdir, separator(cdir))
	}
	out, err := c.transport.Query(ctx, args)
	if err != nil {
		return nil, err
	}
	return engine.ParseNames(out), nil
}

// GetFileCreationTime returns the creation time of a regular file. A path
// with zero matches yields ERR_201_NOT_FOUND.
func (c *Client) GetFileCreationTime(ctx context.Context, path string) (time.Time, error) {
	return c.creationTime(ctx, "file_ctime", engine.KindFile, path)
}

// GetDirectoryCreationTime returns the creation time of a directory. A path
// with zero matches yields ERR_201_NOT_FOUND.
func (c *Client) GetDirectoryCreationTime(ctx context.Context, path string) (time.Time, error) {
	return c.creationTime(ctx, "dir_ctime", engine.KindDir, path)
}

func (c *Client) creationTime(ctx context.Context, op string, kind engine.Kind, path string) (time.Time, error) {
	start := time.Now()
	cpath, err := canonicalize(path)
	if err != nil {
		return time.Time{}, err
	}

	route := RouteDirect
	if c.useIndex(ctx, cpath) {
		ts, qerr := c.indexCreationTime(ctx, op, kind, cpath)
		if qerr == nil {
			c.record(op, cpath, RouteIndex, start, 1)
			return ts, nil
		}
		if !sferrors.IsEngineFailure(qerr) {
			// Not-found and verification errors propagate; they are
			// answers, not availability signals.
			return time.Time{}, qerr
		}
		c.disable(op, qerr)
		route = RouteFallback
	}

	ts, err := c.directCreationTime(kind, cpath)
	if err != nil {
		return time.Time{}, err
	}
	c.record(op, cpath, route, start, 1)
	return ts, nil
}

func (c *Client) indexCreationTime(ctx context.Context, op string, kind engine.Kind, cpath string) (time.Time, error) {
	out, err := c.transport.Query(ctx, engine.CreationTimeQuery(kind, cpath))
	if err != nil {
		return time.Time{}, err
	}
	entries, err := engine.ParseDatedNames(out)
	if err != nil {
		return time.Time{}, err
	}
	if len(entries) == 0 {
		return time.Time{}, sferrors.NotFoundError("no index match for " + cpath)
	}
	if c.verify {
		if verr := c.verifyCreationTime(op, cpath, entries[0].Path, kind); verr != nil {
			return time.Time{}, verr
		}
	}
	return entries[0].Created, nil
}

func (c *Client) directExists(kind engine.Kind, cpath string) bool {
	if kind == engine.KindDir {
		return c.direct.DirExists(cpath)
	}
	return c.direct.FileExists(cpath)
}

func (c *Client) directList(kind engine.Kind, cdir string, mode SearchMode) ([]string, error) {
	if kind == engine.KindDir {
		return c.direct.ListDirs(cdir, mode.recursive())
	}
	return c.direct.ListFiles(cdir, mode.recursive())
}

func (c *Client) directCreationTime(kind engine.Kind, cpath string) (time.Time, error) {
	var (
		ts  time.Time
		err error
	)
	if kind == engine.KindDir {
		ts, err = c.direct.DirCreationTime(cpath)
	} else {
		ts, err = c.direct.FileCreationTime(cpath)
	}
	if err != nil {
		// errors.Is sees through wrapped not-exists, including the kind
		// mismatches fsdirect reports for a path of the wrong type.
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, sferrors.NotFoundError("no filesystem match for " + cpath)
		}
		return time.Time{}, sferrors.Wrap(sferrors.ErrCodeFilePermission, err)
	}
	return ts, nil
}

func (c *Client) record(op, path string, route Route, start time.Time, count int) {
	if c.recorder != nil {
		c.recorder.Record(op, path, route, time.Since(start), count)
	}
}

func boolCount(found bool) int {
	if found {
		return 1
	}
	return 0
}
