package queryfs

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/swiftfs/swiftfs/internal/engine"
	sferrors "github.com/swiftfs/swiftfs/internal/errors"
)

// Verification mode cross-checks every index answer against direct
// filesystem truth. A mismatch is a contract violation between the index
// and the filesystem, not a runtime condition: it surfaces as
// ERR_502_VERIFY_MISMATCH and is meant for test and debug configurations
// only. Production configurations trust the index once readiness is
// established.

// verifiedExists answers an existence query from the index while computing
// the direct answer concurrently, then compares the two.
func (c *Client) verifiedExists(ctx context.Context, op string, kind engine.Kind, cpath string) (bool, error) {
	var indexFound, truth bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := c.transport.Query(gctx, engine.ExistsQuery(kind, cpath))
		if err != nil {
			return err
		}
		indexFound = len(engine.ParseNames(out)) > 0
		return nil
	})
	g.Go(func() error {
		truth = c.directExists(kind, cpath)
		return nil
	})
	if err := g.Wait(); err != nil {
		return false, err
	}

	if indexFound != truth {
		return false, c.mismatch(op, cpath, fmt.Sprintf("index=%v filesystem=%v", indexFound, truth))
	}
	return indexFound, nil
}

// verifiedList answers a listing query from the index while computing the
// direct listing concurrently, then compares the two as case-insensitive
// path sets (the index does not guarantee filesystem enumeration order).
func (c *Client) verifiedList(ctx context.Context, op string, kind engine.Kind, cdir string, mode SearchMode) ([]string, error) {
	args := engine.ListQuery(kind, cdir)
	if mode.recursive() {
		args = engine.ListRecursiveQuery(kind, cdir, separator(cdir))
	}

	var indexPaths, truth []string
	var truthErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := c.transport.Query(gctx, args)
		if err != nil {
			return err
		}
		indexPaths = engine.ParseNames(out)
		return nil
	})
	g.Go(func() error {
		// A direct-side failure is not an engine failure; hold it for
		// classification after the engine result is known.
		truth, truthErr = c.directList(kind, cdir, mode)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if truthErr != nil {
		return nil, c.mismatch(op, cdir, "filesystem truth unavailable: "+truthErr.Error())
	}
	if !samePathSet(indexPaths, truth) {
		return nil, c.mismatch(op, cdir, fmt.Sprintf("index returned %d paths, filesystem %d, or contents differ",
			len(indexPaths), len(truth)))
	}
	return indexPaths, nil
}

// verifyCreationTime checks that the single dated result names the queried
// path and that the path really exists with the queried kind.
func (c *Client) verifyCreationTime(op string, cpath, gotPath string, kind engine.Kind) error {
	if !strings.EqualFold(cpath, gotPath) {
		return c.mismatch(op, cpath, "index answered for "+gotPath)
	}
	if !c.directExists(kind, cpath) {
		return c.mismatch(op, cpath, "index has an entry the filesystem does not")
	}
	return nil
}

func (c *Client) mismatch(op, path, detail string) error {
	err := sferrors.VerifyError("index result diverged from filesystem truth").
		WithDetail("op", op).
		WithDetail("path", path).
		WithDetail("detail", detail)
	c.logger.Error("verification mismatch",
		"op", op, "path", path, "detail", detail)
	return err
}

// samePathSet compares two path slices as case-insensitive sets.
func samePathSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, p := range a {
		seen[strings.ToLower(p)]++
	}
	for _, p := range b {
		key := strings.ToLower(p)
		if seen[key] == 0 {
			return false
		}
		seen[key]--
	}
	return true
}
