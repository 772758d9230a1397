package queryfs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sferrors "github.com/swiftfs/swiftfs/internal/errors"
)

func TestIsReady_ProbesOncePerRoot(t *testing.T) {
	probes := 0
	ft := &fakeTransport{respond: func(args []string) (string, error) {
		probes++
		return "C:\\Windows\n", nil
	}}
	c := newTestClient(ft, false)
	ctx := context.Background()

	assert.True(t, c.IsReady(ctx, "C:"))
	assert.True(t, c.IsReady(ctx, "C:"))
	assert.True(t, c.IsReady(ctx, "C:"))
	assert.Equal(t, 1, probes)

	// A second root gets its own probe
	assert.True(t, c.IsReady(ctx, "D:"))
	assert.Equal(t, 2, probes)
}

func TestIsReady_FrozenEvenWhenServiceStateChanges(t *testing.T) {
	populated := false
	ft := &fakeTransport{respond: func(args []string) (string, error) {
		if populated {
			return "C:\\Windows\n", nil
		}
		return "", nil
	}}
	c := newTestClient(ft, false)
	ctx := context.Background()

	// First probe sees an unpopulated index
	require.False(t, c.IsReady(ctx, "C:"))

	// The index becoming populated later is never observed
	populated = true
	assert.False(t, c.IsReady(ctx, "C:"))
	assert.False(t, c.IsReady(ctx, "C:"))
}

func TestIsReady_NormalizesRootSpellings(t *testing.T) {
	probes := 0
	ft := &fakeTransport{respond: func(args []string) (string, error) {
		probes++
		return "C:\\Windows\n", nil
	}}
	c := newTestClient(ft, false)
	ctx := context.Background()

	// Every spelling of the same volume shares one cache entry
	assert.True(t, c.IsReady(ctx, "c:"))
	assert.True(t, c.IsReady(ctx, `C:\`))
	assert.True(t, c.IsReady(ctx, "C:"))
	assert.Equal(t, 1, probes)
	assert.Equal(t, map[string]bool{"C:": true}, c.ReadinessSnapshot())
}

func TestIsReady_EmptyRoot(t *testing.T) {
	ft := &fakeTransport{respond: func(args []string) (string, error) {
		t.Fatal("empty root must not be probed")
		return "", nil
	}}
	c := newTestClient(ft, false)

	assert.False(t, c.IsReady(context.Background(), ""))
}

func TestIsReady_FalseAfterDowngrade(t *testing.T) {
	ft := &fakeTransport{respond: func(args []string) (string, error) {
		return "C:\\Windows\n", nil
	}}
	c := newTestClient(ft, false)
	ctx := context.Background()

	require.True(t, c.IsReady(ctx, "C:"))

	c.disable("test", sferrors.ExitError("engine exited", 1, nil))

	// Cached true is overridden by the availability switch
	assert.False(t, c.IsReady(ctx, "C:"))
}

func TestIsReady_ProbeFailureDisablesEngine(t *testing.T) {
	c := newTestClient(brokenTransport(), false)

	assert.False(t, c.IsReady(context.Background(), "C:"))
	assert.False(t, c.Available())

	// The failed probe is not cached as a readiness value
	assert.Empty(t, c.ReadinessSnapshot())
}

func TestReadinessSnapshot_CopiesState(t *testing.T) {
	ft := &fakeTransport{respond: func(args []string) (string, error) {
		return "C:\\Windows\n", nil
	}}
	c := newTestClient(ft, false)
	ctx := context.Background()

	c.IsReady(ctx, "C:")
	c.IsReady(ctx, "D:")

	snap := c.ReadinessSnapshot()
	assert.Equal(t, map[string]bool{"C:": true, "D:": true}, snap)

	// Mutating the snapshot does not touch the cache
	snap["C:"] = false
	assert.True(t, c.IsReady(ctx, "C:"))
}
