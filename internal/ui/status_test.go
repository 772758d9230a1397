package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftfs/swiftfs/internal/queryfs"
	"github.com/swiftfs/swiftfs/internal/telemetry"
)

func TestRenderStatus_Available(t *testing.T) {
	var buf bytes.Buffer
	RenderStatus(&buf, StatusReport{
		EngineBinary: "es.exe",
		Available:    true,
		Verify:       false,
		Readiness:    map[string]bool{"C:": true, "D:": false},
	}, NoColorStyles())

	out := buf.String()
	assert.Contains(t, out, "es.exe")
	assert.Contains(t, out, "available")
	assert.Contains(t, out, "C:")
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "not indexed")
	assert.Contains(t, out, "Verification: disabled")
}

func TestRenderStatus_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	RenderStatus(&buf, StatusReport{
		EngineBinary: "es",
		Available:    false,
	}, NoColorStyles())

	assert.Contains(t, buf.String(), "unavailable (direct filesystem only)")
}

func TestRenderStatus_WithMetrics(t *testing.T) {
	snap := &telemetry.Snapshot{
		TotalQueries:    3,
		ZeroResultCount: 1,
		ByRoute: map[queryfs.Route]int64{
			queryfs.RouteIndex:    2,
			queryfs.RouteFallback: 1,
		},
		HotPaths: []telemetry.PathCount{{Path: `C:\data\a.txt`, Count: 2}},
	}

	var buf bytes.Buffer
	RenderStatus(&buf, StatusReport{
		EngineBinary: "es.exe",
		Available:    true,
		Metrics:      snap,
	}, NoColorStyles())

	out := buf.String()
	assert.Contains(t, out, "Total: 3")
	assert.Contains(t, out, "Via index: 2")
	assert.Contains(t, out, "Via fallback: 1")
	assert.Contains(t, out, `C:\data\a.txt`)
}

func TestShouldColor_NonTTYWriter(t *testing.T) {
	assert.False(t, ShouldColor(&bytes.Buffer{}))
	assert.False(t, IsTTY(nil))
}

func TestDetectNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, DetectNoColor())
	assert.False(t, ShouldColor(&bytes.Buffer{}))
}
