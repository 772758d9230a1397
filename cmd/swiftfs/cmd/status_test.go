package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_EngineUnavailable(t *testing.T) {
	out, err := executeCommand(t, "status", "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "unavailable")
	assert.Contains(t, out, "swiftfs-no-such-engine-binary")
}

func TestStatusCmd_JSON(t *testing.T) {
	out, err := executeCommand(t, "status", "--json")

	require.NoError(t, err)

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "swiftfs-no-such-engine-binary", got.EngineBinary)
	// The probe cannot start the engine, so availability is lost
	assert.False(t, got.Available)
	// Failed probes are never cached as readiness values
	assert.Empty(t, got.Readiness)
}

func TestDefaultVolumeRoot(t *testing.T) {
	// Either form is a probe-able root on its platform
	root := defaultVolumeRoot()
	assert.Contains(t, []string{"C:", "/"}, root)
}
