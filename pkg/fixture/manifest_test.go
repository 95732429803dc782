package fixture

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	body, err := DefaultManifest()
	require.NoError(t, err)

	var m manifest
	require.NoError(t, toml.Unmarshal([]byte(body), &m))
	assert.Equal(t, "foo", m.Package.Name)
	assert.Equal(t, "1.0.0", m.Package.Version)

	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte(body), &raw))
	assert.Len(t, raw, 1, "only a [package] table")

	again, err := DefaultManifest()
	require.NoError(t, err)
	assert.Equal(t, body, again)
}
