package mesher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeParams(t *testing.T) {
	p, err := DecodeParams(`
algorithm = "Volume"
max_size = 0.5
min_size = 0.1
order = 2
optimize = true
`)
	require.NoError(t, err)
	assert.Equal(t, Params{Algorithm: Volume, MaxSize: 0.5, MinSize: 0.1, Order: 2, Optimize: true}, p)
}

func TestDecodeParams_Defaults(t *testing.T) {
	p, err := DecodeParams(`max_size = 2.0`)
	require.NoError(t, err)
	assert.Equal(t, Surface, p.Algorithm)
	assert.Equal(t, 1, p.Order)
	assert.InDelta(t, 2.0, p.MaxSize, 1e-12)
}

func TestDecodeParams_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", `mesh_size = 1.0`},
		{"bad algorithm", `algorithm = "voxel"`},
		{"zero size", `max_size = 0.0`},
		{"min above max", "max_size = 1.0\nmin_size = 2.0"},
		{"order", `order = 3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeParams(tt.data)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}

	_, err := DecodeParams(`max_size = `)
	assert.Error(t, err)
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm = \"linear\"\nmax_size = 0.25\n"), 0o600))

	p, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, Linear, p.Algorithm)
	assert.Equal(t, 1, p.Algorithm.Dim())

	_, err = LoadParams(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
