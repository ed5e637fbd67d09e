//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/shape"
	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestIntToInt32(t *testing.T) {
	got, err := IntToInt32(math.MaxInt32)
	assert.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), got)

	_, err = IntToInt32(math.MaxInt32 + 1)
	assert.Error(t, err)

	_, err = IntToInt32(math.MinInt32 - 1)
	assert.Error(t, err)
}

func TestIndexConversions(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		u, err := IndexToUint32(shape.Index(42))
		assert.NoError(t, err)
		i, err := Uint32ToIndex(u)
		assert.NoError(t, err)
		assert.Equal(t, shape.Index(42), i)
	})

	t.Run("negative index", func(t *testing.T) {
		_, err := IndexToUint32(shape.Index(-1))
		assert.Error(t, err)
	})

	t.Run("member above int32", func(t *testing.T) {
		_, err := Uint32ToIndex(math.MaxInt32 + 1)
		assert.Error(t, err)
	})

	t.Run("int to index", func(t *testing.T) {
		i, err := IntToIndex(7)
		assert.NoError(t, err)
		assert.Equal(t, shape.Index(7), i)

		_, err = IntToIndex(-3)
		assert.Error(t, err)
	})
}
