package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	compressible := bytes.Repeat([]byte("tri3 0 1 2\n"), 500)
	for _, k := range []Kind{None, LZ4, Zstd} {
		t.Run(k.String(), func(t *testing.T) {
			block, err := Encode(compressible, k)
			require.NoError(t, err)
			assert.Equal(t, byte(k), block[0])
			if k != None {
				assert.Less(t, len(block), len(compressible))
			}

			out, err := Decode(block)
			require.NoError(t, err)
			assert.Equal(t, compressible, out)
		})
	}
}

func TestEncode_IncompressibleStoredRaw(t *testing.T) {
	data := []byte{0x01, 0x7f, 0x33, 0xa0, 0x5c}
	block, err := Encode(data, Zstd)
	require.NoError(t, err)
	assert.Len(t, block, headerSize+len(data))

	out, err := Decode(block)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestEncode_Empty(t *testing.T) {
	block, err := Encode(nil, LZ4)
	require.NoError(t, err)
	out, err := Decode(block)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode([]byte{1, 2})
	assert.ErrorIs(t, err, ErrCorrupt)

	block, err := Encode(bytes.Repeat([]byte("abc"), 300), LZ4)
	require.NoError(t, err)
	_, err = Decode(block[:len(block)-1])
	assert.ErrorIs(t, err, ErrCorrupt)

	block[0] = 9
	_, err = Decode(block)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{None, LZ4, Zstd} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("brotli")
	assert.Error(t, err)
}
