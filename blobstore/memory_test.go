package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_PutCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "x", data))
	data[0] = 'z'

	got, err := ReadAll(ctx, store, "x")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	// ReadAll returns a private copy as well.
	got[1] = 'z'
	again, err := ReadAll(ctx, store, "x")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
