package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Load(ctx, "kitchenProducts")
	assert.ErrorIs(t, err, ErrNoBlob)

	require.NoError(t, s.Save(ctx, "kitchenProducts", []byte(`[{"id":1}]`)))

	got, err := s.Load(ctx, "kitchenProducts")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), got)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Save(ctx, "k", []byte("one")))
	require.NoError(t, s.Save(ctx, "k", []byte("two")))

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []byte("original")
	require.NoError(t, s.Save(ctx, "k", in))
	in[0] = 'X'

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, err = s.Load(ctx, "orders_abc")
	assert.ErrorIs(t, err, ErrNoBlob)

	require.NoError(t, s.Save(ctx, "orders_abc", []byte(`[]`)))

	got, err := s.Load(ctx, "orders_abc")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	// Saves land as <key>.json with no leftover temp file.
	_, err = os.Stat(filepath.Join(dir, "orders_abc.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "orders_abc.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "kitchenProducts", []byte("persisted")))
	require.NoError(t, s.Close())

	s2, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := s2.Load(ctx, "kitchenProducts")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}
