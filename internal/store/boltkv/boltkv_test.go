package boltkv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestGetSetAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letterz.bolt")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "deck")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "deck", []byte("one")))
	require.NoError(t, s.Set(ctx, "deck", []byte("two")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	v, ok, err := s.Get(ctx, "deck")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", string(v))
}

func TestSetRejectsEmptyKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "letterz.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	assert.Error(t, s.Set(context.Background(), "", []byte("x")))
}

func TestCanceledContext(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "letterz.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = s.Get(ctx, "deck")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Set(ctx, "deck", nil), context.Canceled)
}
