package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMailboxSingleRead(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryMailbox()

	require.NoError(t, m.Put(ctx, "venta-1", []byte(`{"total":2700}`), time.Minute))

	value, err := m.Take(ctx, "venta-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"total":2700}`), value)

	// segunda leitura encontra o slot vazio
	_, err = m.Take(ctx, "venta-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMailboxMissingKey(t *testing.T) {
	m := NewMemoryMailbox()

	_, err := m.Take(context.Background(), "inexistente")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMailboxExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryMailbox()

	require.NoError(t, m.Put(ctx, "venta-2", []byte("x"), -time.Second))

	_, err := m.Take(ctx, "venta-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMailboxCopiesValue(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryMailbox()

	original := []byte("abc")
	require.NoError(t, m.Put(ctx, "k", original, time.Minute))
	original[0] = 'z'

	value, err := m.Take(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}
