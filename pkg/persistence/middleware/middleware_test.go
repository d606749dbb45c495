package middleware_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-sh/parley/pkg/adapters/memory"
	"github.com/parley-sh/parley/pkg/domain"
	"github.com/parley-sh/parley/pkg/persistence/middleware"
)

func TestMaskMiddleware(t *testing.T) {
	inner := memory.NewStore()
	store := middleware.Chain(inner, middleware.NewMaskMiddleware([]string{"(?i)token", "^password$"}))

	bag := domain.VarBag{
		"version":    "1.2.3",
		"api_token":  "s3cret",
		"password":   "hunter2",
		"passwords!": "not matched, anchor holds",
	}
	require.NoError(t, store.Save(context.Background(), "rel", bag))

	// The caller's bag is untouched.
	assert.Equal(t, "s3cret", bag["api_token"])

	persisted, err := inner.Load(context.Background(), "rel")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", persisted["version"])
	assert.Equal(t, middleware.Masked, persisted["api_token"])
	assert.Equal(t, middleware.Masked, persisted["password"])
	assert.Equal(t, "not matched, anchor holds", persisted["passwords!"])
}

func TestEncryptionMiddleware_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte("k"), 32)
	inner := memory.NewStore()
	store := middleware.Chain(inner, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key,
	}))

	bag := domain.VarBag{"version": "1.2.3", "channel": "beta"}
	require.NoError(t, store.Save(context.Background(), "rel", bag))

	// The underlying store only ever sees the opaque envelope.
	raw, err := inner.Load(context.Background(), "rel")
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.NotContains(t, raw, "version")

	got, err := store.Load(context.Background(), "rel")
	require.NoError(t, err)
	assert.Equal(t, bag, got)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	oldKey := bytes.Repeat([]byte("a"), 32)
	newKey := bytes.Repeat([]byte("b"), 32)
	inner := memory.NewStore()

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})(inner)
	require.NoError(t, oldStore.Save(context.Background(), "rel", domain.VarBag{"v": "1"}))

	rotated := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})(inner)

	got, err := rotated.Load(context.Background(), "rel")
	require.NoError(t, err)
	assert.Equal(t, domain.VarBag{"v": "1"}, got)

	// Without the fallback the old payload is unreadable.
	strict := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey})(inner)
	_, err = strict.Load(context.Background(), "rel")
	assert.Error(t, err)
}

func TestEncryptionMiddleware_PlaintextPassthrough(t *testing.T) {
	key := bytes.Repeat([]byte("k"), 32)
	inner := memory.NewStore()
	require.NoError(t, inner.Save(context.Background(), "legacy", domain.VarBag{"v": "1"}))

	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(inner)
	got, err := store.Load(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, domain.VarBag{"v": "1"}, got)
}

func TestEncryptionMiddleware_BadKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short")})
	})
}

func TestChainOrder(t *testing.T) {
	key := bytes.Repeat([]byte("k"), 32)
	inner := memory.NewStore()

	// Mask first so secrets never reach the ciphertext either.
	store := middleware.Chain(inner,
		middleware.NewMaskMiddleware([]string{"secret"}),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}),
	)

	require.NoError(t, store.Save(context.Background(), "rel", domain.VarBag{"secret": "x", "v": "1"}))

	got, err := store.Load(context.Background(), "rel")
	require.NoError(t, err)
	assert.Equal(t, middleware.Masked, got["secret"])
	assert.Equal(t, "1", got["v"])
}
