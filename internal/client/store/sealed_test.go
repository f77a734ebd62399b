package store_test

import (
	"context"
	"testing"

	"github.com/agromaps/agromaps-go/internal/client/store"
	"github.com/agromaps/agromaps-go/internal/client/store/drivers/memory"
	"github.com/agromaps/agromaps-go/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSealedRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := memory.NewStore()
	sealed := store.NewSealed(inner, cryptox.DeriveKey([]byte("test-seal-key")))

	require.NoError(t, sealed.Set(ctx, store.KeyAccessToken, []byte("access-1")))

	got, err := sealed.Get(ctx, store.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("access-1"), got)

	// The driver underneath never sees plaintext.
	raw, err := inner.Get(ctx, store.KeyAccessToken)
	require.NoError(t, err)
	require.NotEqual(t, []byte("access-1"), raw)
	require.Greater(t, len(raw), len("access-1"))
}

func TestSealedWrongKeySurfacesReadError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := memory.NewStore()
	writer := store.NewSealed(inner, cryptox.DeriveKey([]byte("key-one")))
	require.NoError(t, writer.Set(ctx, store.KeyRefreshToken, []byte("refresh-1")))

	reader := store.NewSealed(inner, cryptox.DeriveKey([]byte("key-two")))
	_, err := reader.Get(ctx, store.KeyRefreshToken)
	require.Error(t, err)
}

func TestSealedMissingKeyIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sealed := store.NewSealed(memory.NewStore(), cryptox.DeriveKey([]byte("k")))
	_, err := sealed.Get(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCredentialsOverSealedFailOpenOnKeyChange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := memory.NewStore()
	oldKey := store.NewSealed(inner, cryptox.DeriveKey([]byte("old-key")))
	creds := store.NewCredentials(oldKey)
	require.NoError(t, creds.SaveTokens(ctx, "access-1", "refresh-1"))

	// Reopening with a different seal key makes every stored value
	// unreadable. The typed layer reports logged out rather than erroring.
	newKey := store.NewSealed(inner, cryptox.DeriveKey([]byte("new-key")))
	reopened := store.NewCredentials(newKey)
	require.Empty(t, reopened.AccessToken(ctx))
	require.Empty(t, reopened.RefreshToken(ctx))
}

func TestSealedClearAndDeletePassThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := memory.NewStore()
	sealed := store.NewSealed(inner, cryptox.DeriveKey([]byte("k")))

	require.NoError(t, sealed.Set(ctx, store.KeyAccessToken, []byte("a")))
	require.NoError(t, sealed.Set(ctx, store.KeyRefreshToken, []byte("r")))

	require.NoError(t, sealed.Delete(ctx, store.KeyAccessToken))
	_, err := inner.Get(ctx, store.KeyAccessToken)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, sealed.Clear(ctx))
	_, err = inner.Get(ctx, store.KeyRefreshToken)
	require.ErrorIs(t, err, store.ErrNotFound)
}
