package cryptox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agromaps/agromaps-go/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSealRoundTrip(t *testing.T) {
	t.Parallel()

	key := cryptox.DeriveKey([]byte("device key material"))
	plaintext := []byte(`{"access":"A1","refresh":"R1"}`)

	sealed, err := cryptox.Seal(key, plaintext)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, sealed)

	opened, err := cryptox.Open(key, sealed)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestSealNoncesDiffer(t *testing.T) {
	t.Parallel()

	key := cryptox.DeriveKey([]byte("k"))

	a, err := cryptox.Seal(key, []byte("same"))
	require.NoError(t, err)
	b, err := cryptox.Seal(key, []byte("same"))
	require.NoError(t, err)

	// Fresh nonce per call means identical plaintext seals differently.
	require.NotEqual(t, a, b)
}

func TestOpenFailures(t *testing.T) {
	t.Parallel()

	key := cryptox.DeriveKey([]byte("right"))
	sealed, err := cryptox.Seal(key, []byte("secret"))
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := cryptox.Open(cryptox.DeriveKey([]byte("wrong")), sealed)
		require.Error(t, err)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		mangled := append([]byte(nil), sealed...)
		mangled[len(mangled)-1] ^= 0xFF
		_, err := cryptox.Open(key, mangled)
		require.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := cryptox.Open(key, []byte{0x01, 0x02})
		require.ErrorIs(t, err, cryptox.ErrSealTooShort)
	})
}

func TestLoadKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "seal.key")
	require.NoError(t, os.WriteFile(path, []byte("file material"), 0o600))

	key, err := cryptox.LoadKey(path)
	require.NoError(t, err)
	require.Len(t, key, 32)
	require.Equal(t, cryptox.DeriveKey([]byte("file material")), key)

	_, err = cryptox.LoadKey(filepath.Join(dir, "missing.key"))
	require.Error(t, err)
}
