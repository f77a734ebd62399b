package store

import (
	"context"
	"fmt"

	"github.com/agromaps/agromaps-go/pkg/cryptox"
)

// Sealed decorates a KV driver so values are encrypted at rest. Keys remain
// plaintext; only values are sealed. Any driver can be wrapped, selection
// happens at composition time alongside driver selection.
type Sealed struct {
	inner KV
	key   []byte
}

// NewSealed wraps inner with at-rest sealing under a 32-byte key (see
// cryptox.DeriveKey / cryptox.LoadKey).
func NewSealed(inner KV, key []byte) *Sealed {
	return &Sealed{inner: inner, key: key}
}

func (s *Sealed) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	plaintext, err := cryptox.Open(s.key, sealed)
	if err != nil {
		// Undecryptable stored data means the seal key changed or the file
		// was tampered with. Surface as a read error; the credential layer
		// fails open to logged-out.
		return nil, fmt.Errorf("unseal %q: %w", key, err)
	}
	return plaintext, nil
}

func (s *Sealed) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(s.key, value)
	if err != nil {
		return fmt.Errorf("seal %q: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *Sealed) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *Sealed) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}

func (s *Sealed) Close() error {
	return s.inner.Close()
}
