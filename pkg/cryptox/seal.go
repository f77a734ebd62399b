// Package cryptox provides the at-rest sealing used by the credential store.
// Stored tokens are small secrets on a shared device; sealing them under a
// device key means a copied database file is useless without the key file.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrSealTooShort reports sealed data shorter than a nonce, which cannot be
// a valid sealing output.
var ErrSealTooShort = errors.New("cryptox: sealed data too short")

// LoadKey reads key material from path and derives a 32-byte sealing key
// using SHA-256. Any length of key material is accepted; derivation
// normalises it.
func LoadKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seal key file: %w", err)
	}
	return DeriveKey(data), nil
}

// DeriveKey derives a 32-byte sealing key from arbitrary key material.
func DeriveKey(material []byte) []byte {
	hash := sha256.Sum256(material)
	return hash[:]
}

// Seal encrypts plaintext with ChaCha20-Poly1305 under key.
// The output format is: [nonce][ciphertext || auth tag], with a fresh random
// nonce per call.
func Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends ciphertext and tag to the nonce prefix.
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal. Tampered or foreign-key data fails
// authentication and returns an error.
func Open(key, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonceSize := aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrSealTooShort
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
