package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrUnseal = errors.New("session value could not be opened")

// Sealer encrypts and authenticates cookie values with NaCl secretbox.
type Sealer struct {
	key [32]byte
}

// NewSealer derives the box key from secret. Any non-empty secret works;
// it is hashed to the 32 bytes secretbox needs.
func NewSealer(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}
	return &Sealer{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal returns base64url(nonce || box).
func (s *Sealer) Seal(plain []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	out := secretbox.Seal(nonce[:], plain, &nonce, &s.key)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

func (s *Sealer) Open(value string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return nil, ErrUnseal
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, ErrUnseal
	}
	return plain, nil
}
