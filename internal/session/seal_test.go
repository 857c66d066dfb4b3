package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer(t *testing.T) {
	_, err := NewSealer("")
	require.Error(t, err)

	s, err := NewSealer("k")
	require.NoError(t, err)

	a, err := s.Seal([]byte("hello"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("hello"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "nonces must differ")

	plain, err := s.Open(a)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(plain))

	tampered := []byte(a)
	tampered[len(tampered)/2] ^= 0x01

	for _, bad := range []string{"", "%%%", "c2hvcnQ", string(tampered)} {
		_, err := s.Open(bad)
		assert.ErrorIs(t, err, ErrUnseal, bad)
	}
}
