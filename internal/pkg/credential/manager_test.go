package credential

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestManager(now func() time.Time) *Manager {
	opts := []Option{WithCost(bcrypt.MinCost)}
	if now != nil {
		opts = append(opts, WithClock(now))
	}
	return NewManager("test-secret", 0, opts...)
}

func TestHashAndVerify(t *testing.T) {
	m := newTestManager(nil)

	digest, err := m.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", digest)

	assert.True(t, m.Verify("s3cret-pass", digest))
	assert.False(t, m.Verify("s3cret-pas", digest))
	assert.False(t, m.Verify("", digest))
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	m := newTestManager(nil)

	a, err := m.Hash("same")
	require.NoError(t, err)
	b, err := m.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, m.Verify("same", a))
	assert.True(t, m.Verify("same", b))
}

func TestVerify_MalformedDigest(t *testing.T) {
	m := newTestManager(nil)

	assert.NotPanics(t, func() {
		assert.False(t, m.Verify("pw", ""))
		assert.False(t, m.Verify("pw", "not-a-bcrypt-digest"))
		assert.False(t, m.Verify("pw", "$2a$10$short"))
	})
}

func TestHash_TooLong(t *testing.T) {
	m := newTestManager(nil)

	_, err := m.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNewManager_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewManager("x", 0).TTL())
	assert.Equal(t, time.Hour, NewManager("x", time.Hour).TTL())
}
