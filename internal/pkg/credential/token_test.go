package credential

import (
	"fmt"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestIssueDecode_RoundTrip(t *testing.T) {
	m := newTestManager(nil)

	token, err := m.Issue("user-1", "a@b.c", time.Hour)
	require.NoError(t, err)

	claims, err := m.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
}

func TestDecode_ExpiredAfterTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newTestManager(clock.Now)

	token, err := m.Issue("user-1", "a@b.c", time.Minute)
	require.NoError(t, err)

	clock.t = clock.t.Add(30 * time.Second)
	_, err = m.Decode(token)
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = m.Decode(token)
	assert.ErrorIs(t, err, ErrExpiredCredential)
}

func TestIssue_DefaultTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newTestManager(clock.Now)

	token, err := m.Issue("user-1", "a@b.c", 0)
	require.NoError(t, err)

	claims, err := m.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(DefaultTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestDecode_TamperedToken(t *testing.T) {
	m := newTestManager(nil)

	token, err := m.Issue("user-1", "a@b.c", time.Hour)
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		b := []byte(token)
		b[i] ^= 0x01
		_, err := m.Decode(string(b))
		assert.ErrorIs(t, err, ErrInvalidCredential, "position %d", i)
	}
}

func TestDecode_TamperedLastCharacter(t *testing.T) {
	m := newTestManager(nil)

	for i := 0; i < 200; i++ {
		token, err := m.Issue(fmt.Sprintf("user-%d", i), "a@b.c", time.Hour)
		require.NoError(t, err)

		b := []byte(token)
		b[len(b)-1] ^= 0x01
		_, err = m.Decode(string(b))
		assert.ErrorIs(t, err, ErrInvalidCredential, "token %d", i)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	token, err := NewManager("other-secret", time.Hour).Issue("user-1", "a@b.c", time.Hour)
	require.NoError(t, err)

	_, err = newTestManager(nil).Decode(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestDecode_RejectsOtherAlgorithms(t *testing.T) {
	m := newTestManager(nil)
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Decode(unsigned)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	hs512, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = m.Decode(hs512)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestDecode_Garbage(t *testing.T) {
	m := newTestManager(nil)

	for _, s := range []string{"", "abc", "a.b.c", "....."} {
		_, err := m.Decode(s)
		assert.ErrorIs(t, err, ErrInvalidCredential, s)
	}
}
