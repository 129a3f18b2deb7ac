package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken("alice@billun.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@billun.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret")

	expired := NewJWTService("test-secret")
	expired.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	expiredToken, err := expired.GenerateAccessToken("alice@billun.com")
	require.NoError(t, err)

	otherKey, err := NewJWTService("other-secret").GenerateAccessToken("alice@billun.com")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice@billun.com"},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@billun.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-token"},
		{"empty", ""},
		{"expired", expiredToken},
		{"wrong key", otherKey},
		{"no subject", noSubject},
		{"no expiry", noExpiry},
		{"none algorithm", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret!"))
}

func TestGenerateTempPassword(t *testing.T) {
	first, err := GenerateTempPassword(12)
	require.NoError(t, err)
	assert.Len(t, first, 12)
	for _, r := range first {
		assert.True(t, strings.ContainsRune(tempPasswordAlphabet, r))
	}

	second, err := GenerateTempPassword(12)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
