package auth

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_Success(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	token, err := GenerateToken("alice")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "token should have 3 parts")
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	_, err := GenerateToken("alice")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET not set")
}

func TestValidateToken_ValidToken(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	token, err := GenerateToken("alice")
	require.NoError(t, err)

	claims, err := ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "alice", claims.DisplayName)
	assert.Equal(t, "encore", claims.Issuer)
}

func TestValidateToken_EmptyDisplayName(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	token, err := GenerateToken("")
	require.NoError(t, err)

	claims, err := ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "", claims.DisplayName)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	// create an expired token
	claims := Claims{
		DisplayName: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret-key-for-testing"))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)

	assert.Error(t, err, "expired token should be rejected")
}

func TestValidateToken_TamperedToken(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	token, err := GenerateToken("alice")
	require.NoError(t, err)

	tamperedToken := token[:len(token)-5] + "XXXXX"

	_, err = ValidateToken(tamperedToken)
	assert.Error(t, err, "tampered token should be rejected")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	token, err := GenerateToken("alice")
	require.NoError(t, err)

	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "a-different-secret")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	_, err = ValidateToken(token)
	assert.Error(t, err, "token signed with another secret should be rejected")
}

func TestCheckGatePassword(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"GATE_PASSWORD", "open-sesame")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"GATE_PASSWORD")

	assert.True(t, CheckGatePassword("open-sesame"))
	assert.False(t, CheckGatePassword("wrong"))
	assert.False(t, CheckGatePassword(""))
}

func TestCheckGatePassword_Unconfigured(t *testing.T) {
	os.Unsetenv( //nolint:errcheck // test cleanup
	"GATE_PASSWORD")

	assert.False(t, CheckGatePassword(""), "empty configured password never matches")
	assert.False(t, CheckGatePassword("anything"))
}

func TestInitializeCookieStore(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	require.NoError(t, InitializeCookieStore())
	require.NotNil(t, CookieStore())
	assert.Equal(t, int(TokenLifetime/time.Second), CookieStore().Options.MaxAge)
	assert.True(t, CookieStore().Options.HttpOnly)
}

func TestInitializeCookieStore_MissingSecret(t *testing.T) {
	os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	assert.Error(t, InitializeCookieStore())
}
