package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
)

const (
	// how long a gate token stays valid before the client must re-enter the password
	TokenLifetime = 30 * 24 * time.Hour

	// name of the browser cookie carrying the gate session
	GateCookieName = "encore_gate"
)

// claims embedded in a gate token
type Claims struct {
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

var cookieStore *sessions.CookieStore

// sets up the cookie store used for browser gate sessions
func InitializeCookieStore() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	cookieStore = sessions.NewCookieStore([]byte(secret))

	baseURL := os.Getenv("BASE_URL")
	isHTTPS := strings.HasPrefix(baseURL, "https://")

	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(TokenLifetime / time.Second),
		HttpOnly: true,
		Secure:   isHTTPS,
		SameSite: http.SameSiteLaxMode,
	}

	return nil
}

// returns the gate cookie store (nil until InitializeCookieStore)
func CookieStore() *sessions.CookieStore {
	return cookieStore
}

// compares a submitted password against the configured gate password
// in constant time
func CheckGatePassword(submitted string) bool {
	expected := os.Getenv("GATE_PASSWORD")
	if expected == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) == 1
}

// creates a signed gate token for an optional display name
func GenerateToken(displayName string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()

	claims := Claims{
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "encore",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// parses and validates a gate token
func ValidateToken(tokenString string) (*Claims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
