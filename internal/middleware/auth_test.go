package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lifelog/lifelog-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID int64, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// guarded wires the middleware in front of a probe handler that records
// whether it ran and which user id it saw.
func guarded(t *testing.T) (http.Handler, *int64, *bool) {
	t.Helper()
	var seenID int64
	var called bool
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := UserID(r.Context())
		require.True(t, ok)
		seenID = id
		w.WriteHeader(http.StatusOK)
	})
	cfg := &config.Config{JWTSecret: testSecret}
	return AuthMiddleware(cfg)(probe), &seenID, &called
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	h, _, called := guarded(t)

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"No token, authorization denied"}`, rec.Body.String())
	assert.False(t, *called, "handler must not run without a token")
}

func TestAuthMiddlewareInvalidTokens(t *testing.T) {
	valid := signToken(t, testSecret, 7, time.Hour)

	cases := map[string]string{
		"not bearer":      "Token abc",
		"empty bearer":    "Bearer ",
		"garbage":         "Bearer not.a.jwt",
		"wrong secret":    "Bearer " + signToken(t, "other-secret", 7, time.Hour),
		"tampered":        "Bearer " + valid[:len(valid)-3] + "xxx",
		"expired":         "Bearer " + signToken(t, testSecret, 7, -time.Minute),
		"non-numeric sub": "Bearer " + signStringSubject(t, "abc"),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			h, _, called := guarded(t)
			req := httptest.NewRequest(http.MethodGet, "/journal", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Token is not valid"}`, rec.Body.String())
			assert.False(t, *called)
		})
	}
}

func signStringSubject(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	h, seenID, called := guarded(t)

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, 42, time.Hour))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
	assert.Equal(t, int64(42), *seenID)
}

func TestAuthMiddlewareRejectsUnsignedAlg(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	h, _, called := guarded(t)
	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestUserIDAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserID(req.Context())
	assert.False(t, ok)
}
