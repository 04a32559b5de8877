package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

func newGuardApp(t *testing.T, guard *Guard) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})
	app.Get("/protected", guard.Handle, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": UserIDFromContext(c)})
	})
	return app
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGuard_MissingToken(t *testing.T) {
	t.Parallel()

	guard := NewGuard(NewTokenManager("secret", time.Hour), newFakeStore(), zap.NewNop())
	resp := doProtected(t, newGuardApp(t, guard), "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_MalformedHeader(t *testing.T) {
	t.Parallel()

	guard := NewGuard(NewTokenManager("secret", time.Hour), newFakeStore(), zap.NewNop())
	app := newGuardApp(t, guard)

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		resp := doProtected(t, app, header)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestGuard_ValidToken(t *testing.T) {
	t.Parallel()

	alice := newTestUser(t, "u1", "alice@example.com", "s3cr3t", false)
	tm := NewTokenManager("secret", time.Hour)
	guard := NewGuard(tm, newFakeStore(alice), zap.NewNop())

	token, _, err := tm.GenerateToken("u1")
	require.NoError(t, err)

	resp := doProtected(t, newGuardApp(t, guard), "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, "u1", payload.UserID)
}

func TestGuard_WrongSecret(t *testing.T) {
	t.Parallel()

	alice := newTestUser(t, "u1", "alice@example.com", "s3cr3t", false)
	issuer := NewTokenManager("secret-one", time.Hour)
	guard := NewGuard(NewTokenManager("secret-two", time.Hour), newFakeStore(alice), zap.NewNop())

	token, _, err := issuer.GenerateToken("u1")
	require.NoError(t, err)

	resp := doProtected(t, newGuardApp(t, guard), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_ExpiredToken(t *testing.T) {
	t.Parallel()

	alice := newTestUser(t, "u1", "alice@example.com", "s3cr3t", false)
	guard := NewGuard(NewTokenManager("secret", time.Hour), newFakeStore(alice), zap.NewNop())

	claims := &Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	resp := doProtected(t, newGuardApp(t, guard), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_SubjectGone(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	guard := NewGuard(tm, newFakeStore(), zap.NewNop())

	token, _, err := tm.GenerateToken("deleted-user")
	require.NoError(t, err)

	resp := doProtected(t, newGuardApp(t, guard), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_BlockedAfterIssuance(t *testing.T) {
	t.Parallel()

	// an unexpired, correctly signed token must stop working the moment the
	// account is blocked: account standing is re-read on every request
	alice := newTestUser(t, "u1", "alice@example.com", "s3cr3t", false)
	store := newFakeStore(alice)
	tm := NewTokenManager("secret", time.Hour)
	guard := NewGuard(tm, store, zap.NewNop())
	app := newGuardApp(t, guard)

	token, _, err := tm.GenerateToken("u1")
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	alice.IsBlocked = true

	resp = doProtected(t, app, "Bearer "+token)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGuard_StoreUnavailable(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	store := &fakeUserStore{err: errStoreDown}
	guard := NewGuard(tm, store, zap.NewNop())

	token, _, err := tm.GenerateToken("u1")
	require.NoError(t, err)

	resp := doProtected(t, newGuardApp(t, guard), "Bearer "+token)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
