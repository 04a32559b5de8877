package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/collections-service/internal/domain"
	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Guard validates bearer tokens on protected routes. A token only proves a
// past successful login; the subject is re-fetched from the store on every
// request so an account blocked after issuance is rejected immediately.
type Guard struct {
	tokens *TokenManager
	users  UserStore
	logger *zap.Logger
}

// NewGuard constructs the middleware.
func NewGuard(tokens *TokenManager, users UserStore, logger *zap.Logger) *Guard {
	return &Guard{tokens: tokens, users: users, logger: logger}
}

// Handle enforces authentication for protected routes. Responses stay generic
// (401/403); the specific sub-case is only kept in internal logs.
func (g *Guard) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		g.logger.Debug("guard rejected request", zap.String("reason", "missing token"))
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		g.logger.Debug("guard rejected request", zap.String("reason", "malformed header"))
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := g.tokens.ParseToken(parts[1])
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "expired token"
		}
		g.logger.Debug("guard rejected request", zap.String("reason", reason))
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	user, err := g.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			g.logger.Debug("guard rejected request", zap.String("reason", "subject not found"))
			return apperrors.NewUnauthorized("invalid or expired token")
		}
		return apperrors.MapError(err)
	}

	if user.IsBlocked {
		g.logger.Info("blocked account presented valid token", zap.String("user_id", user.ID))
		return apperrors.NewForbidden("account is blocked")
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated user.
func PrincipalFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// UserIDFromContext returns the authenticated user's id. Empty only when
// called outside a guarded route, which is a programmer error.
func UserIDFromContext(c *fiber.Ctx) string {
	user, ok := PrincipalFromContext(c)
	if !ok {
		return ""
	}
	return user.ID
}
