package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

// RequireAdmin ensures the authenticated principal has the admin flag. Runs
// after Guard.Handle in the chain, so the principal is already live-checked.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.IsAdmin {
			return apperrors.NewForbidden("admin required")
		}
		return c.Next()
	}
}
