package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/collections-service/internal/api/dto"
	"github.com/spec-kit/collections-service/internal/auth"
	"github.com/spec-kit/collections-service/internal/service"
	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

// UsersHandler exposes account endpoints; mutation routes are admin only.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// List handles GET /users (admin).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	users, err := h.service.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(principal)})
}

// Block handles PATCH /users/:id/block (admin). Takes effect on the target's
// next guarded request even if they hold a valid token.
func (h *UsersHandler) Block(c *fiber.Ctx) error {
	return h.setBlocked(c, true)
}

// Unblock handles PATCH /users/:id/unblock (admin).
func (h *UsersHandler) Unblock(c *fiber.Ctx) error {
	return h.setBlocked(c, false)
}

func (h *UsersHandler) setBlocked(c *fiber.Ctx, blocked bool) error {
	actorID := auth.UserIDFromContext(c)
	if err := h.service.SetBlocked(c.Context(), actorID, c.Params("id"), blocked); err != nil {
		return err
	}
	user, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete handles DELETE /users/:id (admin).
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
