package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/collections-service/internal/api/dto"
	"github.com/spec-kit/collections-service/internal/auth"
	"github.com/spec-kit/collections-service/internal/service"
	"github.com/spec-kit/collections-service/internal/storage"
	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

// ItemsHandler manages item endpoints.
type ItemsHandler struct {
	service  *service.ItemService
	uploader storage.Uploader
}

// NewItemsHandler constructs handler.
func NewItemsHandler(itemService *service.ItemService, uploader storage.Uploader) *ItemsHandler {
	return &ItemsHandler{service: itemService, uploader: uploader}
}

// Create handles POST /items.
func (h *ItemsHandler) Create(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CollectionID == "" || req.Name == "" {
		return apperrors.NewValidationError("collection_id and name required", nil)
	}

	item, err := h.service.Create(c.Context(), userID, service.ItemInput{
		CollectionID: req.CollectionID,
		Name:         req.Name,
		Tags:         req.Tags,
	})
	if err != nil {
		return err
	}

	if imageURL, err := uploadFormFile(c, h.uploader, "items", item.ID); err != nil {
		return err
	} else if imageURL != nil {
		item, err = h.service.AttachImage(c.Context(), item.ID, *imageURL)
		if err != nil {
			return err
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewItemResponse(item)})
}

// List handles GET /items (public).
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	items, err := h.service.ListAll(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewItemResponses(items)})
}

// ListMine handles GET /items/me.
func (h *ItemsHandler) ListMine(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}
	items, err := h.service.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewItemResponses(items)})
}

// ListByCollection handles GET /collections/:id/items (public).
func (h *ItemsHandler) ListByCollection(c *fiber.Ctx) error {
	items, err := h.service.ListByCollection(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewItemResponses(items)})
}

// Get handles GET /items/:id.
func (h *ItemsHandler) Get(c *fiber.Ctx) error {
	item, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewItemResponse(item)})
}

// Update handles PATCH /items/:id with optional file replacement.
func (h *ItemsHandler) Update(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.ItemInput{Name: req.Name, Tags: req.Tags}
	if imageURL, err := uploadFormFile(c, h.uploader, "items", c.Params("id")); err != nil {
		return err
	} else if imageURL != nil {
		input.ImageURL = imageURL
	}

	item, err := h.service.Update(c.Context(), userID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewItemResponse(item)})
}

// Delete handles DELETE /items/:id.
func (h *ItemsHandler) Delete(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}
	item, err := h.service.Delete(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewItemResponse(item)})
}
