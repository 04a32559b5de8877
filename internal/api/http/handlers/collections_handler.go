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

// CollectionsHandler manages collection endpoints.
type CollectionsHandler struct {
	service  *service.CollectionService
	uploader storage.Uploader
}

// NewCollectionsHandler constructs handler.
func NewCollectionsHandler(collectionService *service.CollectionService, uploader storage.Uploader) *CollectionsHandler {
	return &CollectionsHandler{service: collectionService, uploader: uploader}
}

// Create handles POST /collections. Accepts JSON or multipart with an
// optional file; the asset URL is attached after the collection exists so
// the storage key can be scoped to the new id.
func (h *CollectionsHandler) Create(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	collection, err := h.service.Create(c.Context(), userID, service.CollectionInput{
		Title:       req.Title,
		Description: req.Description,
		Theme:       req.Theme,
	})
	if err != nil {
		return err
	}

	if imageURL, err := uploadFormFile(c, h.uploader, "collections", collection.ID); err != nil {
		return err
	} else if imageURL != nil {
		collection, err = h.service.AttachImage(c.Context(), collection.ID, *imageURL)
		if err != nil {
			return err
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCollectionResponse(collection)})
}

// List handles GET /collections (public).
func (h *CollectionsHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	collections, err := h.service.ListAll(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCollectionResponses(collections)})
}

// ListMine handles GET /collections/me.
func (h *CollectionsHandler) ListMine(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}
	collections, err := h.service.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCollectionResponses(collections)})
}

// Get handles GET /collections/:id.
func (h *CollectionsHandler) Get(c *fiber.Ctx) error {
	collection, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCollectionResponse(collection)})
}

// Update handles PATCH /collections/:id with optional file replacement.
func (h *CollectionsHandler) Update(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.CollectionInput{
		Title:       req.Title,
		Description: req.Description,
		Theme:       req.Theme,
	}
	if imageURL, err := uploadFormFile(c, h.uploader, "collections", c.Params("id")); err != nil {
		return err
	} else if imageURL != nil {
		input.ImageURL = imageURL
	}

	collection, err := h.service.Update(c.Context(), userID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCollectionResponse(collection)})
}

// Delete handles DELETE /collections/:id.
func (h *CollectionsHandler) Delete(c *fiber.Ctx) error {
	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}
	collection, err := h.service.Delete(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCollectionResponse(collection)})
}
