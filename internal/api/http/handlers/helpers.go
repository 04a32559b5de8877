package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/collections-service/internal/storage"
	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

// uploadFormFile stores the optional multipart "file" part and returns its
// public URL. Returns (nil, nil) when the request carries no file.
func uploadFormFile(c *fiber.Ctx, uploader storage.Uploader, prefix, resourceID string) (*string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		return nil, nil
	}
	if uploader == nil {
		return nil, apperrors.NewValidationError("file uploads not configured", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable file", nil)
	}
	defer file.Close()

	key := storage.ObjectKey(prefix, resourceID)
	url, err := uploader.Upload(c.Context(), key, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &url, nil
}

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
