package handler

import (
	"os"
	"path/filepath"

	"github.com/andersevenrud/userbase/internal/user/dto"
	"github.com/andersevenrud/userbase/internal/user/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var acceptedAvatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

type AvatarHandler struct {
	userService *service.UserService
	maxBytes    int64
}

func NewAvatarHandler(userService *service.UserService, maxBytes int) *AvatarHandler {
	return &AvatarHandler{userService: userService, maxBytes: int64(maxBytes)}
}

func (h *AvatarHandler) Get(c *fiber.Ctx) error {
	path, err := h.userService.AvatarPath(CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.SendFile(path)
}

// Update accepts a multipart upload in the "upload" field, stages it in the
// OS temp dir and hands it to the service for thumbnailing.
func (h *AvatarHandler) Update(c *fiber.Ctx) error {
	file, err := c.FormFile("upload")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if file.Size > h.maxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "upload file too large"})
	}

	if !acceptedAvatarTypes[file.Header.Get(fiber.HeaderContentType)] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid upload file type"})
	}

	uploadPath := filepath.Join(os.TempDir(), uuid.NewString())
	if err := c.SaveFile(file, uploadPath); err != nil {
		return respondError(c, err)
	}

	if _, err := h.userService.SaveAvatar(c.Context(), CurrentUser(c), uploadPath); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.SuccessResponse{Success: true})
}
