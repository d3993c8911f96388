package handler

import (
	"github.com/andersevenrud/userbase/internal/user/dto"
	"github.com/andersevenrud/userbase/internal/user/service"
	"github.com/gofiber/fiber/v2"
)

type MetadataHandler struct {
	metadataService *service.MetadataService
}

func NewMetadataHandler(metadataService *service.MetadataService) *MetadataHandler {
	return &MetadataHandler{metadataService: metadataService}
}

func (h *MetadataHandler) List(c *fiber.Ctx) error {
	entries, err := h.metadataService.List(c.Context(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

// Get responds with the raw value as plain text.
func (h *MetadataHandler) Get(c *fiber.Ctx) error {
	value, err := h.metadataService.Get(c.Context(), CurrentUser(c), c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).SendString(value)
}

func (h *MetadataHandler) Create(c *fiber.Ctx) error {
	err := h.metadataService.Create(c.Context(), CurrentUser(c), c.Params("key"), string(c.Body()))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.SuccessResponse{Success: true})
}

func (h *MetadataHandler) Update(c *fiber.Ctx) error {
	err := h.metadataService.Update(c.Context(), CurrentUser(c), c.Params("key"), string(c.Body()))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.SuccessResponse{Success: true})
}

func (h *MetadataHandler) Delete(c *fiber.Ctx) error {
	err := h.metadataService.Delete(c.Context(), CurrentUser(c), c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.SuccessResponse{Success: true})
}
