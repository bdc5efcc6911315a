package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/middleware"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/videos — a bare array of {id, path, correctSign}.
func (h *VideoHandler) List(c fiber.Ctx) error {
	videos, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}
	return c.JSON(videos)
}
