package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/middleware"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/service"
)

type HandSignHandler struct {
	svc *service.HandSignService
}

func NewHandSignHandler(svc *service.HandSignService) *HandSignHandler {
	return &HandSignHandler{svc: svc}
}

// List handles GET /api/handsigns — a bare sorted array of label names.
func (h *HandSignHandler) List(c fiber.Ctx) error {
	names, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch hand signs")
	}
	return c.JSON(names)
}
