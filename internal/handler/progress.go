package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/middleware"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/service"
)

type ProgressHandler struct {
	svc *service.ProgressService
}

func NewProgressHandler(svc *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// Get handles GET /api/progress/:userId
func (h *ProgressHandler) Get(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseUserID(c.Params("userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	resp, err := h.svc.Progress(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute progress")
	}

	return c.JSON(resp)
}
