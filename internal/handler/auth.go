package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/middleware"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(model.LoginResponse{Success: true, User: user})
}
