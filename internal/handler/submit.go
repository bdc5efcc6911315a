package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/middleware"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/service"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type SubmitHandler struct {
	svc *service.SubmitService
}

func NewSubmitHandler(svc *service.SubmitService) *SubmitHandler {
	return &SubmitHandler{svc: svc}
}

// Submit handles POST /api/submit
func (h *SubmitHandler) Submit(c fiber.Ctx) error {
	var req model.SubmitRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errMsg := middleware.ValidateUserID(req.UserID); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}
	req.VideoID = videoID

	sign, errMsg := middleware.ValidateSelectedSign(req.SelectedSign)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}
	req.SelectedSign = sign

	res, err := h.svc.Submit(c.Context(), req)
	if err != nil {
		// The upsert should absorb resubmissions; a surfaced unique
		// violation means two first inserts raced.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Validation already submitted for this video")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit validation")
	}

	Metrics.SubmissionsTotal.Inc()

	return c.JSON(model.SubmitResponse{
		Success: true,
		Message: "Validation submitted successfully",
		Data:    *res,
	})
}
