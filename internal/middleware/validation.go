package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema expectations.
const (
	MaxVideoIDLen      = 512 // video_id holds a file path
	MaxSelectedSignLen = 64
)

// ErrorResponse is a helper that returns the standard API failure shape.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// ValidateUserID checks that a user id is a positive integer. Zero is
// rejected: participant ids start at 1, and a zero id is indistinguishable
// from an absent field in a JSON body.
func ValidateUserID(id int) string {
	if id <= 0 {
		return "userId is required and must be a positive integer"
	}
	return ""
}

// ParseUserID parses a path parameter as a user id.
func ParseUserID(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "userId must be an integer"
	}
	if errMsg := ValidateUserID(id); errMsg != "" {
		return 0, errMsg
	}
	return id, ""
}

// ValidateVideoID checks that a video id is present and within limits. Video
// ids are file paths, so beyond presence and length there is little to check.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 512 characters"
	}
	return id, ""
}

// ValidateSelectedSign checks that a selected sign is present and within
// limits.
func ValidateSelectedSign(sign string) (string, string) {
	sign = strings.TrimSpace(sign)
	if sign == "" {
		return "", "selectedSign is required"
	}
	if len(sign) > MaxSelectedSignLen {
		return "", "selectedSign must be at most 64 characters"
	}
	return sign, ""
}
