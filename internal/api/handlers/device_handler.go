package handlers

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	DeviceHandler interface {
		IssueToken(c *fiber.Ctx) error
	}

	deviceHandler struct {
		jwtService jwt.JWTService
	}
)

func NewDeviceHandler(jwtService jwt.JWTService) DeviceHandler {
	return &deviceHandler{jwtService: jwtService}
}

// IssueToken registers a new anonymous device and returns its bearer token.
func (h *deviceHandler) IssueToken(c *fiber.Ctx) error {
	deviceID := uuid.NewString()

	token, err := h.jwtService.GenerateTokenDevice(deviceID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedIssueToken, err)
	}

	return presenters.SuccessResponse(c, domain.DeviceTokenResponse{
		DeviceID: deviceID,
		Token:    token,
	}, fiber.StatusCreated, domain.MessageSuccessIssueToken)
}
