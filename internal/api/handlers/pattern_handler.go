package handlers

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/pkg/pattern"

	"github.com/gofiber/fiber/v2"
)

type (
	PatternHandler interface {
		SummarizePattern(c *fiber.Ctx) error
	}

	patternHandler struct {
		patternService pattern.PatternService
	}
)

func NewPatternHandler(patternService pattern.PatternService) PatternHandler {
	return &patternHandler{patternService: patternService}
}

func (h *patternHandler) SummarizePattern(c *fiber.Ctx) error {
	req := new(domain.PatternSummaryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res := h.patternService.SummarizeRaw(c.Context(), req.Meals)

	return presenters.KeyedResponse(c, fiber.StatusOK, res)
}
