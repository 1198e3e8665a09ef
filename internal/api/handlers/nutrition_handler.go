package handlers

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/pkg/nutrition"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		GetSuggestions(c *fiber.Ctx) error
		CalculateGoals(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService, validator *validator.Validate) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
		validator:        validator,
	}
}

func (h *nutritionHandler) GetSuggestions(c *fiber.Ctx) error {
	req := new(domain.NutritionSuggestionsRequest)

	if err := c.BodyParser(req); err != nil || req.FoodItems == nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFoodItems, domain.ErrInvalidFoodItems)
	}

	if err := h.validator.Struct(req.UserGoals); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	suggestions := h.nutritionService.GenerateSuggestions(c.Context(), *req)

	return presenters.KeyedResponse(c, fiber.StatusOK, fiber.Map{
		"success":     true,
		"suggestions": suggestions,
	})
}

func (h *nutritionHandler) CalculateGoals(c *fiber.Ctx) error {
	req := new(domain.UserProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateGoals, err)
	}

	res := h.nutritionService.CalculateGoals(c.Context(), *req)

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCalculateGoals)
}
