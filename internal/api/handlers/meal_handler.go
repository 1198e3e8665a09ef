package handlers

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/pkg/meal"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		LogMeal(c *fiber.Ctx) error
		GetMeals(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
		GetDailyPatterns(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) LogMeal(c *fiber.Ctx) error {
	deviceID := c.Locals("device_id").(string)
	req := new(domain.LogMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMeal, err)
	}

	res, err := h.mealService.LogMeal(c.Context(), *req, deviceID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLogMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMeal)
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	deviceID := c.Locals("device_id").(string)
	query := new(domain.DayQuery)

	if err := c.QueryParser(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	res, err := h.mealService.GetMeals(c.Context(), *query, deviceID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	deviceID := c.Locals("device_id").(string)
	mealID := c.Params("id")

	if err := h.mealService.DeleteMeal(c.Context(), mealID, deviceID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealHandler) GetDailySummary(c *fiber.Ctx) error {
	deviceID := c.Locals("device_id").(string)
	query := new(domain.DailySummaryQuery)

	if err := c.QueryParser(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailySummary, err)
	}

	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailySummary, err)
	}

	res, err := h.mealService.GetDailySummary(c.Context(), *query, deviceID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetDailySummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailySummary)
}

func (h *mealHandler) GetDailyPatterns(c *fiber.Ctx) error {
	deviceID := c.Locals("device_id").(string)
	query := new(domain.DayQuery)

	if err := c.QueryParser(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPatterns, err)
	}

	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPatterns, err)
	}

	res, err := h.mealService.GetDailyPatterns(c.Context(), *query, deviceID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPatterns, err)
	}

	return presenters.KeyedResponse(c, fiber.StatusOK, res)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMealNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTimezone),
		errors.Is(err, domain.ErrInvalidTimestamp):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
