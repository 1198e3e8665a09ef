package handlers

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/pkg/analysis"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnalysisHandler interface {
		AnalyzeFood(c *fiber.Ctx) error
		GetAnalysis(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *analysisHandler) AnalyzeFood(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoImage, domain.ErrNoImage)
	}

	req := domain.AnalyzeFoodRequest{Image: file}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoImage, domain.ErrNoImage)
	}

	res, err := h.analysisService.AnalyzeFood(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoImage):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoImage, err)
		case errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFileType, err)
		case errors.Is(err, domain.ErrImageTooLarge):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFileTooLarge, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeFood, err)
		}
	}

	return presenters.KeyedResponse(c, fiber.StatusOK, res)
}

func (h *analysisHandler) GetAnalysis(c *fiber.Ctx) error {
	res, err := h.analysisService.GetAnalysis(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAnalysis, err)
		}
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAnalysis, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAnalysis, err)
	}

	return presenters.KeyedResponse(c, fiber.StatusOK, res)
}
