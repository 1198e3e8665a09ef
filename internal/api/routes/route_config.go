package routes

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/internal/api/handlers"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/internal/middleware"
	"FoodTracker-Backend/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const Version = "1.0.0"

type Config struct {
	App              *fiber.App
	AnalysisHandler  handlers.AnalysisHandler
	NutritionHandler handlers.NutritionHandler
	PatternHandler   handlers.PatternHandler
	MealHandler      handlers.MealHandler
	DeviceHandler    handlers.DeviceHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.SecurityMiddleware())
	c.GuestRoute()
	c.Analysis()
	c.Devices()
	c.Meals()
	c.NotFound()
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   Version,
		})
	})
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

// Analysis registers the endpoints the mobile client calls without a device token.
func (c *Config) Analysis() {
	api := c.App.Group("/api")
	{
		api.Post("/analyze-food", c.AnalysisHandler.AnalyzeFood)
		api.Get("/analyses/:id", c.AnalysisHandler.GetAnalysis)
		api.Post("/nutrition-suggestions", c.NutritionHandler.GetSuggestions)
		api.Post("/pattern-summary", c.PatternHandler.SummarizePattern)
		api.Post("/v1/goals/calculate", c.NutritionHandler.CalculateGoals)
	}
}

func (c *Config) Devices() {
	devices := c.App.Group("/api/v1/devices")
	devices.Post("/token", c.DeviceHandler.IssueToken)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Get("/daily-summary", c.MealHandler.GetDailySummary)
	meals.Get("/patterns", c.MealHandler.GetDailyPatterns)

	meals.Post("", c.MealHandler.LogMeal)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Delete("/:id", c.MealHandler.DeleteMeal)
}

func (c *Config) NotFound() {
	c.App.Use(func(c *fiber.Ctx) error {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRouteNotFound, nil)
	})
}
