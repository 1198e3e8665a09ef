package config

import (
	"FoodTracker-Backend/internal/api/handlers"
	"FoodTracker-Backend/internal/api/presenters"
	"FoodTracker-Backend/internal/api/routes"
	"FoodTracker-Backend/internal/middleware"
	"FoodTracker-Backend/internal/utils"
	"FoodTracker-Backend/internal/utils/storage"
	"FoodTracker-Backend/pkg/analysis"
	"FoodTracker-Backend/pkg/gemini"
	"FoodTracker-Backend/pkg/jwt"
	"FoodTracker-Backend/pkg/meal"
	"FoodTracker-Backend/pkg/narrative"
	"FoodTracker-Backend/pkg/nutrition"
	"FoodTracker-Backend/pkg/pattern"
	"FoodTracker-Backend/pkg/vision"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	maxImageBytes := int64(utils.GetConfigInt("MAX_IMAGE_SIZE_MB", 10)) * 1024 * 1024

	app := fiber.New(fiber.Config{
		AppName:      "FoodTracker Backend " + routes.Version,
		BodyLimit:    int(maxImageBytes) + 1024*1024,
		ErrorHandler: presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("ALLOWED_ORIGINS"))
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX_REQUESTS", 100),
		Expiration: time.Duration(utils.GetConfigInt("RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond,
	}))

	// utils
	var s3 storage.AwsS3
	if bucket := utils.GetConfig("AWS_S3_BUCKET"); bucket != "" {
		s3, err = storage.NewAwsS3(context.Background(), storage.Config{
			Bucket:    bucket,
			Region:    utils.GetConfig("AWS_S3_REGION"),
			AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
			SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
		})
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("AWS_S3_BUCKET not set, meal photos will not be stored")
	}
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:  utils.GetConfig("GEMINI_API_KEY"),
		Model:   utils.GetConfig("GEMINI_MODEL"),
		BaseURL: utils.GetConfig("GEMINI_BASE_URL"),
	})

	// Repository
	analysisRepository := analysis.NewAnalysisRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	visionService := vision.NewVisionService(geminiClient)
	narrativeService := narrative.NewNarrativeService(geminiClient)
	nutritionService := nutrition.NewNutritionService()
	patternService := pattern.NewPatternService(narrativeService)
	analysisService := analysis.NewAnalysisService(analysisRepository, visionService, s3, maxImageBytes)
	mealService := meal.NewMealService(mealRepository, patternService)

	// Handler
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)
	patternHandler := handlers.NewPatternHandler(patternService)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	deviceHandler := handlers.NewDeviceHandler(jwtService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AnalysisHandler:  analysisHandler,
		NutritionHandler: nutritionHandler,
		PatternHandler:   patternHandler,
		MealHandler:      mealHandler,
		DeviceHandler:    deviceHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
