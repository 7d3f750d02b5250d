package config

import (
	"os"
	"time"

	"nutritrack-backend/internal/api/handlers"
	"nutritrack-backend/internal/api/routes"
	"nutritrack-backend/internal/middleware"
	"nutritrack-backend/internal/utils"
	"nutritrack-backend/internal/utils/mailing"
	"nutritrack-backend/internal/utils/storage"
	"nutritrack-backend/pkg/analysis"
	"nutritrack-backend/pkg/jwt"
	"nutritrack-backend/pkg/mealplan"
	"nutritrack-backend/pkg/subscription"
	"nutritrack-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
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
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewSMTPMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	analysisRepository := analysis.NewAnalysisRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, mailer)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	analysisService := analysis.NewAnalysisService(analysisRepository, s3)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	mealHandler := handlers.NewMealHandler(mealPlanService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		MealHandler:         mealHandler,
		UserHandler:         userHandler,
		AnalysisHandler:     analysisHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
