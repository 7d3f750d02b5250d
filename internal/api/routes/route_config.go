package routes

import (
	"nutritrack-backend/internal/api/handlers"
	"nutritrack-backend/internal/middleware"
	"nutritrack-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	MealHandler         handlers.MealHandler
	UserHandler         handlers.UserHandler
	AnalysisHandler     handlers.AnalysisHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Meal()
	c.User()
	c.Analysis()
	c.GuestRoute()
}

// Meal keeps the original public paths and bodies so existing clients keep
// working without changes; the userid travels in the path, not in a token.
func (c *Config) Meal() {
	meal := c.App.Group("/meal")
	{
		meal.Get("/today-calories/:userid", c.MealHandler.TodayCalories)
		meal.Post("/add-food", c.MealHandler.AddFood)
		meal.Get("/food-history/:userid", c.MealHandler.FoodHistory)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.SubscriptionHandler.CreateTransaction)
	}
}

func (c *Config) Analysis() {
	scan := c.App.Group("/api/v1/food-analysis", c.Middleware.AuthMiddleware(c.JWTService))
	scan.Post("", c.AnalysisHandler.AnalyzeFoodImage)
	scan.Get("", c.AnalysisHandler.GetRecentScans)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.SubscriptionHandler.MidtransWebhookHandler)
}
