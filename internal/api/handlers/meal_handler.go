package handlers

import (
	"errors"
	"strconv"

	"nutritrack-backend/domain"
	"nutritrack-backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	MealHandler interface {
		TodayCalories(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		FoodHistory(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

// The meal routes keep the exact response bodies the original API exposed;
// existing clients parse them as-is, so no presenter envelope here.

func (h *mealHandler) TodayCalories(c *fiber.Ctx) error {
	userID := c.Params("userid")

	res, err := h.mealPlanService.TodayCalories(c.Context(), userID)
	if err != nil {
		log.Errorf("error fetching today's calories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageInternalError,
		})
	}

	return c.JSON(res)
}

func (h *mealHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.ErrMissingRequiredFields.Error(),
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.ErrMissingRequiredFields.Error(),
		})
	}

	plan, err := h.mealPlanService.AddFood(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrMissingRequiredFields) || errors.Is(err, domain.ErrInvalidCalorieCount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Errorf("error adding food: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageInternalError,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(domain.AddFoodResponse{
		Message:       domain.MessageSuccessAddFood,
		DailyMealPlan: plan,
	})
}

func (h *mealHandler) FoodHistory(c *fiber.Ctx) error {
	userID := c.Params("userid")

	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days < 1 {
		days = 7
	}

	plans, err := h.mealPlanService.History(c.Context(), userID, days)
	if err != nil {
		log.Errorf("error fetching food history: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": domain.MessageInternalError,
		})
	}

	return c.JSON(domain.FoodHistoryResponse{
		Success:   true,
		MealPlans: plans,
	})
}
