package domain

import (
	"errors"
	"time"

	"nutritrack-backend/entities"
)

var (
	MessageSuccessAddFood = "Food added successfully!"
	MessageInternalError  = "Internal server error."

	MessageFailedAddFood     = "failed to add food entry"
	MessageFailedTodayTotal  = "failed to retrieve today's calories"
	MessageFailedFoodHistory = "failed to retrieve food history"

	ErrMissingRequiredFields = errors.New("Missing required fields.")
	ErrInvalidCalorieCount   = errors.New("calories must be a non-negative number")
)

type (
	// AddFoodRequest mirrors the body existing clients already send to
	// POST /meal/add-food. A zero calorie value fails "required" on purpose,
	// matching the original contract.
	AddFoodRequest struct {
		UserID   string     `json:"userid" validate:"required"`
		FoodName string     `json:"foodName" validate:"required"`
		Calories float64    `json:"calories" validate:"required,gte=0"`
		MealTime *time.Time `json:"mealTime" validate:"omitempty"`
	}

	AddFoodResponse struct {
		Message       string                  `json:"message"`
		DailyMealPlan *entities.DailyMealPlan `json:"dailyMealPlan"`
	}

	// TodayCaloriesResponse omits meals entirely when no record exists for
	// the day, so an empty day serializes as {"totalCalories":0}.
	TodayCaloriesResponse struct {
		TotalCalories float64              `json:"totalCalories"`
		Meals         []entities.MealEntry `json:"meals,omitempty"`
	}

	FoodHistoryResponse struct {
		Success   bool                      `json:"success"`
		MealPlans []*entities.DailyMealPlan `json:"mealPlans"`
	}
)
