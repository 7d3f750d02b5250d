package entities

import (
	"time"

	"github.com/google/uuid"
)

// MealEntry is a single logged food item inside a day's plan. Entries are
// stored in append order; MealTime carries the caller's own timestamp and is
// never used for bucketing.
type MealEntry struct {
	FoodName     string    `json:"foodName"`
	CalorieCount float64   `json:"calorieCount"`
	MealTime     time.Time `json:"mealTime"`
}

// DailyMealPlan holds everything a user logged on one calendar day. The
// (user, date) pair is the natural key; date is the canonical YYYY-MM-DD
// string for the server's current day at write time.
type DailyMealPlan struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	User          string      `gorm:"column:user_id;uniqueIndex:idx_meal_plan_user_date" json:"user"`
	Date          string      `gorm:"uniqueIndex:idx_meal_plan_user_date" json:"date"`
	Meals         []MealEntry `gorm:"serializer:json" json:"meals"`
	TotalCalories float64     `json:"totalCalories"`

	Timestamp
}
