package mealplan

import (
	"context"
	"errors"

	"nutritrack-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MealPlanRepository interface {
		FindByUserAndDate(ctx context.Context, userID string, date string) (*entities.DailyMealPlan, error)
		Upsert(ctx context.Context, plan *entities.DailyMealPlan) error
		FindByUserAndDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*entities.DailyMealPlan, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) FindByUserAndDate(ctx context.Context, userID string, date string) (*entities.DailyMealPlan, error) {
	var plan entities.DailyMealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// Upsert writes the whole record, keyed on (user_id, date). A concurrent
// insert of the same day collapses into an update instead of a duplicate row.
func (r *mealPlanRepository) Upsert(ctx context.Context, plan *entities.DailyMealPlan) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"meals", "total_calories", "updated_at",
			}),
		}).
		Create(plan).Error
}

func (r *mealPlanRepository) FindByUserAndDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*entities.DailyMealPlan, error) {
	var plans []*entities.DailyMealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
