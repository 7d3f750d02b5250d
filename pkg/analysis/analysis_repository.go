package analysis

import (
	"context"

	"nutritrack-backend/entities"

	"gorm.io/gorm"
)

type (
	AnalysisRepository interface {
		CreateFoodScan(ctx context.Context, scan *entities.FoodScan) error
		UpdateFoodScan(ctx context.Context, scan *entities.FoodScan) error
		GetFoodScans(ctx context.Context, userID string, limit int) ([]*entities.FoodScan, error)
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) CreateFoodScan(ctx context.Context, scan *entities.FoodScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *analysisRepository) UpdateFoodScan(ctx context.Context, scan *entities.FoodScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

func (r *analysisRepository) GetFoodScans(ctx context.Context, userID string, limit int) ([]*entities.FoodScan, error) {
	var scans []*entities.FoodScan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}
