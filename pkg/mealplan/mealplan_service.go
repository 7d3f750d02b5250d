package mealplan

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"

	"github.com/google/uuid"
)

const (
	// DayKeyLayout is the canonical calendar-day key used as part of the
	// (user, date) natural key.
	DayKeyLayout = "2006-01-02"

	defaultHistoryDays = 7
	maxHistoryDays     = 365
)

type (
	MealPlanService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest) (*entities.DailyMealPlan, error)
		TodayCalories(ctx context.Context, userID string) (domain.TodayCaloriesResponse, error)
		History(ctx context.Context, userID string, days int) ([]*entities.DailyMealPlan, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		now                func() time.Time

		// locks serializes writers per (user, day). The read-modify-write in
		// AddFood is not atomic at the storage level, so without this two
		// concurrent adds for a brand-new day could each build a fresh record
		// and one entry would be lost.
		mu    sync.Mutex
		locks map[string]*sync.Mutex
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		now:                time.Now,
		locks:              make(map[string]*sync.Mutex),
	}
}

// NormalizeUserID strips one pair of wrapping quote characters from a user id.
// Some existing clients send the id JSON-encoded inside the path parameter
// (`"abc123"`), and the original API accepted that.
func NormalizeUserID(userID string) string {
	userID = strings.TrimPrefix(userID, `"`)
	return strings.TrimSuffix(userID, `"`)
}

func (s *mealPlanService) lockDay(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// AddFood appends a meal entry to the caller's plan for the server's current
// day. Bucketing always uses wall-clock "now", never the entry's MealTime;
// MealTime is informational only.
func (s *mealPlanService) AddFood(ctx context.Context, req domain.AddFoodRequest) (*entities.DailyMealPlan, error) {
	userID := NormalizeUserID(req.UserID)
	if userID == "" || req.FoodName == "" || req.Calories == 0 {
		return nil, domain.ErrMissingRequiredFields
	}
	if req.Calories < 0 || math.IsNaN(req.Calories) || math.IsInf(req.Calories, 0) {
		return nil, domain.ErrInvalidCalorieCount
	}

	now := s.now()
	today := now.Format(DayKeyLayout)

	mealTime := now
	if req.MealTime != nil {
		mealTime = *req.MealTime
	}

	lock := s.lockDay(userID + "|" + today)
	lock.Lock()
	defer lock.Unlock()

	plan, err := s.mealPlanRepository.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = &entities.DailyMealPlan{
			ID:            uuid.New(),
			User:          userID,
			Date:          today,
			Meals:         []entities.MealEntry{},
			TotalCalories: 0,
		}
	}

	plan.Meals = append(plan.Meals, entities.MealEntry{
		FoodName:     req.FoodName,
		CalorieCount: req.Calories,
		MealTime:     mealTime,
	})
	plan.TotalCalories += req.Calories

	if err := s.mealPlanRepository.Upsert(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// TodayCalories returns the running total for the current day. A user with no
// record today gets the zero value, never an error.
func (s *mealPlanService) TodayCalories(ctx context.Context, userID string) (domain.TodayCaloriesResponse, error) {
	userID = NormalizeUserID(userID)
	today := s.now().Format(DayKeyLayout)

	plan, err := s.mealPlanRepository.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return domain.TodayCaloriesResponse{}, err
	}
	if plan == nil {
		return domain.TodayCaloriesResponse{TotalCalories: 0}, nil
	}

	return domain.TodayCaloriesResponse{
		TotalCalories: plan.TotalCalories,
		Meals:         plan.Meals,
	}, nil
}

// History returns the plans inside the closed window [today-(days-1), today],
// most recent first. days is clamped to [1, maxHistoryDays]; out-of-range
// values fall back to the 7-day default rather than erroring.
func (s *mealPlanService) History(ctx context.Context, userID string, days int) ([]*entities.DailyMealPlan, error) {
	userID = NormalizeUserID(userID)
	if days < 1 {
		days = defaultHistoryDays
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}

	now := s.now()
	endDate := now.Format(DayKeyLayout)
	startDate := now.AddDate(0, 0, -(days - 1)).Format(DayKeyLayout)

	plans, err := s.mealPlanRepository.FindByUserAndDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []*entities.DailyMealPlan{}
	}
	return plans, nil
}
