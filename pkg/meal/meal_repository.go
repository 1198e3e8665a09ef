package meal

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.MealLog) error
		GetMealByID(ctx context.Context, id string) (*entities.MealLog, error)
		DeleteMeal(ctx context.Context, id string) error
		// GetMealsByRange returns meals with start <= eaten_at < end, oldest first.
		GetMealsByRange(ctx context.Context, deviceID string, start, end time.Time) ([]*entities.MealLog, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.MealLog) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.MealLog, error) {
	var meal entities.MealLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealLog{}).Error
}

func (r *mealRepository) GetMealsByRange(ctx context.Context, deviceID string, start, end time.Time) ([]*entities.MealLog, error) {
	var meals []*entities.MealLog
	if err := r.db.WithContext(ctx).
		Where("device_id = ? AND eaten_at >= ? AND eaten_at < ?", deviceID, start, end).
		Order("eaten_at asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
