package analysis

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	AnalysisRepository interface {
		CreateAnalysis(ctx context.Context, analysis *entities.FoodAnalysis) error
		GetAnalysisByID(ctx context.Context, id string) (*entities.FoodAnalysis, error)
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) CreateAnalysis(ctx context.Context, analysis *entities.FoodAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

func (r *analysisRepository) GetAnalysisByID(ctx context.Context, id string) (*entities.FoodAnalysis, error) {
	var analysis entities.FoodAnalysis
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}
