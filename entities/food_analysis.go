package entities

import (
	"FoodTracker-Backend/domain"

	"github.com/google/uuid"
)

// FoodAnalysis stores one photo analysis as returned to the client.
type FoodAnalysis struct {
	ID                uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ImageURL          string              `json:"image_url,omitempty"`
	Enriched          bool                `json:"enriched"`
	OverallConfidence float64             `json:"overall_confidence"`
	TotalCalories     float64             `json:"total_calories"`
	Result            domain.FoodAnalysis `gorm:"type:jsonb;serializer:json" json:"result"`
	Timestamp
}
