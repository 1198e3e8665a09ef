package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DeviceID    string     `gorm:"index:idx_meal_logs_device_eaten_at,priority:1;not null" json:"device_id"`
	Name        string     `gorm:"not null" json:"name"`
	EatenAt     time.Time  `gorm:"index:idx_meal_logs_device_eaten_at,priority:2;not null" json:"eaten_at"`
	MealType    string     `json:"meal_type"`
	Location    string     `json:"location"`
	Cuisine     string     `json:"cuisine,omitempty"`
	PortionSize string     `json:"portion_size"`
	MacroGuess  string     `json:"macro_guess"`
	Ingredients []string   `gorm:"type:jsonb;serializer:json" json:"ingredients"`
	Calories    float64    `json:"calories"`
	Protein     float64    `json:"protein"`
	Carbs       float64    `json:"carbs"`
	Fat         float64    `json:"fat"`
	Fiber       float64    `json:"fiber"`
	HealthScore int        `json:"health_score"`
	Verified    bool       `json:"verified"`
	AnalysisID  *uuid.UUID `gorm:"type:uuid" json:"analysis_id,omitempty"`

	Analysis *FoodAnalysis `gorm:"foreignKey:AnalysisID" json:"-"`
	Timestamp
}
