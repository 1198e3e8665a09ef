package migration

import (
	"FoodTracker-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodAnalysis{}); err != nil {
		log.Printf("Error migrating food analysis database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealLog{}); err != nil {
		log.Printf("Error migrating meal log database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
