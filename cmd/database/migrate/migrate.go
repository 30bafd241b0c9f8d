package migration

import (
	"fmt"
	"log"

	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Report{}); err != nil {
		log.Fatalf("Error migrating report database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Organization{}); err != nil {
		log.Fatalf("Error migrating organization database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DailyMetrics{}); err != nil {
		log.Fatalf("Error migrating daily metrics database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
