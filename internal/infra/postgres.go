package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"thumbforge/internal/config"
	"thumbforge/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.URL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Error enabling pgvector extension: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err := SeedPlans(db); err != nil {
		log.Printf("Error seeding plans: %v", err)
	}

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.Order{},
		&db_models.Payment{},
		&db_models.Generation{},
		&db_models.PromptTemplate{},
	)
}

// SeedPlans inserts the default catalog if it is missing. Prices are in paise.
// The "custom" row prices pay-as-you-go credits per unit.
func SeedPlans(db *gorm.DB) error {
	defaults := []db_models.Plan{
		{Code: "basic", Name: "Basic", Credits: 40, PriceMinor: 49900, Currency: "INR", IsActive: true},
		{Code: "pro", Name: "Pro", Credits: 100, PriceMinor: 99900, Currency: "INR", IsActive: true},
		{Code: db_models.PlanCustom, Name: "Pay as you go", Credits: 0, PriceMinor: 1500, Currency: "INR", IsActive: true},
	}

	for _, plan := range defaults {
		var count int64
		if err := db.Model(&db_models.Plan{}).Where("code = ?", plan.Code).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&plan).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
