package config

import (
	"log"

	"salestrack/internal/adapters/persistence/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate applies all pending schema migrations
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20251201_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.User{},
					&models.Attendance{},
					&models.LastLocation{},
					&models.Dealer{},
					&models.Visit{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("visits", "dealers", "last_locations", "attendances", "users")
			},
		},
		{
			ID: "20251205_add_route_plans",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.RoutePlan{}, &models.RoutePlanItem{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("route_plan_items", "route_plans")
			},
		},
		{
			ID: "20251206_add_claims",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Claim{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("claims")
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return err
	}

	log.Println("✅ Database migration completed")
	return nil
}
