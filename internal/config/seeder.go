package config

import (
	"errors"
	"log"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// demoSalesUsers are created only in dev mode
var demoSalesUsers = []struct {
	Name     string
	Email    string
	Password string
}{
	{Name: "Moslem Ali Sheikh", Email: "sales1@example.com", Password: "Sales@123"},
	{Name: "Jack Sparrow", Email: "sales2@example.com", Password: "Sales@123"},
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		return err
	}

	if s.cfg.IsDev() {
		if err := s.seedSalesUsers(); err != nil {
			log.Printf("⚠️ Sales user seeder skipped: %v", err)
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser creates the admin account or resets its password and role
func (s *Seeder) seedAdminUser() error {
	hashedPassword, err := password.Hash(s.cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	return s.upsertUser(&models.User{
		Name:     s.cfg.Seed.AdminName,
		Email:    s.cfg.Seed.AdminEmail,
		Password: hashedPassword,
		Role:     domain.RoleAdmin,
	})
}

// seedSalesUsers creates demo employees for local testing
func (s *Seeder) seedSalesUsers() error {
	for _, u := range demoSalesUsers {
		hashedPassword, err := password.Hash(u.Password)
		if err != nil {
			return err
		}

		if err := s.upsertUser(&models.User{
			Name:     u.Name,
			Email:    u.Email,
			Password: hashedPassword,
			Role:     domain.RoleEmployee,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) upsertUser(user *models.User) error {
	var existing models.User
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("✅ User created: %s (%s)", user.Email, user.Role)
		return nil
	}
	if err != nil {
		return err
	}

	existing.Name = user.Name
	existing.Password = user.Password
	existing.Role = user.Role
	if err := s.db.Save(&existing).Error; err != nil {
		return err
	}
	log.Printf("✅ User updated: %s (%s)", user.Email, user.Role)
	return nil
}
