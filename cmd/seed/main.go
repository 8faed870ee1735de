// Seeds the default officer roster and, when ADMIN_EMAIL and ADMIN_PASSWORD
// are set, creates the first admin account. Safe to run repeatedly.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubhub/internal/config"
	"clubhub/internal/db"
	"clubhub/internal/model"
	"clubhub/internal/repository"
	"clubhub/internal/seed"
	"clubhub/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Member{},
		&model.Officer{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()

	officerService := service.NewOfficerService(repository.NewOfficerRepository(gormDB))
	created, err := officerService.Seed(ctx, seed.Officers())
	if err != nil {
		log.Fatalf("Failed to seed officers: %v", err)
	}
	log.Printf("Seeded %d officers", created)

	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		if err := seedAdmin(ctx, gormDB, email, password); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
	} else {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
	}

	log.Println("Seed complete")
}

// seedAdmin creates an active admin account unless the email is taken.
func seedAdmin(ctx context.Context, gormDB *gorm.DB, email, password string) error {
	userRepo := repository.NewUserRepository(gormDB)

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     "Admin User",
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}
