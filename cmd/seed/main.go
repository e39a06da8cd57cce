package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"villasol/internal/config"
	"villasol/internal/db"
	"villasol/internal/model"
	"villasol/internal/repository"
)

// Seeds an admin user plus starter content so a fresh deployment renders a
// complete site. Safe to run repeatedly: existing rows are left alone.
func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.SetupJoinTable(&model.Promotion{}, "Packages", &model.PromotionPackage{}); err != nil {
		log.Fatalf("Failed to set up join table: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Promotion{},
		&model.Package{},
		&model.PromotionPackage{},
		&model.Slide{},
		&model.MenuItem{},
		&model.SiteSetting{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedContent(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the admin user from SEED_ADMIN_USER / SEED_ADMIN_PASSWORD
// unless the username already exists.
func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	username := getEnv("SEED_ADMIN_USER", "admin")
	password := getEnv("SEED_ADMIN_PASSWORD", "changeme123")

	userRepo := repository.NewUserRepository(gormDB)
	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		log.Printf("Admin user %q already exists, skipping", username)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}
	log.Printf("Admin user %q created", username)
	return nil
}

// seedContent inserts starter settings and menu items when their tables are
// empty of the same keys/names.
func seedContent(ctx context.Context, gormDB *gorm.DB) error {
	settingRepo := repository.NewSiteSettingRepository(gormDB)
	settings := []model.SiteSetting{
		{Key: "site_title", Value: "Villa Sol"},
		{Key: "contact_email", Value: "reservas@villasol.example"},
		{Key: "contact_phone", Value: "+34 600 000 000"},
	}
	created := 0
	for i := range settings {
		if _, err := settingRepo.FindByKey(ctx, settings[i].Key); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := settingRepo.Upsert(ctx, &settings[i]); err != nil {
			return err
		}
		created++
	}
	log.Printf("Settings seeded: %d created", created)

	pkgRepo := repository.NewPackageRepository(gormDB)
	existing, err := pkgRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Packages already present (%d), skipping", len(existing))
		return nil
	}

	packages := []model.Package{
		{Name: "Escapada Romántica", Description: "Two nights with breakfast and a sunset dinner.", Price: decimal.NewFromInt(249), Nights: 2, People: 2},
		{Name: "Semana Familiar", Description: "Seven nights, half board, kids club included.", Price: decimal.NewFromInt(899), Nights: 7, People: 4},
	}
	for i := range packages {
		if err := pkgRepo.Create(ctx, &packages[i]); err != nil {
			return err
		}
	}
	log.Printf("Packages seeded: %d created", len(packages))

	menuRepo := repository.NewMenuItemRepository(gormDB)
	existingItems, err := menuRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existingItems) > 0 {
		log.Printf("Menu items already present (%d), skipping", len(existingItems))
		return nil
	}

	// Slides are not seeded: every slide needs a hosted image.
	items := []model.MenuItem{
		{Name: "Gazpacho Andaluz", Category: "starters", Price: decimal.NewFromInt(6)},
		{Name: "Paella de Mariscos", Category: "mains", Description: "For two people, 25 minute wait.", Price: decimal.NewFromInt(32)},
		{Name: "Tarta de Queso", Category: "desserts", Price: decimal.NewFromInt(7)},
	}
	for i := range items {
		if err := menuRepo.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	log.Printf("Menu items seeded: %d created", len(items))
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
