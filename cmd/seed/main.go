package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"studiobooking/internal/database"
	"studiobooking/internal/domain"
	"studiobooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studiobooking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	err = db.AutoMigrate(
		&domain.Service{},
		&domain.Package{},
		&domain.PackageServiceEntry{},
		&domain.Photographer{},
		&domain.PhotographerService{},
		&domain.Booking{},
		&domain.BookingLineItem{},
		&domain.BookingPackageService{},
		&domain.PackageBookingDate{},
		&domain.Invoice{},
		&domain.PaymentEntry{},
		&domain.User{},
		&repository.BookingSettings{},
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("migrations applied")

	var count int64
	db.Model(&domain.Service{}).Count(&count)
	if count > 0 {
		log.Println("catalog already seeded, skipping")
		return
	}

	services := []domain.Service{
		{Name: "Studio Hour", UnitType: domain.UnitDuration, DurationUnit: domain.DurationHour, BasePrice: 10000, Active: true},
		{Name: "Cyclorama Minute", UnitType: domain.UnitDuration, DurationUnit: domain.DurationMinute, BasePrice: 250, Active: true},
		{Name: "Retouched Photo", UnitType: domain.UnitCount, BasePrice: 2000, Active: true},
		{Name: "Assistant Hour", UnitType: domain.UnitDuration, DurationUnit: domain.DurationHour, BasePrice: 4000, Flexible: true, Active: true},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Fatal(err)
	}

	pkg := domain.Package{
		Name:       "Full Day Production",
		TotalHours: 8,
		FinalPrice: 90000,
		Active:     true,
		Services: []domain.PackageServiceEntry{
			{ServiceID: services[0].ID, Quantity: 8, PackagePrice: 8000, Required: true},
			{ServiceID: services[2].ID, Quantity: 20, PackagePrice: 1500},
		},
	}
	if err := db.Create(&pkg).Error; err != nil {
		log.Fatal(err)
	}

	photographer := domain.Photographer{
		Name:               "Askar Studios",
		Email:              "askar@partners.kz",
		Phone:              "+77010000001",
		B2B:                true,
		DiscountPercentage: 15,
		Status:             domain.PhotographerActive,
		Services: []domain.PhotographerService{
			{ServiceID: services[0].ID, BasePrice: 10000, DiscountedPrice: 8500, Active: true},
			{ServiceID: services[2].ID, BasePrice: 2000, AllowDiscount: true, Active: true},
		},
	}
	if err := db.Create(&photographer).Error; err != nil {
		log.Fatal(err)
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	users := []domain.User{
		{Email: "admin@studio.local", PasswordHash: string(hash), Name: "Admin", Role: domain.RoleAdmin},
		{Email: "manager@studio.local", PasswordHash: string(hash), Name: "Manager", Role: domain.RoleManager},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("seed data inserted")
}
