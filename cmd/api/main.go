package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studiobooking/internal/config"
	"studiobooking/internal/database"
	"studiobooking/internal/domain"
	"studiobooking/internal/middleware"
	"studiobooking/internal/modules/auth"
	"studiobooking/internal/modules/booking"
	"studiobooking/internal/modules/catalog"
	"studiobooking/internal/modules/invoice"
	"studiobooking/internal/modules/realtime"
	jwtsvc "studiobooking/internal/pkg/jwt"
	"studiobooking/internal/pricing"
	"studiobooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadPricingRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "studiobooking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	serviceRepo := repository.NewServiceRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	photographerRepo := repository.NewPhotographerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db, pricing.DepositPolicy{
		Percentage:           cfg.DepositPercentage,
		MinimumBookingAmount: cfg.MinimumBookingAmount,
	})

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := realtime.NewHub()
	defer hub.Close()
	notifier := realtime.NewHubNotifier(hub)
	wsHandler := realtime.NewWSHandler(hub, j)

	catalogFacade := repository.NewCatalog(serviceRepo, packageRepo, photographerRepo)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, packageRepo, photographerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogFacade, settingsRepo, notifier)
	bookingHandler := booking.NewHandler(bookingService)

	invoiceService := invoice.NewService(invoiceRepo, bookingRepo, notifier)
	invoiceHandler := invoice.NewHandler(invoiceService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/ws", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j), middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleManager)))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
		}

		admin := protected.Group("/")
		admin.Use(middleware.AdminOnly())
		{
			invoiceHandler.RegisterAdminRoutes(admin)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("starting server addr=%s env=%s", addr, cfg.AppEnv)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
