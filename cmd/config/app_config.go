package config

import (
	"os"
	"time"

	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/api/routes"
	"FoodBridge-Backend/internal/events"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/internal/utils"
	"FoodBridge-Backend/internal/utils/storage"
	"FoodBridge-Backend/pkg/admin"
	"FoodBridge-Backend/pkg/donation"
	"FoodBridge-Backend/pkg/jwt"
	"FoodBridge-Backend/pkg/report"
	"FoodBridge-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	broker := events.NewBroker()

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	reportRepository := report.NewReportRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	donationService := donation.NewDonationService(donationRepository, s3, broker)
	reportService := report.NewReportService(reportRepository)
	adminService := admin.NewAdminService(adminRepository, reportRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator, broker)
	reportHandler := handlers.NewReportHandler(reportService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		DonationHandler: donationHandler,
		ReportHandler:   reportHandler,
		AdminHandler:    adminHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
