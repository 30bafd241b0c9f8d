package routes

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	DonationHandler handlers.DonationHandler
	ReportHandler   handlers.ReportHandler
	AdminHandler    handlers.AdminHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Reports()
	c.Organizations()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Get("/open", c.Middleware.RoleMiddleware(domain.RoleReceiver), c.DonationHandler.GetOpenDonations)
	donations.Get("/map", c.DonationHandler.GetMapMarkers)
	donations.Get("/feed", c.DonationHandler.StreamDonationFeed)

	donations.Post("", c.Middleware.RoleMiddleware(domain.RoleDonor), c.DonationHandler.CreateDonation)
	donations.Get("", c.Middleware.RoleMiddleware(domain.RoleDonor), c.DonationHandler.GetDonorDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationByID)
	donations.Put("/:id", c.Middleware.RoleMiddleware(domain.RoleDonor), c.DonationHandler.UpdateDonation)
	donations.Delete("/:id", c.Middleware.RoleMiddleware(domain.RoleDonor), c.DonationHandler.DeleteDonation)

	donations.Post("/:id/accept", c.Middleware.RoleMiddleware(domain.RoleReceiver), c.DonationHandler.AcceptDonation)
	donations.Patch("/:id/status", c.Middleware.RoleMiddleware(domain.RoleAdmin), c.DonationHandler.AdvanceDonationStatus)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))
	reports.Post("", c.ReportHandler.CreateReport)
}

func (c *Config) Organizations() {
	// applying is open; moderation lives under /admin
	c.App.Post("/api/v1/organizations", c.AdminHandler.RegisterOrganization)
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin),
	)

	admin.Get("/metrics", c.AdminHandler.GetTodayMetrics)
	admin.Get("/reports", c.AdminHandler.GetReports)
	admin.Patch("/reports/:id", c.AdminHandler.UpdateReportStatus)
	admin.Get("/organizations", c.AdminHandler.GetOrganizations)
	admin.Patch("/organizations/:id", c.AdminHandler.UpdateOrganizationStatus)
	admin.Patch("/users/:id/verify", c.AdminHandler.VerifyUser)
	admin.Patch("/users/:id/flag", c.AdminHandler.FlagUser)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
