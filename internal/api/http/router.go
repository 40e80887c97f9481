package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-portal/internal/api/http/handlers"
	"github.com/spec-kit/ops-portal/internal/auth"
	"github.com/spec-kit/ops-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Leaves         *handlers.LeavesHandler
	Enquiries      *handlers.EnquiriesHandler
	Intake         *handlers.IntakeHandler
	SalarySlips    *handlers.SalarySlipsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/login", cfg.Auth.Login)

	// Public intake forms.
	api.Post("/enquiries", cfg.Enquiries.Create)
	api.Post("/quotations", cfg.Intake.CreateQuotation)
	api.Post("/applications", cfg.Intake.CreateApplication)

	adminOrManager := auth.RequireRole(domain.RoleAdmin, domain.RoleManager)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	protected := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())

	protected.Get("/employees", adminOrManager, cfg.Employees.List)
	protected.Post("/employees", adminOnly, cfg.Employees.Create)
	protected.Put("/employees/:id", adminOnly, cfg.Employees.Update)

	protected.Get("/leaves", cfg.Leaves.List)
	protected.Post("/leaves", cfg.Leaves.File)
	protected.Post("/leaves/auto-approve", adminOnly, cfg.Leaves.AutoApprove)
	protected.Put("/leaves/:id/approve", adminOrManager, cfg.Leaves.Approve)

	protected.Get("/enquiries", adminOrManager, cfg.Enquiries.List)
	protected.Put("/enquiries/:id", adminOrManager, cfg.Enquiries.UpdateStatus)

	protected.Get("/quotations", adminOrManager, cfg.Intake.ListQuotations)
	protected.Get("/applications", adminOrManager, cfg.Intake.ListApplications)
	protected.Delete("/applications/:id", adminOnly, cfg.Intake.DeleteApplication)

	protected.Get("/salary-slips", cfg.SalarySlips.List)
	protected.Post("/salary-slips", adminOnly, cfg.SalarySlips.Create)
	protected.Post("/salary-slip-request", cfg.SalarySlips.Request)

	protected.Get("/login-activities", cfg.Auth.ListLoginActivities)
}
