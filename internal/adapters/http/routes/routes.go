package routes

import (
	"time"

	"salestrack/internal/adapters/http/handlers"
	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/config"
	"salestrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application on a gorm connection
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	Register(app, repositories.NewSet(db), cfg, func() error {
		return config.HealthCheck(db)
	})
}

// Register wires services and handlers over any repository set
func Register(app *fiber.App, repos repositories.Set, cfg *config.Config, ping handlers.Pinger) {
	// Initialize services
	authService := services.NewAuthService(repos.Users, cfg)
	attendanceService := services.NewAttendanceService(repos.Attendance)
	locationService := services.NewLocationService(repos.Locations)
	dealerService := services.NewDealerService(repos.Dealers)
	visitService := services.NewVisitService(repos.Visits, repos.Dealers)
	planService := services.NewPlanService(repos.Plans, repos.Dealers)
	claimService := services.NewClaimService(repos.Claims)
	reportService := services.NewReportService(repos)
	dashboardService := services.NewDashboardService(repos)

	// Initialize handlers
	h := apiHandlers{
		health:     handlers.NewHealthHandler(cfg.AppMode, ping),
		auth:       handlers.NewAuthHandler(authService),
		attendance: handlers.NewAttendanceHandler(attendanceService),
		location:   handlers.NewLocationHandler(locationService),
		dealer:     handlers.NewDealerHandler(dealerService),
		visit:      handlers.NewVisitHandler(visitService),
		plan:       handlers.NewPlanHandler(planService),
		claim:      handlers.NewClaimHandler(claimService),
		report:     handlers.NewReportHandler(reportService),
		dashboard:  handlers.NewDashboardHandler(dashboardService),
	}

	// Health check & root routes
	app.Get("/", h.health.Root)
	app.Get("/health", h.health.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	setupAPIV1Routes(app.Group("/api/v1"), h, cfg)
}

type apiHandlers struct {
	health     *handlers.HealthHandler
	auth       *handlers.AuthHandler
	attendance *handlers.AttendanceHandler
	location   *handlers.LocationHandler
	dealer     *handlers.DealerHandler
	visit      *handlers.VisitHandler
	plan       *handlers.PlanHandler
	claim      *handlers.ClaimHandler
	report     *handlers.ReportHandler
	dashboard  *handlers.DashboardHandler
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(router fiber.Router, h apiHandlers, cfg *config.Config) {
	auth := middleware.AuthMiddleware(cfg)
	admin := middleware.AdminOnly()

	// API Info
	router.Get("/", h.health.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(cfg), h.auth.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(cfg), h.auth.Login)
	authRoutes.Get("/me", auth, h.auth.Me)

	// Attendance
	attendance := router.Group("/attendance", auth)
	attendance.Post("/mark", h.attendance.Mark)
	attendance.Get("/mine", h.attendance.ListMine)

	// Live location
	location := router.Group("/location", auth, middleware.NoCacheHeaders())
	location.Post("/live", h.location.Ping)
	location.Get("/all", admin, h.location.ListAll)

	// Dealers
	dealers := router.Group("/dealers", auth)
	dealers.Post("/", h.dealer.Create)
	dealers.Get("/", h.dealer.List)
	dealers.Patch("/:id/approve", admin, h.dealer.Approve)

	// Visits
	visits := router.Group("/visits", auth)
	visits.Post("/check-in", h.visit.CheckIn)
	visits.Post("/:id/check-out", h.visit.CheckOut)
	visits.Get("/mine", h.visit.ListMine)

	// Route plans (PJP)
	pjp := router.Group("/pjp", auth)
	pjp.Post("/", h.plan.Save)
	pjp.Get("/my", h.plan.ListMine)
	pjp.Get("/user/:userId", admin, h.plan.ListForUser)

	// Claims
	claims := router.Group("/claims", auth)
	claims.Post("/", h.claim.Create)
	claims.Get("/my", h.claim.ListMine)
	claims.Get("/", admin, h.claim.ListAll)
	claims.Patch("/:id/status", admin, h.claim.SetStatus)

	// Reports (admin only)
	reports := router.Group("/reports", auth, admin, middleware.PrivateCacheHeaders(30*time.Second))
	reports.Get("/attendance", h.report.Attendance)
	reports.Get("/attendance/export", h.report.ExportAttendance)
	reports.Get("/users", h.report.Users)
	reports.Get("/visits", h.report.Visits)
	reports.Get("/visits/export", h.report.ExportVisits)
	reports.Get("/dealers", h.report.Dealers)
	reports.Get("/claims/export", h.report.ExportClaims)

	// Dashboard
	dashboard := router.Group("/dashboard", auth)
	dashboard.Get("/summary", h.dashboard.Summary)
}
