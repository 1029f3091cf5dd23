package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenpalms/resort-api/internal/config"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	domainRepo "github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/internal/presentation/http/handler"
	"github.com/greenpalms/resort-api/internal/presentation/http/middleware"
	"github.com/greenpalms/resort-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Guest        *handler.GuestHandler
	Catalog      *handler.CatalogHandler
	Invoice      *handler.InvoiceHandler
	KitchenOrder *handler.KitchenOrderHandler
	Report       *handler.ReportHandler
	Settings     *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Uploaded logos are served directly
	router.Static("/uploads", deps.Cfg.Storage.Path)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.User.UpdateOwnPassword)

	// Settings
	registerSettingsRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Guests
	registerGuestRoutes(protected, h)

	// Catalog
	registerServiceRoutes(protected, h)
	registerMenuItemRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h, deps)

	// Kitchen orders
	registerKitchenOrderRoutes(protected, h, deps)

	// Reports and dashboard
	registerReportRoutes(protected, h)
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Every authenticated user can read the resort identity; only managers
	// can change it
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", middleware.RequirePermission(enum.PermManageSettings), h.Settings.Update)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission(enum.PermManageUsers))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.PUT("/:id/password", h.User.UpdatePassword)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerGuestRoutes(protected *gin.RouterGroup, h *Handlers) {
	guests := protected.Group("/guests")
	guests.Use(middleware.RequirePermission(enum.PermManageGuests))
	{
		guests.GET("", h.Guest.List)
		guests.POST("", h.Guest.Create)
		guests.GET("/:id", h.Guest.Get)
		guests.PUT("/:id", h.Guest.Update)
		guests.DELETE("/:id", h.Guest.Delete)
	}
}

func registerServiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	services := protected.Group("/services")
	{
		// Reads stay open so invoice entry can browse the catalog
		services.GET("", h.Catalog.ListServices)
		services.GET("/:id", h.Catalog.GetService)

		writes := services.Group("")
		writes.Use(middleware.RequirePermission(enum.PermManageServices))
		{
			writes.POST("", h.Catalog.CreateService)
			writes.PUT("/:id", h.Catalog.UpdateService)
			writes.DELETE("/:id", h.Catalog.DeleteService)
		}
	}
}

func registerMenuItemRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/menu-items")
	{
		// Reads stay open so order entry can browse the menu
		items.GET("", h.Catalog.ListMenuItems)
		items.GET("/:id", h.Catalog.GetMenuItem)

		writes := items.Group("")
		writes.Use(middleware.RequirePermission(enum.PermManageMenuItems))
		{
			writes.POST("", h.Catalog.CreateMenuItem)
			writes.PUT("/:id", h.Catalog.UpdateMenuItem)
			writes.DELETE("/:id", h.Catalog.DeleteMenuItem)
		}
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequirePermission(enum.PermManageInvoices))
	{
		invoices.GET("", h.Invoice.List)
		// Invoice creation uses idempotency middleware to prevent duplicates
		invoices.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Invoice.Create)
		invoices.GET("/aggregated/:type", h.Invoice.Aggregated)
		invoices.POST("/aggregated/:type/email", h.Invoice.EmailAggregated)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id/payment", h.Invoice.UpdatePayment)
		invoices.PUT("/:id/checkout", h.Invoice.UpdateCheckout)
		invoices.POST("/:id/email", h.Invoice.Email)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}
}

func registerKitchenOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/kitchen-orders")
	{
		orders.GET("", middleware.RequirePermission(enum.PermViewKitchenOrders), h.KitchenOrder.List)
		orders.GET("/:id", middleware.RequirePermission(enum.PermViewKitchenOrders), h.KitchenOrder.Get)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("",
			middleware.RequirePermission(enum.PermCreateKitchenOrder),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.KitchenOrder.Create)
		orders.PUT("/:id/status", middleware.RequirePermission(enum.PermUpdateKitchenStatus), h.KitchenOrder.UpdateStatus)
		orders.POST("/:id/create-invoice",
			middleware.RequirePermission(enum.PermManageInvoices),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.KitchenOrder.CreateInvoice)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission(enum.PermViewReports))
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/sales/excel", h.Report.SalesExcel)
		reports.GET("/gst", h.Report.GST)
		reports.GET("/gst/excel", h.Report.GSTExcel)
		reports.GET("/kitchen-items", h.Report.KitchenItems)
		reports.GET("/kitchen-items/excel", h.Report.KitchenItemsExcel)
		reports.GET("/resort-details", h.Report.ResortDetails)
		reports.GET("/resort-details/excel", h.Report.ResortDetailsExcel)
	}

	// The dashboard sits under /reports but is gated by its own permission
	// so front-desk and kitchen roles can see it without report access.
	protected.GET("/reports/dashboard", middleware.RequirePermission(enum.PermViewDashboard), h.Report.Dashboard)
}
