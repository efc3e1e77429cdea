// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/integration/entrypoint/controller"
	"github.com/lifetracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	taskController       *controller.TaskController
	habitController      *controller.HabitController
	goalController       *controller.GoalController
	timeEntryController  *controller.TimeEntryController
	expenseController    *controller.ExpenseController
	wishlistController   *controller.WishlistController
	debtController       *controller.DebtController
	investmentController *controller.InvestmentController
	settingsController   *controller.SettingsController
	analyticsController  *controller.AnalyticsController
	dashboardController  *controller.DashboardController
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	taskController *controller.TaskController,
	habitController *controller.HabitController,
	goalController *controller.GoalController,
	timeEntryController *controller.TimeEntryController,
	expenseController *controller.ExpenseController,
	wishlistController *controller.WishlistController,
	debtController *controller.DebtController,
	investmentController *controller.InvestmentController,
	settingsController *controller.SettingsController,
	analyticsController *controller.AnalyticsController,
	dashboardController *controller.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		taskController:       taskController,
		habitController:      habitController,
		goalController:       goalController,
		timeEntryController:  timeEntryController,
		expenseController:    expenseController,
		wishlistController:   wishlistController,
		debtController:       debtController,
		investmentController: investmentController,
		settingsController:   settingsController,
		analyticsController:  analyticsController,
		dashboardController:  dashboardController,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")

	// Login is the only public route
	api.POST("/auth/login", r.authController.Login)

	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/logout", r.authController.Logout)
			auth.GET("/session", r.authController.Session)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", r.taskController.List)
			tasks.POST("", r.taskController.Create)
			tasks.PUT("/:id", r.taskController.Update)
			tasks.DELETE("/:id", r.taskController.Delete)
		}

		habits := protected.Group("/habits")
		{
			habits.GET("", r.habitController.List)
			habits.POST("", r.habitController.Create)
			habits.POST("/:id/checkin", r.habitController.Checkin)
			habits.DELETE("/:id", r.habitController.Delete)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PUT("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		timetracker := protected.Group("/timetracker")
		{
			timetracker.GET("", r.timeEntryController.List)
			timetracker.POST("", r.timeEntryController.Start)
			timetracker.PUT("/:id", r.timeEntryController.Update)
			timetracker.DELETE("/:id", r.timeEntryController.Delete)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		wishlist := protected.Group("/wishlist")
		{
			wishlist.GET("", r.wishlistController.List)
			wishlist.POST("", r.wishlistController.Create)
			wishlist.PUT("/:id", r.wishlistController.Update)
			wishlist.DELETE("/:id", r.wishlistController.Delete)
		}

		debts := protected.Group("/debts")
		{
			debts.GET("", r.debtController.List)
			debts.POST("", r.debtController.Create)
			debts.PUT("/:id", r.debtController.Update)
			debts.DELETE("/:id", r.debtController.Delete)
			debts.GET("/:id/payments", r.debtController.ListPayments)
			debts.POST("/:id/payments", r.debtController.RecordPayment)
		}

		investments := protected.Group("/investments")
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", r.investmentController.Create)
			investments.GET("/rates", r.investmentController.Rates)
			investments.POST("/rates/refresh", r.investmentController.RefreshRates)
			investments.PUT("/:id", r.investmentController.Update)
			investments.DELETE("/:id", r.investmentController.Delete)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", r.settingsController.GetSalary)
			settings.POST("", r.settingsController.SaveSalary)
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("", r.analyticsController.Get)
			analytics.GET("/health", r.settingsController.GetHealth)
			analytics.POST("/health", r.settingsController.SaveHealth)
		}

		protected.GET("/dashboard", r.dashboardController.Overview)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
