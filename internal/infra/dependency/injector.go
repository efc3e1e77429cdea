// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/config"
	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/application/usecase/analytics"
	"github.com/lifetracker/backend/internal/application/usecase/auth"
	"github.com/lifetracker/backend/internal/application/usecase/dashboard"
	"github.com/lifetracker/backend/internal/application/usecase/debt"
	"github.com/lifetracker/backend/internal/application/usecase/expense"
	"github.com/lifetracker/backend/internal/application/usecase/goal"
	"github.com/lifetracker/backend/internal/application/usecase/habit"
	"github.com/lifetracker/backend/internal/application/usecase/investment"
	"github.com/lifetracker/backend/internal/application/usecase/settings"
	"github.com/lifetracker/backend/internal/application/usecase/task"
	"github.com/lifetracker/backend/internal/application/usecase/timeentry"
	"github.com/lifetracker/backend/internal/application/usecase/wishlist"
	infradb "github.com/lifetracker/backend/internal/infra/db"
	"github.com/lifetracker/backend/internal/infra/scheduler"
	"github.com/lifetracker/backend/internal/infra/server/router"
	"github.com/lifetracker/backend/internal/integration/adapters"
	"github.com/lifetracker/backend/internal/integration/entrypoint/controller"
	"github.com/lifetracker/backend/internal/integration/entrypoint/middleware"
	"github.com/lifetracker/backend/internal/integration/exchangerate"
	"github.com/lifetracker/backend/internal/integration/persistence"
	"github.com/lifetracker/backend/internal/integration/ratelimit"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Rates     *exchangerate.Service
	Attempts  adapter.AttemptStore
	Scheduler *scheduler.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case failed logins are counted in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient, clock adapter.Clock) *Injector {
	// Create repositories
	taskRepo := persistence.NewTaskRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	timeEntryRepo := persistence.NewTimeEntryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	wishlistRepo := persistence.NewWishlistRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, clock)

	var attempts adapter.AttemptStore
	if redisClient != nil {
		attempts = ratelimit.NewRedisStore(redisClient, clock)
	} else {
		attempts = ratelimit.NewMemoryStore(clock)
	}

	var feed adapter.ExchangeRateFeed
	if cfg.ExchangeRates.FeedURL != "" {
		feed = exchangerate.NewFeedClient(cfg.ExchangeRates.FeedURL, cfg.ExchangeRates.RequestTimeout)
	}
	rates := exchangerate.NewService(feed, toDecimalRates(cfg.ExchangeRates.Overrides), clock)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(
		auth.AdminCredentials{
			Username:     cfg.Auth.AdminUsername,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		auth.LoginLimits{
			MaxAttempts: cfg.RateLimit.MaxAttempts,
			Window:      cfg.RateLimit.Window,
		},
		attempts,
		passwordService,
		tokenService,
		clock,
	)

	// Create task use cases
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

	// Create habit use cases
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo, clock)
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo)
	checkinHabitUseCase := habit.NewCheckinHabitUseCase(habitRepo, clock)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create time entry use cases
	listTimeEntriesUseCase := timeentry.NewListTimeEntriesUseCase(timeEntryRepo)
	startTimeEntryUseCase := timeentry.NewStartTimeEntryUseCase(timeEntryRepo, clock)
	updateTimeEntryUseCase := timeentry.NewUpdateTimeEntryUseCase(timeEntryRepo, clock)
	deleteTimeEntryUseCase := timeentry.NewDeleteTimeEntryUseCase(timeEntryRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, clock)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create wishlist use cases
	listItemsUseCase := wishlist.NewListItemsUseCase(wishlistRepo)
	createItemUseCase := wishlist.NewCreateItemUseCase(wishlistRepo)
	setPurchasedUseCase := wishlist.NewSetPurchasedUseCase(wishlistRepo)
	deleteItemUseCase := wishlist.NewDeleteItemUseCase(wishlistRepo)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
	listPaymentsUseCase := debt.NewListPaymentsUseCase(debtRepo)
	recordPaymentUseCase := debt.NewRecordPaymentUseCase(debtRepo)

	// Create investment use cases
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo, rates)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo, rates)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo)
	getRatesUseCase := investment.NewGetRatesUseCase(rates)
	refreshRatesUseCase := investment.NewRefreshRatesUseCase(rates)

	// Create settings use cases
	getSalaryUseCase := settings.NewGetSalarySettingsUseCase(settingsRepo)
	saveSalaryUseCase := settings.NewSaveSalarySettingsUseCase(settingsRepo, clock)
	getHealthUseCase := settings.NewGetHealthSettingsUseCase(settingsRepo)
	saveHealthUseCase := settings.NewSaveHealthSettingsUseCase(settingsRepo, clock)

	// Create read-model use cases
	lifeScoreUseCase := analytics.NewGetLifeScoreUseCase(analyticsRepo, clock)
	overviewUseCase := dashboard.NewGetOverviewUseCase(dashboardRepo, clock)

	// Create middleware
	sessionCookie := middleware.NewSessionCookie(cfg.Auth.CookieName, cfg.Auth.SecureCookie, cfg.JWT.Expiry)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, sessionCookie)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool { return infradb.Ping(db) },
		redisHealthChecker(redisClient),
		clock,
	)

	authController := controller.NewAuthController(loginUseCase, sessionCookie)

	taskController := controller.NewTaskController(
		listTasksUseCase,
		createTaskUseCase,
		updateTaskUseCase,
		deleteTaskUseCase,
	)

	habitController := controller.NewHabitController(
		listHabitsUseCase,
		createHabitUseCase,
		checkinHabitUseCase,
		deleteHabitUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	timeEntryController := controller.NewTimeEntryController(
		listTimeEntriesUseCase,
		startTimeEntryUseCase,
		updateTimeEntryUseCase,
		deleteTimeEntryUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		deleteExpenseUseCase,
	)

	wishlistController := controller.NewWishlistController(
		listItemsUseCase,
		createItemUseCase,
		setPurchasedUseCase,
		deleteItemUseCase,
	)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		createDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		listPaymentsUseCase,
		recordPaymentUseCase,
	)

	investmentController := controller.NewInvestmentController(
		listInvestmentsUseCase,
		createInvestmentUseCase,
		updateInvestmentUseCase,
		deleteInvestmentUseCase,
		getRatesUseCase,
		refreshRatesUseCase,
	)

	settingsController := controller.NewSettingsController(
		getSalaryUseCase,
		saveSalaryUseCase,
		getHealthUseCase,
		saveHealthUseCase,
	)

	analyticsController := controller.NewAnalyticsController(lifeScoreUseCase)
	dashboardController := controller.NewDashboardController(overviewUseCase)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		taskController,
		habitController,
		goalController,
		timeEntryController,
		expenseController,
		wishlistController,
		debtController,
		investmentController,
		settingsController,
		analyticsController,
		dashboardController,
		authMiddleware,
	)

	return &Injector{
		Config:    cfg,
		DB:        db,
		Router:    r,
		Rates:     rates,
		Attempts:  attempts,
		Scheduler: scheduler.NewScheduler(rates, attempts),
	}
}

func redisHealthChecker(client redis.UniversalClient) controller.HealthChecker {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}

func toDecimalRates(overrides map[string]float64) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(overrides))
	for code, rate := range overrides {
		rates[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
	}
	return rates
}
