// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/classifier"
	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/application/usecase/auth"
	"github.com/spendwise/backend/internal/application/usecase/budget"
	"github.com/spendwise/backend/internal/application/usecase/expense"
	"github.com/spendwise/backend/internal/application/usecase/ledger"
	usecasenotification "github.com/spendwise/backend/internal/application/usecase/notification"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/infra/server/router"
	"github.com/spendwise/backend/internal/integration/adapters"
	"github.com/spendwise/backend/internal/integration/cache"
	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
	"github.com/spendwise/backend/internal/integration/notification"
	"github.com/spendwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
	Worker *notification.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	auditRepo := persistence.NewAuditRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	unitOfWork := persistence.NewUnitOfWork(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	scoreCache := cache.NewScoreCache(redisClient)
	expenseClassifier := classifier.New(classifier.DefaultRules(), entity.UncategorizedLabel)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, auditRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, auditRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(unitOfWork, expenseClassifier, scoreCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(unitOfWork, expenseClassifier, scoreCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(unitOfWork, scoreCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)

	// Create ledger use cases
	reverseUseCase := ledger.NewReverseLastTransactionUseCase(unitOfWork, scoreCache)
	historyUseCase := ledger.NewGetHistoryUseCase(ledgerRepo)

	// Create analytics use cases
	scoreUseCase := analytics.NewCalculateScoreUseCase(expenseRepo, budgetRepo, scoreCache)
	analyticsUseCase := analytics.NewGetAnalyticsUseCase(expenseRepo, budgetRepo, scoreUseCase)

	// Create notification worker
	overspendUseCase := usecasenotification.NewCheckOverspendingUseCase(budgetRepo, expenseRepo)
	inactivityUseCase := usecasenotification.NewCheckInactivityUseCase(userRepo)
	var sender adapter.NotificationSender
	if cfg.Resend.APIKey != "" {
		sender = notification.NewResendSender(cfg.Resend.APIKey, cfg.Resend.FromName, cfg.Resend.FromEmail)
	} else {
		sender = notification.NewLogSender()
	}
	worker := notification.NewWorker(
		overspendUseCase,
		inactivityUseCase,
		userRepo,
		notificationRepo,
		sender,
		notification.WorkerConfig{SweepInterval: cfg.Notification.SweepInterval},
	)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listExpensesUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		updateBudgetUseCase,
		listBudgetsUseCase,
	)

	ledgerController := controller.NewLedgerController(
		reverseUseCase,
		historyUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		scoreUseCase,
		analyticsUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		budgetController,
		ledgerController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
		Worker: worker,
	}
}
