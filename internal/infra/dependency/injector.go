// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/controle-financeiro/backend/config"
	"github.com/controle-financeiro/backend/internal/application/usecase/auth"
	"github.com/controle-financeiro/backend/internal/application/usecase/card"
	"github.com/controle-financeiro/backend/internal/application/usecase/category"
	"github.com/controle-financeiro/backend/internal/application/usecase/contribution"
	"github.com/controle-financeiro/backend/internal/application/usecase/dashboard"
	"github.com/controle-financeiro/backend/internal/application/usecase/expense"
	"github.com/controle-financeiro/backend/internal/application/usecase/user"
	"github.com/controle-financeiro/backend/internal/infra/server/router"
	"github.com/controle-financeiro/backend/internal/integration/adapters"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/controller"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/middleware"
	"github.com/controle-financeiro/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	cardRepo := persistence.NewCardRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	contributionRepo := persistence.NewContributionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	summaryCache := adapters.NewSummaryCache(redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	verifyUseCase := auth.NewVerifyUserUseCase(userRepo)

	// Create user use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, passwordService)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo, contributionRepo, cardRepo, expenseRepo)
	getBalancesUseCase := user.NewGetBalancesUseCase(userRepo, contributionRepo, expenseRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, expenseRepo)

	// Create card use cases
	createCardUseCase := card.NewCreateCardUseCase(cardRepo, userRepo)
	listCardsUseCase := card.NewListCardsUseCase(cardRepo)
	getCardUseCase := card.NewGetCardUseCase(cardRepo, userRepo)
	updateCardUseCase := card.NewUpdateCardUseCase(cardRepo, userRepo)
	deleteCardUseCase := card.NewDeleteCardUseCase(cardRepo, expenseRepo)
	getInvoiceUseCase := card.NewGetInvoiceUseCase(cardRepo, expenseRepo, userRepo)
	nextInvoicesUseCase := card.NewNextInvoicesUseCase(cardRepo, expenseRepo, userRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, cardRepo, userRepo, summaryCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, cardRepo, userRepo, summaryCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache)
	calendarUseCase := expense.NewCalendarUseCase(expenseRepo)
	generateChildrenUseCase := expense.NewGenerateChildrenUseCase(expenseRepo, summaryCache)

	// Create contribution use cases
	createContributionUseCase := contribution.NewCreateContributionUseCase(contributionRepo, userRepo, summaryCache)
	listContributionsUseCase := contribution.NewListContributionsUseCase(contributionRepo)
	getContributionUseCase := contribution.NewGetContributionUseCase(contributionRepo)
	updateContributionUseCase := contribution.NewUpdateContributionUseCase(contributionRepo, userRepo, summaryCache)
	deleteContributionUseCase := contribution.NewDeleteContributionUseCase(contributionRepo, summaryCache)
	getTotalsUseCase := contribution.NewGetTotalsUseCase(contributionRepo)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(expenseRepo, contributionRepo, userRepo, categoryRepo, summaryCache)
	getEvolutionUseCase := dashboard.NewGetEvolutionUseCase(expenseRepo, contributionRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		verifyUseCase,
	)

	userController := controller.NewUserController(
		createUserUseCase,
		listUsersUseCase,
		getUserUseCase,
		updateUserUseCase,
		deleteUserUseCase,
		getBalancesUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	cardController := controller.NewCardController(
		createCardUseCase,
		listCardsUseCase,
		getCardUseCase,
		updateCardUseCase,
		deleteCardUseCase,
		getInvoiceUseCase,
		nextInvoicesUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		calendarUseCase,
		generateChildrenUseCase,
	)

	contributionController := controller.NewContributionController(
		createContributionUseCase,
		listContributionsUseCase,
		getContributionUseCase,
		updateContributionUseCase,
		deleteContributionUseCase,
		getTotalsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getEvolutionUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		cfg.CORS.AllowedOrigins,
		healthController,
		authController,
		userController,
		categoryController,
		cardController,
		expenseController,
		contributionController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
