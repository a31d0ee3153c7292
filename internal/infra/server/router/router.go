// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/controle-financeiro/backend/internal/integration/entrypoint/controller"
	"github.com/controle-financeiro/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	corsAllowedOrigins     []string
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	categoryController     *controller.CategoryController
	cardController         *controller.CardController
	expenseController      *controller.ExpenseController
	contributionController *controller.ContributionController
	dashboardController    *controller.DashboardController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	corsAllowedOrigins []string,
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	cardController *controller.CardController,
	expenseController *controller.ExpenseController,
	contributionController *controller.ContributionController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		corsAllowedOrigins:     corsAllowedOrigins,
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		categoryController:     categoryController,
		cardController:         cardController,
		expenseController:      expenseController,
		contributionController: contributionController,
		dashboardController:    dashboardController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.corsAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Mutations on expenses,
// contributions, cards and users are restricted to admins, matching the
// shared-household model where investors only consult the data.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/registro", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/logout", r.authController.Logout)
		auth.GET("/verificar", r.authMiddleware.Authenticate(), r.authController.Verify)
	}

	users := v1.Group("/usuarios")
	users.Use(r.authMiddleware.Authenticate())
	{
		users.GET("", r.authMiddleware.RequireAdmin(), r.userController.List)
		users.POST("", r.authMiddleware.RequireAdmin(), r.userController.Create)
		users.GET("/saldos", r.userController.Balances)
		users.GET("/:id", r.userController.Get)
		users.PUT("/:id", r.userController.Update)
		users.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.userController.Delete)
	}

	categories := v1.Group("/categorias")
	categories.Use(r.authMiddleware.Authenticate())
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.authMiddleware.RequireAdmin(), r.categoryController.Create)
		categories.GET("/:id", r.categoryController.Get)
		categories.PUT("/:id", r.authMiddleware.RequireAdmin(), r.categoryController.Update)
		categories.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.categoryController.Delete)
	}

	cards := v1.Group("/cartoes")
	cards.Use(r.authMiddleware.Authenticate())
	{
		cards.GET("", r.cardController.List)
		cards.POST("", r.authMiddleware.RequireAdmin(), r.cardController.Create)
		cards.GET("/:id", r.cardController.Get)
		cards.PUT("/:id", r.authMiddleware.RequireAdmin(), r.cardController.Update)
		cards.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.cardController.Delete)
		cards.GET("/:id/faturas", r.cardController.GetInvoice)
		cards.GET("/:id/proximas_faturas", r.cardController.NextInvoices)
	}

	expenses := v1.Group("/despesas")
	expenses.Use(r.authMiddleware.Authenticate())
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.authMiddleware.RequireAdmin(), r.expenseController.Create)
		expenses.GET("/calendario", r.expenseController.Calendar)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PUT("/:id", r.authMiddleware.RequireAdmin(), r.expenseController.Update)
		expenses.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.expenseController.Delete)
		expenses.POST("/:id/gerar", r.authMiddleware.RequireAdmin(), r.expenseController.GenerateChildren)
	}

	contributions := v1.Group("/aportes")
	contributions.Use(r.authMiddleware.Authenticate())
	{
		contributions.GET("", r.contributionController.List)
		contributions.POST("", r.authMiddleware.RequireAdmin(), r.contributionController.Create)
		contributions.GET("/totais", r.contributionController.GetTotals)
		contributions.GET("/:id", r.contributionController.Get)
		contributions.PUT("/:id", r.authMiddleware.RequireAdmin(), r.contributionController.Update)
		contributions.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.contributionController.Delete)
	}

	dashboard := v1.Group("/dashboard")
	dashboard.Use(r.authMiddleware.Authenticate())
	{
		dashboard.GET("/resumo", r.dashboardController.GetSummary)
		dashboard.GET("/evolucao", r.dashboardController.GetEvolution)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
