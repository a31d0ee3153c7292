// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/controle-financeiro/backend/config"
	"github.com/controle-financeiro/backend/internal/infra/dependency"
	"github.com/controle-financeiro/backend/internal/integration/persistence/model"
	"github.com/controle-financeiro/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string
	accessToken    string

	// savedValues holds response fields captured by earlier steps, keyed by
	// the alias used in {placeholders}.
	savedValues map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// testModels lists every persisted model in parent-before-child order.
func testModels() []any {
	return []any{
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.CardModel{},
		&model.ContributionModel{},
		&model.ExpenseModel{},
	}
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Skip the login rate limiter and quiet Gin during the suite.
		os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		testDB := mock.NewDb(testModels())
		if err := testDB.Reset(); err != nil {
			return ctx, err
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		cfg := config.Load()
		injector := dependency.NewInjector(cfg, testDB.DbConn, redisClient, func() bool { return true })

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			savedValues:    make(map[string]string),
		}
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAuthSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}
