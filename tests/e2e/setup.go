//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"slot-booking-web/cmd/bootstrap"
	"slot-booking-web/cmd/bootstrap/components"
	"slot-booking-web/internal/pkg/config"
	"slot-booking-web/tests/common/fakeapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-suite environment: fake slot service plus the full fx graph
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*fakeapi.Server, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	remote := fakeapi.Start(t)
	cfg := createTestConfig(remote.BaseURL())

	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("failed to stop fx app: %v", err)
		}
	})

	return remote, router, cfg
}

// ------------------------------------------------------------
// Builds the application the way main does, minus the HTTP listener
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			bootstrap.NewDisplayLocation,
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.SlotAPIModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, app
}

func createTestConfig(baseURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.SlotAPI.BaseURL = baseURL
	return testConfig
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Remote *fakeapi.Server
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	remote, router, cfg := setupE2EEnvironment(t)
	s.Remote = remote
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router missing")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}
