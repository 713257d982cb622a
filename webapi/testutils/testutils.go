// Package testutils provides an end-to-end test suite backed by a real
// Postgres started with Testcontainers and migrated with golang-migrate.
package testutils

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/amirasaad/accountowner/infra"
	"github.com/amirasaad/accountowner/infra/eventbus"
	infrarepo "github.com/amirasaad/accountowner/infra/repository"
	"github.com/amirasaad/accountowner/pkg/app"
	"github.com/amirasaad/accountowner/pkg/config"
	"github.com/amirasaad/accountowner/pkg/metrics"
	pkgtestutils "github.com/amirasaad/accountowner/pkg/testutils"
	"github.com/amirasaad/accountowner/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
	Bus         *eventbus.MemoryEventBus
	Cfg         *config.App
}

// SkipUnlessDocker skips t under -short or when no container runtime is healthy.
func SkipUnlessDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *E2ETestSuite) SetupSuite() {
	SkipUnlessDocker(s.T())
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = &config.App{
		Env: "test",
		DB: &config.DB{
			Url:             dsn,
			Driver:          "postgres",
			AutoMigrate:     true,
			MaxOpenConns:    5,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Minute,
		},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Metrics:   &config.Metrics{Enabled: true, Path: "/metrics"},
	}

	s.DB, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(s.DB))

	s.Bus = eventbus.NewWithMemory(nil, eventbus.WithRecording())
	sqlDB, err := s.DB.DB()
	s.Require().NoError(err)
	s.App = webapi.SetupApp(app.New(&app.Deps{
		WrapperFactory: infrarepo.NewWrapperFactory(s.DB),
		EventBus:       s.Bus,
		Metrics:        metrics.New(),
		HealthCheck:    sqlDB.PingContext,
	}, s.Cfg))
}

// SetupTest truncates every table so tests do not see each other's rows.
func (s *E2ETestSuite) SetupTest() {
	s.Require().NoError(s.DB.Exec("TRUNCATE accounts, owners").Error)
	s.Bus.ClearPublished()
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	return pkgtestutils.MakeRequest(s.App, method, path, body)
}

// Decode reads resp into v and fails the test on malformed JSON.
func (s *E2ETestSuite) Decode(resp *http.Response, v any) {
	raw := pkgtestutils.ReadBody(s.T(), resp)
	s.Require().NoError(json.Unmarshal(raw, v), string(raw))
}
