//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	accountrouter "docshelf/internal/account/router"
	"docshelf/internal/apidoc"
	composerrouter "docshelf/internal/composer/router"
	customerrouter "docshelf/internal/customer/router"
	"docshelf/internal/database/migrate"
	"docshelf/internal/health"
	personrouter "docshelf/internal/person/router"
	teamrouter "docshelf/internal/team/router"
)

// APITestSuite runs the full API against a real PostgreSQL instance,
// including the migration path, with the router hosted in-process.
type APITestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	router      *gin.Engine
}

func (s *APITestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("docshelf_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// Exercise the real migration path, not AutoMigrate.
	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := zap.NewNop().Sugar()
	accountrouter.RegisterRoutes(r, db, logger)
	composerrouter.RegisterRoutes(r, db, logger)
	personrouter.RegisterRoutes(r, db, logger)
	customerrouter.RegisterRoutes(r, db, logger)
	teamrouter.RegisterRoutes(r, db, logger)
	apidoc.RegisterRoutes(r)
	r.GET("/health", health.New(db, logger).Check)
	s.router = r
}

func (s *APITestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *APITestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		require.NoError(s.T(), err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) TestHealth() {
	w := s.doJSON(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestSignupLoginRoundTrip() {
	w := s.doJSON(http.MethodPost, "/signup", gin.H{
		"userName":     "e2e-alice",
		"password":     "s3cret",
		"emailAddress": "alice@example.com",
	})
	s.Equal(http.StatusCreated, w.Code)
	s.NotContains(w.Body.String(), "s3cret")

	w = s.doJSON(http.MethodPost, "/signup", gin.H{
		"userName": "e2e-alice",
		"password": "other",
	})
	s.Equal(http.StatusConflict, w.Code)

	w = s.doJSON(http.MethodPost, "/login", gin.H{
		"userName": "e2e-alice",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.doJSON(http.MethodPost, "/login", gin.H{
		"userName": "e2e-alice",
		"password": "s3cret",
	})
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestComposerLifecycle() {
	w := s.doJSON(http.MethodPost, "/composers", gin.H{
		"firstName": "Johann",
		"lastName":  "Bach",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Require().NotEmpty(created.ID)

	w = s.doJSON(http.MethodPut, "/composers/"+created.ID, gin.H{"firstName": "J.S."})
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "J.S.")

	w = s.doJSON(http.MethodDelete, "/composers/"+created.ID, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.doJSON(http.MethodGet, "/composers/"+created.ID, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestCustomerInvoicesOnJSONB() {
	w := s.doJSON(http.MethodPost, "/customers", gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"userName":  "e2e-jdoe",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.doJSON(http.MethodPost, "/customers/e2e-jdoe/invoices", gin.H{
		"subtotal":    100.0,
		"tax":         8.5,
		"dateCreated": "2024-01-01",
		"lineItems":   []gin.H{{"name": "widget", "price": 50.0, "quantity": 2.0}},
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.doJSON(http.MethodGet, "/customers/e2e-jdoe/invoices", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var invoices []struct {
		Subtotal  float64 `json:"subtotal"`
		LineItems []struct {
			Name string `json:"name"`
		} `json:"lineItems"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &invoices))
	s.Require().Len(invoices, 1)
	s.Equal(100.0, invoices[0].Subtotal)
	s.Require().Len(invoices[0].LineItems, 1)
	s.Equal("widget", invoices[0].LineItems[0].Name)
}

func (s *APITestSuite) TestTeamRoster() {
	w := s.doJSON(http.MethodPost, "/teams", gin.H{
		"name":   "e2e-Tigers",
		"mascot": "Tony",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = s.doJSON(http.MethodPost, "/teams/"+created.ID+"/players", gin.H{
		"firstName": "Sam",
		"lastName":  "Smith",
		"salary":    100000.0,
	})
	s.Equal(http.StatusCreated, w.Code)

	w = s.doJSON(http.MethodGet, "/teams/"+created.ID+"/players", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Sam")
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
