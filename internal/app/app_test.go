package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/knowledgebuddy/internal/config"
	"github.com/GlebRadaev/knowledgebuddy/internal/handlers"
	"github.com/GlebRadaev/knowledgebuddy/internal/pg"
	"github.com/GlebRadaev/knowledgebuddy/internal/repo"
	"github.com/GlebRadaev/knowledgebuddy/internal/service"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/paymentservice"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TearDownTest() {
	s.app.Close()
}

func (s *ApplicationSuite) TestInit_InvalidDSN() {
	s.app.cfg = &config.Config{LogLvl: "info", Database: "postgres://%zz"}

	err := s.app.Init(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't build pgx pool")
}

func (s *ApplicationSuite) TestInit_InvalidLogLevel() {
	s.app.cfg = &config.Config{LogLvl: "verbose"}

	err := s.app.Init(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't init logger")
}

func (s *ApplicationSuite) TestOpenLedger() {
	s.app.cfg = &config.Config{ReceiptsPath: ""}
	s.Nil(s.app.openLedger())

	s.app.cfg = &config.Config{ReceiptsPath: filepath.Join(s.T().TempDir(), "receipts.db")}
	s.NotNil(s.app.openLedger())
	s.NotNil(s.app.receipts)
	s.app.Close()

	s.app.cfg = &config.Config{ReceiptsPath: filepath.Join(s.T().TempDir(), "missing", "receipts.db")}
	s.Nil(s.app.openLedger())
	s.Nil(s.app.receipts)
}

func (s *ApplicationSuite) TestPaymentsHandler() {
	ctrl := gomock.NewController(s.T())
	mockDB, err := pgxmock.NewPool()
	s.Require().NoError(err)
	node, err := snowflake.NewNode(1)
	s.Require().NoError(err)

	cfg := &config.Config{DownloadURLTemplate: config.DefaultDownloadURLTemplate}
	s.app.cfg = cfg
	s.app.repo = repo.New(mockDB, pg.NewMockTXManager(ctrl))
	s.app.srv = service.New(s.app.repo, cfg, paymentservice.NewMockGateway(ctrl), nil, node)
	s.app.api = handlers.New(s.app.srv)

	h := s.app.PaymentsHandler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resources", nil))
	s.Equal(http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/payments/verify", nil))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
