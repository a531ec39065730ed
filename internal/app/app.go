package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/knowledgebuddy/internal/config"
	"github.com/GlebRadaev/knowledgebuddy/internal/gateway"
	"github.com/GlebRadaev/knowledgebuddy/internal/handlers"
	"github.com/GlebRadaev/knowledgebuddy/internal/pg"
	"github.com/GlebRadaev/knowledgebuddy/internal/receipts"
	"github.com/GlebRadaev/knowledgebuddy/internal/repo"
	"github.com/GlebRadaev/knowledgebuddy/internal/service"
	"github.com/GlebRadaev/knowledgebuddy/internal/service/paymentservice"
	"github.com/GlebRadaev/knowledgebuddy/pkg/clients"
	"github.com/GlebRadaev/knowledgebuddy/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	pool     *pgxpool.Pool
	receipts *receipts.Store

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

// Init builds every dependency without serving anything. The configuration is read from the
// environment and flags unless one was set beforehand.
func (a *Application) Init(ctx context.Context) error {
	if a.cfg == nil {
		a.cfg = config.New()
	}
	cfg := a.cfg

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	txManager := pg.NewTXManager(pool)

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		return fmt.Errorf("can't create receipt id generator: %w", err)
	}

	if !cfg.GatewayConfigured() {
		zap.L().Warn("payment gateway credentials are missing, contributions are disabled")
	}
	gw := gateway.New(cfg, clients.NewHTTPClient(cfg.GatewayTimeout))

	conn := pg.New(pool)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, gw, a.openLedger(), node)
	a.api = handlers.New(a.srv)
	return nil
}

// openLedger returns nil when the ledger is disabled or can't be opened; payments are then
// verified without a local record.
func (a *Application) openLedger() paymentservice.Ledger {
	if a.cfg.ReceiptsPath == "" {
		return nil
	}
	store, err := receipts.New(a.cfg.ReceiptsPath)
	if err != nil {
		zap.L().Warn("can't open receipts ledger, verified payments won't be recorded locally",
			zap.String("path", a.cfg.ReceiptsPath), zap.Error(err))
		return nil
	}
	a.receipts = store
	return store
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// PaymentsHandler serves only the payment endpoints. Init must have succeeded.
func (a *Application) PaymentsHandler() http.Handler {
	router := chi.NewRouter()
	a.api.InitPaymentRoutes(router)
	return router
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// Close releases the database pool and the receipts ledger.
func (a *Application) Close() {
	if a.receipts != nil {
		if err := a.receipts.Close(); err != nil {
			zap.L().Error("can't close receipts ledger", zap.Error(err))
		}
		a.receipts = nil
	}
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
