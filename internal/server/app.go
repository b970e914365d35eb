// Package server wires configuration, storage, services and transports into
// a running slugmart server and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/auth"
	"github.com/slugmart/slugmart/internal/server/config"
	"github.com/slugmart/slugmart/internal/server/graphql"
	"github.com/slugmart/slugmart/internal/server/httpserver"
	"github.com/slugmart/slugmart/internal/server/observability"
	"github.com/slugmart/slugmart/internal/server/repositories/repomanager"
	"github.com/slugmart/slugmart/internal/server/services"
	"github.com/slugmart/slugmart/internal/server/telemetry"

	gs "github.com/slugmart/slugmart/internal/server/grpc"
)

// bucketPinger is the part of services.UploadService checked at startup.
type bucketPinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	bucket  bucketPinger
	metrics *observability.Metrics
	http    *httpserver.Server
	grpc    *gs.GRPCServer
}

func newRepositoryManager(c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.Storage {
	case config.StorageMemory:
		return repomanager.NewInMemoryRepositoryManager(c.CryptSecret), nil
	case config.StoragePostgres:
		return repomanager.NewPostgresRepositoryManager(c.DatabaseDSN, c.CryptSecret)
	}
	return nil, fmt.Errorf("unknown storage %q", c.Storage)
}

// NewApp builds every component from c. Nothing is started and no network
// connection is made until Run.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	rm, err := newRepositoryManager(c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	codec := auth.NewTokenCodec([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	uploads := services.NewUploadService(c, logger)

	schema, err := graphql.NewSchema(graphql.Services{
		Auth:     services.NewAuthService(rm.Accounts(), codec, logger, metrics),
		Accounts: services.NewAccountService(rm.Accounts(), logger),
		Listings: services.NewListingService(rm.Listings(), logger),
		Messages: services.NewMessageService(rm.Messages(), logger),
		Orders:   services.NewOrderService(rm.Orders(), logger),
		Uploads:  uploads,
	})
	if err != nil {
		_ = rm.Close()
		return nil, err
	}

	grpcPolicy, err := gs.Policy()
	if err != nil {
		_ = rm.Close()
		return nil, err
	}

	router := httpserver.Router(httpserver.RouterOptions{
		AllowedOrigins:     c.AllowedOrigins,
		RateLimitPerMinute: c.RateLimitPerMinute,
		GraphQL:            graphql.NewHandler(schema, auth.NewGate(schema.Policy(), codec, logger, metrics), logger),
		Metrics:            metrics,
		Ready:              rm,
		Logger:             logger,
	})

	app := &App{
		config:  c,
		logger:  logger,
		repos:   rm,
		bucket:  uploads,
		metrics: metrics,
		http:    httpserver.NewServer(c.EndpointAddrHTTP, router, logger),
		grpc:    gs.NewGRPCServer(c.EndpointAddrGRPC, logger, auth.NewGate(grpcPolicy, codec, logger, metrics)),
	}
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// prepare runs everything that must succeed before traffic is accepted.
func (app *App) prepare(ctx context.Context) error {
	if err := app.repos.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	if app.config.Storage == config.StoragePostgres {
		if err := app.bucket.Ping(ctx); err != nil {
			return err
		}
		app.logger.Info(ctx, "connected to S3 bucket", "bucket", app.config.S3Bucket)
	}
	return nil
}

// Run starts the HTTP and gRPC listeners and blocks until ctx is cancelled,
// a termination signal arrives or a listener fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	shutdownTracing, err := telemetry.Init(ctx, app.config.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			app.logger.Warn(ctx, "tracer shutdown", "error", err)
		}
	}()
	defer app.repos.Close()

	if err := app.prepare(ctx); err != nil {
		return err
	}
	app.grpc.SetServing(true)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				app.logger.Error(ctx, name+" server failed", "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancelFunc()
			}
		}()
	}
	run("http", app.http.Run)
	run("grpc", app.grpc.Run)

	wg.Wait()
	app.logger.Info(ctx, "App stopped")
	return errors.Join(errs...)
}
