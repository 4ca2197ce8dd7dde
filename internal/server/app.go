// Package server wires the relay together: configuration, key material, the
// downstream client, metrics and the gRPC endpoint, and runs them until a
// shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	"github.com/dmitrijs2005/ragrelay/internal/logging"
	"github.com/dmitrijs2005/ragrelay/internal/server/config"
	"github.com/dmitrijs2005/ragrelay/internal/server/metrics"
	"github.com/dmitrijs2005/ragrelay/internal/server/ragflow"
	"github.com/dmitrijs2005/ragrelay/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/ragrelay/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	metrics *metrics.Metrics
	relay   *services.RelayService
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return newApp(c, logger)
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {

	key, err := cryptox.ResolveTransportKey(c.TransportKey, c.TransportPassphrase, c.TransportSalt)
	if err != nil {
		return nil, fmt.Errorf("transport key error: %w", err)
	}

	transport, err := cryptox.NewTransportCodec(key)
	if err != nil {
		return nil, fmt.Errorf("transport codec error: %w", err)
	}

	var keys cryptox.KeyLoader = cryptox.FileKeyLoader{Path: c.PublicKeyPath}
	if c.CachePublicKey {
		keys = cryptox.NewCachingKeyLoader(c.PublicKeyPath)
	}

	// a broken key file is only logged, the relay answers with a
	// misconfiguration reply until it is fixed
	if _, err := keys.Load(); err != nil {
		logger.Warn(context.Background(), "public key not loadable at startup", "path", c.PublicKeyPath, "error", err)
	}

	m := metrics.New()
	httpClient := &http.Client{
		Timeout:   c.DownstreamTimeout,
		Transport: m.InstrumentTransport(http.DefaultTransport),
	}

	relay := services.NewRelayService(
		transport,
		cryptox.NewDownstreamCodec(keys),
		ragflow.NewClient(c.DownstreamBaseURL, httpClient),
		m,
		logger,
	)

	return &App{config: c, logger: logger, metrics: m, relay: relay}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled, a shutdown signal arrives or one of the
// servers fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"downstream", app.config.DownstreamBaseURL,
		"public_key", app.config.PublicKeyPath,
		"cache_public_key", app.config.CachePublicKey,
	)
	if app.config.TransportKey == config.DefaultTransportKey && app.config.TransportPassphrase == "" {
		app.logger.Warn(ctx, "using the built-in development transport key")
	}

	app.initSignalHandler(ctx, cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.relay)
		if err != nil {
			return err
		}
		return s.Run(gctx)
	})

	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return metrics.NewServer(app.config.MetricsAddr, app.metrics, app.logger).Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
