package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/shared/config"
)

func registerLifecycle(
	lifecycle fx.Lifecycle,
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	deps lifecycleDepsIn,
) {
	port := cfg.GetInt("app.port")
	if port == 0 {
		port = 8080
	}
	address := fmt.Sprintf("%s:%d", cfg.GetString("app.host"), port)
	var serveErrCh chan error

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", address)
			if err != nil {
				return fmt.Errorf("app: failed to bind server address %s: %w", address, err)
			}

			serveErrCh = make(chan error, 1)
			go func() {
				err := app.Listener(listener)
				if err != nil && !errors.Is(err, net.ErrClosed) {
					logger.Error("fiber server stopped unexpectedly", "error", err)
				}
				serveErrCh <- err
			}()

			cfg.WatchChanges()
			logger.Info("fiber server started", "address", address, "config_source", cfg.Source())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			var shutdownErrors []error

			if err := app.ShutdownWithContext(ctx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}

			if serveErrCh != nil {
				select {
				case err := <-serveErrCh:
					if err != nil && !errors.Is(err, net.ErrClosed) {
						shutdownErrors = append(shutdownErrors, err)
					}
				case <-ctx.Done():
					shutdownErrors = append(shutdownErrors, ctx.Err())
				}
			}

			cfg.StopWatching()

			if deps.Postgres != nil {
				if err := deps.Postgres.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if deps.Redis != nil {
				if err := deps.Redis.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if len(shutdownErrors) > 0 {
				return errors.Join(shutdownErrors...)
			}

			logger.Info("fiber server shutdown completed")
			return nil
		},
	})
}

type lifecycleDepsIn struct {
	fx.In

	Postgres *postgresPool `optional:"true"`
	Redis    *redis.Client `optional:"true"`
}
