package app

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/handlers"
	"github.com/joshuarp/image-derivative-api/internal/services"
	"github.com/joshuarp/image-derivative-api/internal/shared/config"
)

func DeliveryModule() fx.Option {
	return fx.Module("delivery",
		fx.Provide(
			fx.Annotate(
				provideDeliverRateLimiter,
				fx.ResultTags(`name:"deliver_rate_limiter"`),
			),
			provideDerivativeLocker,
			fx.Annotate(
				provideDerivativeGenerateService,
				fx.As(new(services.DerivativeGenerator)),
			),
			fx.Annotate(
				provideDerivativeDeliverService,
				fx.As(new(handlers.DerivativeDeliverService)),
			),
			handlers.NewDerivativeDeliverHandler,
		),
		fx.Invoke(registerDeliveryRoutes),
	)
}

func provideDerivativeGenerateService(cfg config.ConfigProvider, storage services.ImageStorage) *services.DerivativeGenerateService {
	quality := cfg.GetInt("image.jpeg_quality")
	if quality <= 0 || quality > 100 {
		quality = 75
	}
	return services.NewDerivativeGenerateService(storage, quality)
}

func provideDerivativeDeliverOptions(cfg config.ConfigProvider) services.DerivativeDeliverOptions {
	lockTTL := cfg.GetDuration("lock.ttl")
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}

	maxAge := cfg.GetDuration("image.cache_max_age")
	if maxAge < 0 {
		maxAge = 0
	}

	return services.DerivativeDeliverOptions{
		AllowInsecure: cfg.GetBool("image.allow_insecure_derivatives"),
		LockTTL:       lockTTL,
		CacheMaxAge:   maxAge,
	}
}

type derivativeDeliverIn struct {
	fx.In

	Config    config.ConfigProvider
	Styles    services.StyleReader
	Storage   services.DerivativeStorage
	Locker    services.DerivativeLocker
	Tokens    services.TokenValidator
	Generator services.DerivativeGenerator
	Logger    *slog.Logger
}

func provideDerivativeDeliverService(in derivativeDeliverIn) *services.DerivativeDeliverService {
	return services.NewDerivativeDeliverService(
		in.Styles,
		in.Storage,
		in.Locker,
		in.Tokens,
		in.Generator,
		services.ClaimsAccessHook{Roles: []string{domain.RoleAdmin, domain.RoleEditor}},
		in.Logger,
		provideDerivativeDeliverOptions(in.Config),
	)
}
