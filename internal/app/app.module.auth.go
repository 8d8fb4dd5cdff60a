package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/handlers"
	"github.com/joshuarp/image-derivative-api/internal/shared/config"
	"github.com/joshuarp/image-derivative-api/internal/repository"
	"github.com/joshuarp/image-derivative-api/internal/services"
)

func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				provideAuthPostgresSQLX,
				fx.ResultTags(`name:"db_auth"`),
			),
			fx.Annotate(
				repository.NewAuthLoginRepository,
				fx.ParamTags(`name:"db_auth"`),
				fx.As(new(services.AuthLoginRepository)),
			),
			provideAuthLoginOptions,
			fx.Annotate(
				services.NewAuthLoginService,
				fx.As(new(handlers.AuthLoginService)),
			),
			handlers.NewAuthLoginHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}

func provideAuthLoginOptions(cfg config.ConfigProvider) services.AuthLoginOptions {
	return services.AuthLoginOptions{TokenTTL: jwtTokenTTL(cfg)}
}
