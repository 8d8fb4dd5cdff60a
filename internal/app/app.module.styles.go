package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/handlers"
	"github.com/joshuarp/image-derivative-api/internal/services"
	"github.com/joshuarp/image-derivative-api/internal/shared/config"
)

func StylesModule() fx.Option {
	return fx.Module("styles",
		fx.Provide(
			fx.Annotate(
				provideStyleManageService,
				fx.As(new(handlers.StyleManageService)),
			),
			handlers.NewStyleManageHandler,
		),
		fx.Invoke(registerStyleRoutes),
	)
}

type styleManageIn struct {
	fx.In

	Config  config.ConfigProvider
	Styles  services.StyleCatalog
	Storage services.DerivativeFlusher
	Signer  services.TokenSigner
	Logger  *slog.Logger
}

func provideStyleManageService(in styleManageIn) *services.StyleManageService {
	return services.NewStyleManageService(
		in.Styles,
		in.Storage,
		in.Signer,
		in.Config.GetString("app.base_url"),
		in.Logger,
	)
}
