package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/handlers"
	"github.com/joshuarp/image-derivative-api/internal/middlewares"
	"github.com/joshuarp/image-derivative-api/internal/shared/config"
	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/image-derivative-api/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	Root      fiber.Router `name:"root"`
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware())
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware())
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	if cfg.GetBool("metrics.enabled") {
		path := cfg.GetString("metrics.path")
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager))

	return routerGroupsOut{
		Root:      app,
		Public:    api,
		Protected: protected,
	}
}

type authRoutesIn struct {
	fx.In
	Public  fiber.Router `name:"api_public"`
	Handler *handlers.AuthLoginHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.Handler.Register(in.Public)
}

type styleRoutesIn struct {
	fx.In
	Protected fiber.Router `name:"api_protected"`
	Handler   *handlers.StyleManageHandler
}

func registerStyleRoutes(in styleRoutesIn) {
	in.Handler.Register(in.Protected, middlewares.NewHTTPRoleMiddleware(domain.RoleAdmin))
}

type deliveryRoutesIn struct {
	fx.In
	Root         fiber.Router            `name:"root"`
	RateLimiter  sharedratelimit.Limiter `name:"deliver_rate_limiter"`
	TokenManager sharedjwt.TokenManager
	Logger       *slog.Logger
	Handler      *handlers.DerivativeDeliverHandler
}

// registerDeliveryRoutes mounts /{scheme}/styles/... at the root. Claims are
// optional there: public derivatives are anonymous, private ones are checked
// by the access hook.
func registerDeliveryRoutes(in deliveryRoutesIn) {
	rateLimitMiddleware := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RateLimiter,
		Logger:       in.Logger,
		KeyExtractor: middlewares.PerUserKeyExtractor("deliver"),
	})

	in.Handler.Register(in.Root, middlewares.NewHTTPOptionalJWTMiddleware(in.TokenManager), rateLimitMiddleware)
}
