package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/shared/config"
	sharedhash "github.com/joshuarp/image-derivative-api/internal/shared/hash"
	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
	sharedlog "github.com/joshuarp/image-derivative-api/internal/shared/log"
	"github.com/joshuarp/image-derivative-api/internal/shared/uid"
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	normalizedBin := strings.TrimSpace(strings.ToLower(bin))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedBin,
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
		ImageModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts, fx.Invoke(registerLifecycle))
	return fx.New(opts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideRedisClient,
			providePostgresPool,
			provideUIDGenerator,
			provideFiberApp,
			providePasswordHasher,
			provideJWTTokenManager,
			provideRouterGroups,
		),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := strings.TrimSpace(strings.ToLower(in.Bin))

	loadOrder := make([]config.Options, 0, 4)
	if !isSingleBinaryBin(bin) {
		loadOrder = append(loadOrder, config.Options{
			YAMLPath: fmt.Sprintf("config.%s.yaml", bin),
			EnvPath:  fmt.Sprintf(".env.%s", bin),
		})
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
		},
		config.Options{
			YAMLPath: "config.example.yaml",
			EnvPath:  ".env.example",
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("app.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("app.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		AppName:      cfg.GetString("app.name"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func provideUIDGenerator(cfg config.ConfigProvider) (uid.UIDGenerator, error) {
	return uid.New(uid.Options{
		Strategy: uid.Strategy(strings.ToLower(cfg.GetString("uid.strategy"))),
		NodeID:   int64(cfg.GetInt("uid.node_id")),
	})
}

func providePasswordHasher() (sharedhash.Hasher, error) {
	return sharedhash.New(sharedhash.Options{Strategy: sharedhash.StrategyBcrypt})
}

func jwtTokenTTL(cfg config.ConfigProvider) time.Duration {
	ttl := cfg.GetDuration("jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return ttl
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("jwt.secret")
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       jwtTokenTTL(cfg),
		Issuer:    cfg.GetString("jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}
