package app

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/repository"
	"github.com/joshuarp/image-derivative-api/internal/services"
	"github.com/joshuarp/image-derivative-api/internal/shared/config"
	"github.com/joshuarp/image-derivative-api/internal/shared/itok"
	"github.com/joshuarp/image-derivative-api/internal/shared/lock"
	"github.com/joshuarp/image-derivative-api/internal/shared/uid"
	"github.com/joshuarp/image-derivative-api/internal/storage"
)

const (
	storageDriverLocal = "local"
	storageDriverS3    = "s3"
)

// ImageModule provides what both the delivery and the admin modules build on:
// scheme storage, style definitions and itok signing.
func ImageModule() fx.Option {
	return fx.Module("image",
		fx.Provide(
			fx.Annotate(
				provideStorageManager,
				fx.As(new(services.DerivativeStorage)),
				fx.As(new(services.ImageStorage)),
				fx.As(new(services.DerivativeFlusher)),
			),
			fx.Annotate(
				provideStyleCatalog,
				fx.As(new(services.StyleReader)),
				fx.As(new(services.StyleCatalog)),
			),
			provideKeyRing,
			fx.Annotate(
				itok.NewSigner,
				fx.As(new(services.TokenValidator)),
				fx.As(new(services.TokenSigner)),
			),
		),
	)
}

type schemeConfig struct {
	Driver string `mapstructure:"driver"`
	Root   string `mapstructure:"root"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Public *bool  `mapstructure:"public"`
}

func (c schemeConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required, validation.In(storageDriverLocal, storageDriverS3)),
		validation.Field(&c.Root, validation.When(c.Driver == storageDriverLocal, validation.Required)),
		validation.Field(&c.Bucket, validation.When(c.Driver == storageDriverS3, validation.Required)),
	)
}

func (c schemeConfig) public(name string) bool {
	if c.Public == nil {
		return name != "private"
	}
	return *c.Public
}

func defaultSchemes() map[string]schemeConfig {
	return map[string]schemeConfig{
		"public":  {Driver: storageDriverLocal, Root: "files/public"},
		"private": {Driver: storageDriverLocal, Root: "files/private"},
	}
}

func provideStorageManager(cfg config.ConfigProvider, ids uid.UIDGenerator) (*storage.Manager, error) {
	schemes := map[string]schemeConfig{}
	if err := cfg.UnmarshalKey("storage.schemes", &schemes); err != nil {
		return nil, fmt.Errorf("app: decode storage schemes: %w", err)
	}
	if len(schemes) == 0 {
		schemes = defaultSchemes()
	}

	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)

	manager := storage.NewManager()
	for _, name := range names {
		scheme := schemes[name]
		if scheme.Driver == "" {
			scheme.Driver = storageDriverLocal
		}
		if err := scheme.Validate(); err != nil {
			return nil, fmt.Errorf("app: storage scheme %s: %w", name, err)
		}

		var backend storage.Backend
		switch scheme.Driver {
		case storageDriverS3:
			s3Backend, err := storage.NewS3Backend(storage.S3Options{
				Endpoint:  cfg.GetString("s3.endpoint"),
				AccessKey: cfg.GetString("s3.access_key"),
				SecretKey: cfg.GetString("s3.secret_key"),
				Region:    cfg.GetString("s3.region"),
				UseSSL:    cfg.GetBool("s3.use_ssl"),
				Bucket:    scheme.Bucket,
				Prefix:    scheme.Prefix,
			})
			if err != nil {
				return nil, fmt.Errorf("app: storage scheme %s: %w", name, err)
			}
			backend = s3Backend
		default:
			localBackend, err := storage.NewLocalBackend(scheme.Root, ids)
			if err != nil {
				return nil, fmt.Errorf("app: storage scheme %s: %w", name, err)
			}
			backend = localBackend
		}

		manager.Register(name, backend, scheme.public(name))
	}

	return manager, nil
}

type styleCatalogIn struct {
	fx.In

	Config config.ConfigProvider
	Pool   *postgresPool
	Logger *slog.Logger
}

// provideStyleCatalog wraps the configured style source in an LRU cache that
// is purged whenever the config file changes.
func provideStyleCatalog(in styleCatalogIn) (*repository.CachedStyleRepository, error) {
	var source repository.StyleSource
	switch strings.ToLower(strings.TrimSpace(in.Config.GetString("styles.source"))) {
	case "postgres":
		db, err := in.Pool.Open("styles")
		if err != nil {
			return nil, err
		}
		source = repository.NewImageStyleRepository(db)
	case "", "config":
		source = repository.NewConfigStyleRepository(in.Config)
	default:
		return nil, fmt.Errorf("app: unknown styles source %q", in.Config.GetString("styles.source"))
	}

	cached, err := repository.NewCachedStyleRepository(source, in.Config.GetInt("styles.cache_size"))
	if err != nil {
		return nil, err
	}

	in.Config.OnChange(func() {
		cached.Purge()
		in.Logger.Info("image style cache purged after config reload")
	})

	return cached, nil
}

// provideKeyRing builds the process-wide itok key cache. A configured
// image.private_key wins; otherwise every worker converges on one key in redis.
func provideKeyRing(cfg config.ConfigProvider, redisClient *redis.Client) *itok.KeyRing {
	var store itok.KeyStore
	if key := cfg.GetString("image.private_key"); key != "" {
		store = itok.StaticKeyStore(key)
	} else {
		store = itok.NewRedisKeyStore(redisClient, cfg.GetString("image.private_key_redis_key"))
	}

	keyRing := itok.NewKeyRing(store, cfg.GetString("image.hash_salt"))
	cfg.OnChange(keyRing.Forget)
	return keyRing
}

type lockerIn struct {
	fx.In

	Config config.ConfigProvider
	Redis  *redis.Client
	Pool   *postgresPool
	IDs    uid.UIDGenerator
}

func provideDerivativeLocker(in lockerIn) (services.DerivativeLocker, error) {
	switch lock.Backend(strings.ToLower(strings.TrimSpace(in.Config.GetString("lock.backend")))) {
	case lock.BackendPostgres:
		db, err := in.Pool.Open("lock")
		if err != nil {
			return nil, err
		}
		return lock.NewSQLXLocker(db, in.IDs), nil
	case lock.BackendRedis, "":
		if in.Redis == nil {
			return nil, fmt.Errorf("app: redis client is required for the redis lock backend")
		}
		var opts []lock.RedisLockerOption
		if prefix := in.Config.GetString("lock.prefix"); prefix != "" {
			opts = append(opts, lock.WithRedisPrefix(prefix))
		}
		return lock.NewRedisLocker(in.Redis, in.IDs, opts...), nil
	default:
		return nil, fmt.Errorf("app: unknown lock backend %q", in.Config.GetString("lock.backend"))
	}
}
