package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"

	"github.com/joshuarp/image-derivative-api/internal/shared/config"
)

type dbProviderIn struct {
	fx.In

	Config config.ConfigProvider
	Bin    string `name:"bin"`
}

// postgresPool opens one connection pool per module on first use. Style
// definitions, admin users and locks may live in different databases; a module
// nobody asks for never dials.
type postgresPool struct {
	cfg config.ConfigProvider
	bin string

	mu  sync.Mutex
	dbs map[string]*sqlx.DB
}

func providePostgresPool(in dbProviderIn) *postgresPool {
	return &postgresPool{
		cfg: in.Config,
		bin: in.Bin,
		dbs: make(map[string]*sqlx.DB),
	}
}

func (p *postgresPool) Open(module string) (*sqlx.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if db, ok := p.dbs[module]; ok {
		return db, nil
	}

	db, err := providePostgresSQLXForModule(p.cfg, p.bin, module)
	if err != nil {
		return nil, err
	}
	p.dbs[module] = db
	return db, nil
}

func (p *postgresPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for module, db := range p.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("db(%s): %w", module, err))
		}
		delete(p.dbs, module)
	}
	return errors.Join(errs...)
}

func provideAuthPostgresSQLX(pool *postgresPool) (*sqlx.DB, error) {
	return pool.Open("auth")
}

func providePostgresSQLXForModule(cfg config.ConfigProvider, bin, module string) (*sqlx.DB, error) {
	useModuleConfig := !isSingleBinaryBin(bin)

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		moduleDBString(cfg, module, "host", useModuleConfig),
		moduleDBInt(cfg, module, "port", useModuleConfig),
		moduleDBString(cfg, module, "user", useModuleConfig),
		moduleDBString(cfg, module, "password", useModuleConfig),
		moduleDBString(cfg, module, "name", useModuleConfig),
		moduleDBString(cfg, module, "ssl_mode", useModuleConfig),
	)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db(%s): failed to open postgres connection: %w", module, err)
	}

	if n := cfg.GetInt("database.max_open_conns"); n > 0 {
		db.SetMaxOpenConns(n)
	}
	if n := cfg.GetInt("database.max_idle_conns"); n > 0 {
		db.SetMaxIdleConns(n)
	}
	if d := cfg.GetDuration("database.conn_max_lifetime"); d > 0 {
		db.SetConnMaxLifetime(d)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(%s): failed to ping postgres: %w", module, err)
	}

	return db, nil
}

func moduleDBString(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetString(moduleKey)
		}

		moduleEnvKey := moduleDBEnvKey(module, key)
		if cfg.IsSet(moduleEnvKey) {
			return cfg.GetString(moduleEnvKey)
		}
	}

	globalKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(globalKey) {
		return cfg.GetString(globalKey)
	}

	return cfg.GetString(globalDBEnvKey(key))
}

func moduleDBInt(cfg config.ConfigProvider, module, key string, useModuleConfig bool) int {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetInt(moduleKey)
		}

		moduleEnvKey := moduleDBEnvKey(module, key)
		if cfg.IsSet(moduleEnvKey) {
			return cfg.GetInt(moduleEnvKey)
		}
	}

	globalKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(globalKey) {
		return cfg.GetInt(globalKey)
	}

	return cfg.GetInt(globalDBEnvKey(key))
}

// isSingleBinaryBin reports whether every module shares the global database settings.
func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == "all"
}

func moduleDBEnvKey(module, key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s_%s", strings.ToUpper(module), normalizedKey)
}

func globalDBEnvKey(key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s", normalizedKey)
}
