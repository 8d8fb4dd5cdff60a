package config

import (
	"time"

	"github.com/spf13/viper"
)

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "image-derivative-api")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.read_timeout", 30*time.Second)
	v.SetDefault("app.write_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("image.allow_insecure_derivatives", false)
	v.SetDefault("image.jpeg_quality", 75)
	v.SetDefault("image.cache_max_age", 1209600*time.Second)

	v.SetDefault("lock.backend", "redis")
	v.SetDefault("lock.ttl", 30*time.Second)
	v.SetDefault("lock.prefix", "lock:")

	v.SetDefault("styles.source", "config")
	v.SetDefault("styles.cache_size", 128)

	v.SetDefault("jwt.issuer", "image-derivative-api")
	v.SetDefault("jwt.ttl", 15*time.Minute)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
