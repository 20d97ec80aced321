package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Admin   AdminConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	// URL is the base URL of the remote storefront service.
	URL string `env:"BACKEND_URL, default=http://localhost:9000"`
}

type AdminConfig struct {
	// GatePasswordHash is the bcrypt hash of the local admin-gate password.
	// The gate is UX friction, not access control: the backend's role check
	// authorizes every admin call on its own.
	GatePasswordHash string `env:"ADMIN_GATE_PASSWORD_HASH"`
	// UnlockTTL bounds how long an unlock survives without a logout.
	UnlockTTL time.Duration `env:"ADMIN_UNLOCK_TTL, default=12h"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
