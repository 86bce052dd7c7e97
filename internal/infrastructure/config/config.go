package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by USER_STORE and SESSION_STORE.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Auth    AuthConfig
	Sync    SyncConfig

	UserStore    string `env:"USER_STORE,    default=memory"`
	SessionStore string `env:"SESSION_STORE, default=memory"`

	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	Secret  string        `env:"SESSION_SECRET"`
	TTL     time.Duration `env:"SESSION_TTL,      default=720h"`
	MaxIdle time.Duration `env:"SESSION_MAX_IDLE, default=30m"`
	Secure  bool          `env:"SESSION_SECURE,   default=false"`
}

type AuthConfig struct {
	LoginDelay      time.Duration `env:"LOGIN_DELAY,                default=500ms"`
	VerifyPasswords bool          `env:"VERIFY_PASSWORDS,           default=false"`
	PersistProfile  bool          `env:"PERSIST_ONBOARDING_PROFILE, default=false"`
}

type SyncConfig struct {
	Workers int           `env:"SYNC_WORKERS, default=4"`
	Timeout time.Duration `env:"SYNC_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=wellness"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	switch c.UserStore {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("config: USER_STORE must be %q or %q, got %q", BackendMemory, BackendMongo, c.UserStore)
	}
	switch c.SessionStore {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: SESSION_STORE must be %q or %q, got %q", BackendMemory, BackendRedis, c.SessionStore)
	}
	if c.Session.Secret == "" && !c.IsDevelopment() {
		return fmt.Errorf("config: SESSION_SECRET is required outside development")
	}
	return nil
}

// Load reads configuration from the environment using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
