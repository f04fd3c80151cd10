// Package config loads blogcms settings from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"

	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Store   StoreConfig
	Admin   AdminConfig
	Session SessionConfig
	Redis   RedisConfig
	Mail    MailConfig
	Blog    BlogConfig
}

type StoreConfig struct {
	Driver      string `env:"STORE_DRIVER, default=mongo"`
	LocalServer bool   `env:"LOCAL_SERVER, default=true"`
	LocalURI    string `env:"LOCAL_URI,    default=mongodb://localhost:27017"`
	ProdURI     string `env:"PROD_URI"`
	MongoDB     string `env:"MONGO_DB,     default=blogcms"`
	SQLitePath  string `env:"SQLITE_PATH,  default=blog.db"`
}

type AdminConfig struct {
	User         string `env:"ADMIN_USER, default=admin"`
	Password     string `env:"ADMIN_PASSWORD"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

type SessionConfig struct {
	Secret  string        `env:"SESSION_SECRET, required"`
	TTL     time.Duration `env:"SESSION_TTL,     default=24h"`
	Backend string        `env:"SESSION_BACKEND, default=redis"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MailConfig struct {
	Enabled   bool   `env:"MAIL_ENABLED,   default=false"`
	Server    string `env:"MAIL_SERVER,    default=smtp.gmail.com"`
	Port      int    `env:"MAIL_PORT,      default=465"`
	User      string `env:"MAIL_USER"`
	Password  string `env:"MAIL_PASSWORD"`
	Recipient string `env:"MAIL_RECIPIENT"`
}

type BlogConfig struct {
	Name      string `env:"BLOG_NAME,    default=Clean Blog"`
	Tagline   string `env:"BLOG_TAGLINE, default=A blog about everything"`
	About     string `env:"ABOUT_TEXT,   default=This blog is written and maintained by its single admin."`
	HomePosts int    `env:"NO_OF_POSTS,  default=5"`
}

// DatabaseURI picks the local or production connection string.
func (c StoreConfig) DatabaseURI() string {
	if c.LocalServer {
		return c.LocalURI
	}
	return c.ProdURI
}

// IsDevelopment reports whether pretty logging and other dev niceties apply.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks combinations envconfig cannot express.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.DatabaseURI() == "" {
			return errors.New("config: PROD_URI is required when LOCAL_SERVER=false")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("config: SQLITE_PATH must not be empty")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Session.Backend {
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.Session.Backend)
	}

	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("config: ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if c.Mail.Enabled && c.Mail.Recipient == "" {
		return errors.New("config: MAIL_RECIPIENT is required when MAIL_ENABLED=true")
	}
	return nil
}

// Load reads .env files (if any) and then the environment. Variables already
// set in the environment win over .env values.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
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
