package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - Every variable carries a default so a service starts with no env at all.
// - Ports and database names follow the per-service layout (users 3001,
//   books 3002, loans 3003, reviews 3004) and are applied after Process
//   because envconfig defaults cannot differ per service.
// -----------------------------------------------------------------------------

type ServerConfig struct {
	Port string `envconfig:"PORT"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// RemoteConfig is the policy object for outbound lookups: the loan and review
// services validate references against the user and book services with a
// bounded timeout and no retry.
type RemoteConfig struct {
	UserServiceURL string        `envconfig:"USER_SERVICE_URL" default:"http://localhost:3001"`
	BookServiceURL string        `envconfig:"BOOK_SERVICE_URL" default:"http://localhost:3002"`
	Timeout        time.Duration `envconfig:"REMOTE_TIMEOUT" default:"5s"`
}

type UserConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
}

type BookConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
}

type LoanConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Remote RemoteConfig
}

type ReviewConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Remote RemoteConfig
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadUserConfig() (UserConfig, error) {
	var cfg UserConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return UserConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	applyServiceDefaults(&cfg.Server, &cfg.DB, "3001", "user_db")
	return cfg, nil
}

func LoadBookConfig() (BookConfig, error) {
	var cfg BookConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return BookConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	applyServiceDefaults(&cfg.Server, &cfg.DB, "3002", "book_db")
	return cfg, nil
}

func LoadLoanConfig() (LoanConfig, error) {
	var cfg LoanConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return LoanConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	applyServiceDefaults(&cfg.Server, &cfg.DB, "3003", "loan_db")
	return cfg, nil
}

func LoadReviewConfig() (ReviewConfig, error) {
	var cfg ReviewConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return ReviewConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	applyServiceDefaults(&cfg.Server, &cfg.DB, "3004", "review_db")
	return cfg, nil
}

func applyServiceDefaults(server *ServerConfig, db *DBConfig, port, dbName string) {
	if server.Port == "" {
		server.Port = port
	}
	if db.DBName == "" {
		db.DBName = dbName
	}
}
