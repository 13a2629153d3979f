package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server        ServerConfig    `yaml:"server"`
	Logging       LoggingConfig   `yaml:"logging"`
	Mongo         MongoConfig     `yaml:"mongo"`
	Auth          AuthConfig      `yaml:"auth"`
	Redis         RedisConfig     `yaml:"redis"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
	CORS          CORSConfig      `yaml:"cors"`
	AuthorContact AuthorContact   `yaml:"author_contact"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"`
	DBName         string        `yaml:"db_name"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// AuthConfig holds JWT settings. Secret is only ever read from the environment.
type AuthConfig struct {
	Secret   string        `yaml:"-"`
	Issuer   string        `yaml:"issuer"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// RedisConfig is optional. An empty Addr means the in-memory rate limiter is used.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"-"`
	DB       int    `yaml:"db"`
}

// RateLimitConfig defines per-client request budgets within Window.
// A budget <= 0 disables limiting for that route group.
type RateLimitConfig struct {
	Window         time.Duration `yaml:"window"`
	LoginRequests  int           `yaml:"login_requests"`
	PublicRequests int           `yaml:"public_requests"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthorContact is shown on the root endpoint.
type AuthorContact struct {
	Email       string `yaml:"email" json:"email"`
	PhoneNumber string `yaml:"phone_number" json:"phone_number"`
	LinkedIn    string `yaml:"linkedin" json:"linkedin"`
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Load reads config.yaml and .env from the nearest directory that contains a
// config.yaml, then applies environment overrides and defaults.
func Load() (*AppConfig, error) {
	base := GetBasePath()

	// load environment variables
	_ = godotenv.Load(filepath.Join(base, ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(base, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// env-only deployments are allowed
	default:
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	c.applyEnv()
	c.applyDefaults()

	if c.Auth.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return &c, nil
}

func (c *AppConfig) applyEnv() {
	overrideString(&c.Server.Port, "PORT")
	overrideString(&c.Logging.Level, "LOG_LEVEL")
	overrideString(&c.Mongo.URI, "MONGO_URI")
	overrideString(&c.Mongo.DBName, "MONGO_DB_NAME")
	overrideString(&c.Auth.Secret, "JWT_SECRET")
	overrideString(&c.Auth.Issuer, "JWT_ISSUER")
	overrideString(&c.Redis.Addr, "REDIS_ADDR")
	overrideString(&c.Redis.Password, "REDIS_PASSWORD")
	overrideString(&c.AuthorContact.Email, "EMAIL")
	overrideString(&c.AuthorContact.PhoneNumber, "PHONE_NUMBER")
	overrideString(&c.AuthorContact.LinkedIn, "LINKEDIN")
	if origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); origins != "" {
		c.CORS.AllowedOrigins = splitCSV(origins)
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Mongo.URI == "" {
		// local docker-compose default
		c.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "blog_api"
	}
	if c.Mongo.ConnectTimeout <= 0 {
		c.Mongo.ConnectTimeout = 10 * time.Second
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "blog-api"
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = time.Hour
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = time.Minute
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
}

func overrideString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
