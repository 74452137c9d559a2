package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":5000"`
	// Port is set by hosting platforms; when present it wins over Addr.
	Port string `yaml:"port" env:"PORT"`
}

type Database struct {
	URL             string        `yaml:"DATABASE_URL" env:"DATABASE_URL"`
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-default:"postgres"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-default:"hafak_surgicals"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"disable"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// RateConfig bounds login attempts per username within a sliding window.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15m"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
}

type Cloudinary struct {
	URL       string `yaml:"CLOUDINARY_URL" env:"CLOUDINARY_URL"`
	CloudName string `yaml:"CLOUDINARY_CLOUD_NAME" env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `yaml:"CLOUDINARY_API_KEY" env:"CLOUDINARY_API_KEY"`
	APISecret string `yaml:"CLOUDINARY_API_SECRET" env:"CLOUDINARY_API_SECRET"`
	Folder    string `yaml:"CLOUDINARY_FOLDER" env:"CLOUDINARY_FOLDER" env-default:"hafak-surgicals"`
}

type KeepAlive struct {
	Enabled      bool          `yaml:"KEEP_ALIVE_ENABLED" env:"KEEP_ALIVE_ENABLED" env-default:"false"`
	ExternalURL  string        `yaml:"RENDER_EXTERNAL_URL" env:"RENDER_EXTERNAL_URL"`
	Schedule     string        `yaml:"KEEP_ALIVE_SCHEDULE" env:"KEEP_ALIVE_SCHEDULE" env-default:"*/14 * * * *"`
	InitialDelay time.Duration `yaml:"KEEP_ALIVE_INITIAL_DELAY" env:"KEEP_ALIVE_INITIAL_DELAY" env-default:"5s"`
	Timeout      time.Duration `yaml:"KEEP_ALIVE_TIMEOUT" env:"KEEP_ALIVE_TIMEOUT" env-default:"10s"`
}

type OtelConfig struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"hafak-catalog"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

// Owner describes the super-admin account created by the bootstrap command.
type Owner struct {
	Username string `yaml:"OWNER_USERNAME" env:"OWNER_USERNAME" env-default:"owner"`
	Email    string `yaml:"OWNER_EMAIL" env:"OWNER_EMAIL" env-default:"owner@hafaksurgicals.com"`
	Password string `yaml:"OWNER_PASSWORD" env:"OWNER_PASSWORD"`
}

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Cache        CacheConfig  `yaml:"cache"`
	Security     Security     `yaml:"security"`
	Cloudinary   Cloudinary   `yaml:"cloudinary"`
	KeepAlive    KeepAlive    `yaml:"keep_alive"`
	Otel         OtelConfig   `yaml:"otel"`
	Owner        Owner        `yaml:"owner"`
}

// MustLoad reads the file named by CONFIG_PATH or -config. Without either the
// configuration comes from the environment alone.
func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to a YAML config file")

		flag.Parse()

		configPath = *flags
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (h *HTTPServer) ListenAddr() string {
	if h.Port != "" {
		return ":" + h.Port
	}

	return h.Addr
}

// GetDSN prefers DATABASE_URL when it is set.
func (d *Database) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%s", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}

	return u.String()
}

// Enabled reports whether a redis server is configured at all.
func (r *RedisConnect) Enabled() bool {
	return r.Host != ""
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

func (r *RedisConnect) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func (c *Cloudinary) Enabled() bool {
	return c.URL != "" || (c.CloudName != "" && c.APIKey != "" && c.APISecret != "")
}

// Validate reports a missing signing key. Only the API server needs one.
func (s *Security) Validate() error {
	if s.JWTKey == "" {
		return errors.New("JWT_KEY is required")
	}

	return nil
}

func (s *Security) JWTExpiry() time.Duration {
	return time.Duration(s.JWTExpiryHours) * time.Hour
}

// PingURL is the health endpoint the keep-alive job hits. Without an external
// URL the local listener is used.
func (c *Config) PingURL() string {
	base := strings.TrimRight(c.KeepAlive.ExternalURL, "/")

	if base == "" {
		port := c.HTTPServer.Port
		if port == "" {
			port = "5000"
		}

		base = "http://localhost:" + port
	}

	return base + "/api/health"
}
