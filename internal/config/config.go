package config

import (
	"flag"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	ServerURL   string `env:"-"`

	// Datastore
	DatabaseDSN string `env:"DATABASE_URI"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE"`

	// Auth provider
	AuthURL       string        `env:"AUTH_URL"`
	AuthAnonKey   string        `env:"AUTH_ANON_KEY"`
	AuthJWTSecret string        `env:"AUTH_JWT_SECRET"`
	AuthTimeout   time.Duration `env:"AUTH_TIMEOUT"`
	FrontendURL   string        `env:"FRONTEND_URL"`

	// Object store
	StorageBucket          string `env:"STORAGE_BUCKET"`
	StorageEndpoint        string `env:"STORAGE_ENDPOINT"`
	StorageRegion          string `env:"STORAGE_REGION"`
	StorageAccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID"`
	StorageSecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY"`
	StoragePublicURL       string `env:"STORAGE_PUBLIC_URL"`

	UploadMaxMB        int      `env:"UPLOAD_MAX_MB"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	LogFormat          string   `env:"LOG_FORMAT"`
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "адрес сервера host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или sqlite:<path>)")
	flag.BoolVar(&cfg.AutoMigrate, "migrate", cfg.AutoMigrate, "создать таблицы при старте")
	flag.StringVar(&cfg.AuthURL, "auth-url", cfg.AuthURL, "base URL of the auth provider")
	flag.StringVar(&cfg.AuthAnonKey, "auth-key", cfg.AuthAnonKey, "anon API key of the auth provider")
	flag.StringVar(&cfg.AuthJWTSecret, "jwt-secret", cfg.AuthJWTSecret, "verify access tokens locally with this HS256 secret")
	flag.StringVar(&cfg.FrontendURL, "frontend-url", cfg.FrontendURL, "frontend URL for email redirects")
	flag.StringVar(&cfg.StorageBucket, "bucket", cfg.StorageBucket, "object store bucket")
	flag.StringVar(&cfg.StorageEndpoint, "storage-endpoint", cfg.StorageEndpoint, "S3-compatible endpoint")
	flag.IntVar(&cfg.UploadMaxMB, "upload-max-mb", cfg.UploadMaxMB, "max upload size, MB")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json or console")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	// BaseURL только в виде "address:port", иначе дефолт
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	cfg.AuthURL = strings.TrimRight(cfg.AuthURL, "/")
	if cfg.AuthTimeout <= 0 {
		cfg.AuthTimeout = 10 * time.Second
	}
	if cfg.StorageBucket == "" {
		cfg.StorageBucket = "files"
	}
	if cfg.StorageRegion == "" {
		cfg.StorageRegion = "us-east-1"
	}
	if cfg.UploadMaxMB <= 0 {
		cfg.UploadMaxMB = 50
	}

	origins := make([]string, 0, len(cfg.CORSAllowedOrigins))
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg.CORSAllowedOrigins = origins
}

// UploadMaxBytes - лимит размера загружаемого файла в байтах.
func (cfg *Config) UploadMaxBytes() int64 {
	return int64(cfg.UploadMaxMB) << 20
}
