package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App           AppConfig
	Catalog       CatalogConfig
	Database      DatabaseConfig
	Scraper       ScraperConfig
	InternalToken string
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type CatalogConfig struct {
	Source    string
	Path      string
	BoostPath string
	TopK      int
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
	RunMigrations  bool
	RunSeeders     bool
}

type ScraperConfig struct {
	CatalogURL string
	OutputPath string
	NotifyURL  string
	Workers    int
	Pages      int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return def
		}
		return n
	}
	optBool := func(key string) bool {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		return v == "1" || v == "true" || v == "yes"
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Catalog = CatalogConfig{
		Source:    strings.ToLower(opt("CATALOG_SOURCE", CatalogSourceFile)),
		Path:      opt("CATALOG_PATH", "data/shl_assessments.json"),
		BoostPath: opt("BOOST_CONFIG_PATH", "data/boost_categories.yaml"),
		TopK:      optInt("RECOMMEND_TOP_K", 10),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", ""),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: time.Duration(optInt("DB_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
		RunMigrations:  optBool("DB_RUN_MIGRATIONS"),
		RunSeeders:     optBool("DB_RUN_SEEDERS"),
	}

	cfg.Scraper = ScraperConfig{
		CatalogURL: opt("SCRAPER_CATALOG_URL", "https://www.shl.com/solutions/products/product-catalog/"),
		OutputPath: opt("SCRAPER_OUTPUT_PATH", cfg.Catalog.Path),
		NotifyURL:  opt("SCRAPER_NOTIFY_URL", ""),
		Workers:    optInt("SCRAPER_WORKERS", 4),
		Pages:      optInt("SCRAPER_PAGES", 1),
	}

	cfg.InternalToken = opt("INTERNAL_API_TOKEN", "")

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	switch cfg.Catalog.Source {
	case CatalogSourceFile:
	case CatalogSourcePostgres:
		if cfg.Database.DBHost == "" || cfg.Database.DBName == "" || cfg.Database.DBUser == "" {
			return Config{}, errors.New("CATALOG_SOURCE=postgres requires DB_HOST, DB_NAME and DB_USER")
		}
	default:
		return Config{}, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.Catalog.Source)
	}

	return cfg, nil
}
