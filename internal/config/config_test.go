package config

import (
	"strings"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "assessment-recommender")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")

	// keep assertions hermetic against the host environment
	for _, key := range []string{
		"CATALOG_SOURCE", "CATALOG_PATH", "BOOST_CONFIG_PATH", "RECOMMEND_TOP_K",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_SSL_MODE",
		"SCRAPER_WORKERS", "SCRAPER_OUTPUT_PATH", "SCRAPER_NOTIFY_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadReportsMissingRequiredEnv(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing env")
	}
	for _, key := range []string{"APP_NAME", "APP_ENV"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q does not name %s", err, key)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Source != CatalogSourceFile {
		t.Fatalf("catalog source = %q, want file", cfg.Catalog.Source)
	}
	if cfg.Catalog.Path != "data/shl_assessments.json" || cfg.Catalog.TopK != 10 {
		t.Fatalf("catalog defaults wrong: %+v", cfg.Catalog)
	}
	if cfg.Database.DBSSLMode != "disable" || cfg.Database.DBPort != "5432" {
		t.Fatalf("database defaults wrong: %+v", cfg.Database)
	}
	if cfg.Scraper.Workers != 4 || cfg.Scraper.OutputPath != cfg.Catalog.Path {
		t.Fatalf("scraper defaults wrong: %+v", cfg.Scraper)
	}
}

func TestLoadValidatesCatalogSource(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("CATALOG_SOURCE", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown catalog source")
	}

	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_HOST", "")
	if _, err := Load(); err == nil {
		t.Fatalf("postgres source without DB settings must fail")
	}

	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "assessments")
	t.Setenv("DB_USER", "app")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Source != CatalogSourcePostgres {
		t.Fatalf("source = %q, want postgres", cfg.Catalog.Source)
	}
}

func TestLoadClampsTopK(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("RECOMMEND_TOP_K", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.TopK != 10 {
		t.Fatalf("bad top-k should fall back to 10, got %d", cfg.Catalog.TopK)
	}

	t.Setenv("RECOMMEND_TOP_K", "5")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.TopK != 5 {
		t.Fatalf("top-k = %d, want 5", cfg.Catalog.TopK)
	}
}
