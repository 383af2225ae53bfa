package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Errorf("Expected memory driver by default, got %s", cfg.Storage.Driver)
	}
	if cfg.Popularity.ViewWeight != 1.0 || cfg.Popularity.CommentWeight != 2.0 || cfg.Popularity.ShareWeight != 3.0 {
		t.Errorf("Unexpected default weights: %+v", cfg.Popularity)
	}
	if cfg.Seed.Skip {
		t.Error("Expected seeding enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_NAME", "newsdb")
	t.Setenv("SEED_SKIP", "true")
	t.Setenv("POPULARITY_VIEW_WEIGHT", "0.5")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Errorf("Expected postgres driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Storage.Database.Name != "newsdb" {
		t.Errorf("Expected database newsdb, got %s", cfg.Storage.Database.Name)
	}
	if !cfg.Seed.Skip {
		t.Error("Expected seeding skipped")
	}
	if cfg.Popularity.ViewWeight != 0.5 {
		t.Errorf("Expected view weight 0.5, got %f", cfg.Popularity.ViewWeight)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Expected 30s read timeout, got %s", cfg.Server.ReadTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "memory driver",
			mutate: func(c *Config) { c.Storage.Driver = DriverMemory },
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "redis" },
			wantErr: true,
		},
		{
			name: "postgres without host",
			mutate: func(c *Config) {
				c.Storage.Driver = DriverPostgres
				c.Storage.Database.Host = ""
			},
			wantErr: true,
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Popularity.ViewWeight = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "news", SSLMode: "disable",
	}
	want := "host=db port=5432 user=u password=p dbname=news sslmode=disable"
	if got := db.GetDSN(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
