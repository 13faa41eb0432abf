package config

import (
	"strings"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Database.Driver != "memory" {
		t.Errorf("driver = %q, want memory", cfg.Database.Driver)
	}
	if cfg.Storage.KeyPrefix != "invsearch:" {
		t.Errorf("key prefix = %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Search.DefaultPageSize != 20 || cfg.Search.MaxPageSize != 100 {
		t.Errorf("page sizes = %d/%d", cfg.Search.DefaultPageSize, cfg.Search.MaxPageSize)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var cfg Config
		cfg.HTTP.Port = 8080
		cfg.ApplyDefaults()
		return cfg
	}

	t.Run("memory driver needs no addrs", func(t *testing.T) {
		cfg := base()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("redis driver requires addrs", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "redis"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error")
		}
		cfg.Database.Addrs = []string{"localhost:6379"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown driver rejected", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "postgres"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("default page size capped by max", func(t *testing.T) {
		cfg := base()
		cfg.Search.DefaultPageSize = 500
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("INVSEARCH_TEST_PASSWORD", "s3cret")

	in := []byte("password: ${INVSEARCH_TEST_PASSWORD}\nprefix: ${MISSING_VAR:-invsearch:}\n")
	out := string(expandEnvVars(in))

	if !strings.Contains(out, "password: s3cret") {
		t.Errorf("env var not expanded: %q", out)
	}
	if !strings.Contains(out, "prefix: invsearch:") {
		t.Errorf("default not applied: %q", out)
	}
}
