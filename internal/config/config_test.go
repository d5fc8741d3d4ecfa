// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"

	"ceremony/internal/eventdata"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("EVENT_API_URL", "")
	t.Setenv("VALKEY_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.EventAPIURL != eventdata.DefaultBaseURL {
		t.Errorf("EventAPIURL = %q", cfg.EventAPIURL)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.CacheEnabled() {
		t.Error("caching should be disabled without a Valkey host")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("EVENT_API_URL", "https://api.example.com")
	t.Setenv("VALKEY_HOST", "cache.internal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.IsDev() {
		t.Error("production env reported as development")
	}
	if cfg.EventAPIURL != "https://api.example.com" {
		t.Errorf("EventAPIURL = %q", cfg.EventAPIURL)
	}
	if !cfg.CacheEnabled() {
		t.Error("caching should be enabled with a Valkey host")
	}
}
