package config

import (
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		LogLevel:             "info",
		Environment:          EnvProduction,
		NodeID:               3,
		CustomerSwitchPolicy: "preserve",
		CORSAllowedOrigins:   "https://counter.example.com",
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = " * " }, "CORS_ALLOWED_ORIGINS"},
		{"node id out of range", func(c *Config) { c.NodeID = 1024 }, "NODE_ID"},
		{"non-production skips checks", func(c *Config) {
			c.Environment = EnvDevelopment
			c.LogLevel = "debug"
			c.CORSAllowedOrigins = "*"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForProduction_ReportsAllProblems(t *testing.T) {
	cfg := productionConfig()
	cfg.LogLevel = "debug"
	cfg.CORSAllowedOrigins = "*"

	err := ValidateForProduction(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"LOG_LEVEL", "CORS_ALLOWED_ORIGINS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %s", err, want)
		}
	}
}
