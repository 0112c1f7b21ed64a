package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"calendar": map[string]any{
			"baseUrl":         "",
			"refreshInterval": "1m",
		},
		"database": map[string]any{
			"sqlitePath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CALENDAR_BASEURL", want: "calendar.baseUrl"},
		{envKey: "CALENDAR_REFRESH_INTERVAL", want: "calendar.refresh.interval"},
		{envKey: "DATABASE_SQLITEPATH", want: "database.sqlitePath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Calendar.TokenLength != 32 || cfg.Calendar.Name != "Work Hours" || cfg.Calendar.Description != "Your logged work hours" {
		t.Fatalf("calendar defaults not applied: %+v", cfg.Calendar)
	}
	if cfg.Report == nil {
		t.Fatalf("Report should default to an empty section")
	}
	if cfg.Worker.Port != 8081 {
		t.Fatalf("Worker.Port = %d, want 8081", cfg.Worker.Port)
	}
	if cfg.Database.SlowQueryThreshold != 200*time.Millisecond {
		t.Fatalf("Database.SlowQueryThreshold = %s, want 200ms", cfg.Database.SlowQueryThreshold)
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	if cfg.Location().String() != "UTC" {
		t.Fatalf("empty timezone should be UTC")
	}

	cfg.Env.Timezone = "Not/AZone"
	if cfg.Location().String() != "UTC" {
		t.Fatalf("unknown timezone should fall back to UTC")
	}
}
