package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "runstrong"
  user: "runstrong"
  password: "secret"
auth:
  api_key: "test-key"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("server = %s:%d, want 127.0.0.1:8080", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Database.Name != "runstrong" {
		t.Errorf("database.name = %q, want runstrong", cfg.Database.Name)
	}
	if cfg.Auth.APIKey != "test-key" {
		t.Errorf("auth.api_key = %q, want test-key", cfg.Auth.APIKey)
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale should default to disabled")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(writeTemp(t, "server: [not a map")); err == nil {
		t.Fatal("want error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RUNSTRONG_SERVER_PORT", "9090")
	t.Setenv("RUNSTRONG_DB_PASSWORD", "from-env")
	t.Setenv("RUNSTRONG_AUTH_API_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Database.Password != "from-env" {
		t.Errorf("database.password = %q, want from-env", cfg.Database.Password)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want env-key", cfg.Auth.APIKey)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"missing server port",
			strings.Replace(validYAML, "port: 8080", "port: 0", 1),
			"server.port",
		},
		{
			"missing database host",
			strings.Replace(validYAML, `host: "localhost"`, `host: ""`, 1),
			"database.host",
		},
		{
			"missing api key",
			strings.Replace(validYAML, `api_key: "test-key"`, `api_key: ""`, 1),
			"auth.api_key",
		},
		{
			"tailscale enabled without hostname",
			validYAML + "tailscale:\n  enabled: true\n",
			"tailscale.hostname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.yaml))
			if err == nil {
				t.Fatal("want validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db.internal", Port: 5432, Name: "runstrong", User: "app", Password: "pw"}

	got := d.DSN()
	want := "postgres://app:pw@db.internal:5432/runstrong?sslmode=disable"
	if got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	d.SSLMode = "require"
	if got := d.DSN(); !strings.HasSuffix(got, "sslmode=require") {
		t.Errorf("DSN() = %q, want sslmode=require", got)
	}
}
