package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SECRET_KEY", "DATABASE_URL", "PORT", "TASKFLOW_LOG_LEVEL", "TASKFLOW_OTEL_ENDPOINT", "TASKFLOW_ADMIN_PASSWORD", "TASKFLOW_ALLOW_DEV_SECRET"} {
		t.Setenv(k, "")
	}
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: "9090"
log:
  level: debug
db:
  driver: sqlite
  path: /tmp/x.db
auth:
  secret_key: s3cr3t
  token_ttl: 48h
admin:
  email: root@example.com
  password: rootpw
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected port/level: %+v", cfg)
	}
	if cfg.DB.SQLiteDSN() != "/tmp/x.db" {
		t.Fatalf("sqlite dsn = %q", cfg.DB.SQLiteDSN())
	}
	if cfg.Auth.SecretKey != "s3cr3t" || cfg.Auth.TokenTTL != 48*time.Hour {
		t.Fatalf("unexpected auth: %+v", cfg.Auth)
	}
	if cfg.Admin.Name != "Administrador" {
		t.Fatalf("expected default admin name, got %q", cfg.Admin.Name)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_DefaultTTLIsSevenDays(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "auth:\n  secret_key: k\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("token ttl = %s", cfg.Auth.TokenTTL)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Fatalf("driver = %q", cfg.DB.Driver)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/taskflow?sslmode=disable")
	t.Setenv("PORT", "5000")
	path := writeConfig(t, "auth:\n  secret_key: from-file\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.SecretKey != "from-env" {
		t.Fatalf("secret = %q", cfg.Auth.SecretKey)
	}
	if cfg.DB.Driver != DriverPostgres || !strings.HasPrefix(cfg.DB.DSN, "postgres://") {
		t.Fatalf("db = %+v", cfg.DB)
	}
	if cfg.Port != "5000" {
		t.Fatalf("port = %q", cfg.Port)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing secret", "db:\n  driver: sqlite\n", "secret_key"},
		{"unknown driver", "auth:\n  secret_key: k\ndb:\n  driver: oracle\n", "unsupported db.driver"},
		{"mysql without dsn", "auth:\n  secret_key: k\ndb:\n  driver: mysql\n", "db.dsn is required"},
		{"admin without password", "auth:\n  secret_key: k\nadmin:\n  email: a@b.c\n", "admin.password"},
		{"negative ttl", "auth:\n  secret_key: k\n  token_ttl: -1h\n", "token_ttl"},
		{"bcrypt cost too low", "auth:\n  secret_key: k\n  bcrypt_cost: 3\n", "bcrypt_cost"},
		{"bcrypt cost too high", "auth:\n  secret_key: k\n  bcrypt_cost: 32\n", "bcrypt_cost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad_DevSecretFallback(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "auth:\n  allow_dev_secret: true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.SecretKey != devSecretKey {
		t.Fatalf("secret = %q", cfg.Auth.SecretKey)
	}
}

func TestLoad_DevSecretFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKFLOW_ALLOW_DEV_SECRET", "true")
	cfg, err := Load(writeConfig(t, "port: \"8080\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.SecretKey != devSecretKey {
		t.Fatalf("secret = %q", cfg.Auth.SecretKey)
	}
}

func TestShippedConfigRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKFLOW_ADMIN_PASSWORD", "from-env")
	_, err := Load(filepath.Join("..", "..", "configs", "config.yml"))
	if err == nil || !strings.Contains(err.Error(), "secret_key") {
		t.Fatalf("expected missing secret error, got %v", err)
	}

	t.Setenv("SECRET_KEY", "from-env")
	cfg, err := Load(filepath.Join("..", "..", "configs", "config.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.AllowDevSecret || cfg.Admin.Password != "from-env" {
		t.Fatalf("auth=%+v admin password=%q", cfg.Auth, cfg.Admin.Password)
	}
}

func TestDevConfigLoads(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join("..", "..", "configs", "config.dev.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.SecretKey != devSecretKey || cfg.Admin.Password == "" {
		t.Fatalf("auth=%+v", cfg.Auth)
	}
}
