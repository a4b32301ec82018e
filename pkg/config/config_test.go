package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv hides the given variables for the duration of the test, including
// anything a .env load sets during it, and restores prior values afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if val, ok := os.LookupEnv(key); ok {
			t.Setenv(key, val)
		}
		os.Unsetenv(key)
		key := key
		t.Cleanup(func() { os.Unsetenv(key) })
	}
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory afterwards (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}

func writeDotEnv(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	chdir(t, dir)
}

func TestLoad_ReadsDotEnvBeforeResolvingValues(t *testing.T) {
	clearEnv(t, "DB_DRIVER", "DATABASE_URL", "JWT_SECRET")
	writeDotEnv(t, "DB_DRIVER=sqlite\nDATABASE_URL=portfolio.db\nJWT_SECRET=secret-from-dotenv\n")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "portfolio.db", cfg.DBUrl)
	assert.Equal(t, "secret-from-dotenv", cfg.JWTSecret)
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	writeDotEnv(t, "PORT=9999\n")
	t.Setenv("PORT", "7777")

	cfg := Load()
	assert.Equal(t, "7777", cfg.Port)
}

func TestLoad_DefaultsWithoutDotEnv(t *testing.T) {
	clearEnv(t, "PORT", "DB_DRIVER", "JWT_SECRET", "UPLOAD_DIR")
	chdir(t, t.TempDir())

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "supersecretjwtkey", cfg.JWTSecret)
	assert.Equal(t, "./uploads", cfg.UploadDir)
}

func TestInitDB_UsesConfiguredDriver(t *testing.T) {
	clearEnv(t, "DB_DRIVER", "DATABASE_URL")
	writeDotEnv(t, "DB_DRIVER=sqlite\nDATABASE_URL=:memory:\n")

	cfg := Load()
	db, err := InitDB(cfg)
	assert.NoError(t, err)
	if db != nil {
		CloseDB(db)
	}
}

func TestInitDB_RejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(&Config{DBDriver: "oracle", DBUrl: "whatever"})
	assert.Error(t, err)

	_, err = InitDB(&Config{DBDriver: "postgres"})
	assert.Error(t, err)
}
