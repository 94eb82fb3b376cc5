package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "STORE_BACKEND", "DATA_FILE", "EVENTS_FILE",
		"DB_PORT", "OPENAI_MODEL", "OPENAI_BASE_URL", "DOCS_DIR",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.StoreBackend != "file" {
		t.Errorf("StoreBackend = %q, want file", cfg.StoreBackend)
	}
	if cfg.DataFile != "data/tasks.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.DBPort != 5432 {
		t.Errorf("DBPort = %d, want 5432", cfg.DBPort)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Errorf("OpenAIBaseURL = %q", cfg.OpenAIBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "tasks")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "taskflow")

	cfg := Load()
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.StoreBackend != "postgres" {
		t.Errorf("StoreBackend = %q", cfg.StoreBackend)
	}

	want := "host=db.local port=5433 user=tasks password=secret dbname=taskflow sslmode=disable"
	if got := cfg.ConnString(); got != want {
		t.Errorf("ConnString() = %q, want %q", got, want)
	}
}
