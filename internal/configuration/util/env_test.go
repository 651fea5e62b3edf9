package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandEnvStrict_MissingEnv(t *testing.T) {
	s := "listen on ${MISSING_PORT}"
	_, err := ExpandEnvStrict(s)
	if err == nil {
		t.Fatal("expected error, got none")
	}
}

func TestExpandEnvStrict_Success(t *testing.T) {
	t.Setenv("NODE_PORT", "8000")

	got, err := ExpandEnvStrict("listen on ${NODE_PORT}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "listen on 8000"
	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestExpandEnvStrict_MultipleVars(t *testing.T) {
	t.Setenv("HOST", "localhost")
	t.Setenv("PORT", "8000")

	got, err := ExpandEnvStrict("${HOST}:${PORT}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "localhost:8000" {
		t.Errorf("got %q; want %q", got, "localhost:8000")
	}
}

func TestLoadAndExpandYaml_MissingFile(t *testing.T) {
	_, err := LoadAndExpandYaml(t.TempDir(), "application")
	if err == nil {
		t.Fatal("expected error, got none")
	}
}

func TestLoadAndExpandYaml_Success(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	dir := t.TempDir()
	path := filepath.Join(dir, "application.yml")
	if err := os.WriteFile(path, []byte("app:\n  log-level: ${LOG_LEVEL}\n"), 0777); err != nil {
		t.Fatalf("failed to write yaml %s: %v", path, err)
	}

	got, err := LoadAndExpandYaml(dir, "application")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "app:\n  log-level: debug\n"
	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
