package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	origHome := os.Getenv("HOME")
	t.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", origHome)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if cfg.Model != "" {
		t.Errorf("expected no default model, got %q", cfg.Model)
	}
	if cfg.Runner != defaultRunner {
		t.Errorf("expected default runner %q, got %q", defaultRunner, cfg.Runner)
	}
	if cfg.Endpoint != defaultEndpoint {
		t.Errorf("expected default endpoint %q, got %q", defaultEndpoint, cfg.Endpoint)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv(envKeyModel, "llama3.1:latest")
	t.Setenv(envKeyEndpoint, "http://gateway:9000")

	origHome := os.Getenv("HOME")
	t.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", origHome)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if cfg.Model != "llama3.1:latest" {
		t.Errorf("expected model from env, got: %s", cfg.Model)
	}
	if cfg.Endpoint != "http://gateway:9000" {
		t.Errorf("expected endpoint from env, got: %s", cfg.Endpoint)
	}
}

func TestSetModel_Roundtrip(t *testing.T) {
	origHome := os.Getenv("HOME")
	t.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", origHome)

	if err := SetModel("mistral:7b"); err != nil {
		t.Fatalf("SetModel failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "mistral:7b" {
		t.Errorf("expected persisted model, got %q", cfg.Model)
	}
	// Untouched fields keep their defaults.
	if cfg.Runner != defaultRunner {
		t.Errorf("expected default runner, got %q", cfg.Runner)
	}
}

func TestSetRunner_PreservesModel(t *testing.T) {
	origHome := os.Getenv("HOME")
	t.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", origHome)

	if err := SetModel("llama3"); err != nil {
		t.Fatalf("SetModel failed: %v", err)
	}
	if err := SetRunner("ollama"); err != nil {
		t.Fatalf("SetRunner failed: %v", err)
	}

	cfg, _ := Load()
	if cfg.Model != "llama3" {
		t.Errorf("SetRunner should not clobber the model, got %q", cfg.Model)
	}
}

func TestLoad_NeverErrors(t *testing.T) {
	origHome := os.Getenv("HOME")
	t.Setenv("HOME", t.TempDir())
	defer os.Setenv("HOME", origHome)

	_, err := Load()
	if err != nil {
		t.Fatalf("Load should never error, got: %v", err)
	}
}
