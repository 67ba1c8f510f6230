package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSchedulerConfig(t *testing.T) {
	path := writeConfig(t, `
port: 8080
log:
  level: debug
  development: true
scheduler:
  round_robin:
    time_quantum: 4
`)
	config, err := LoadSchedulerConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Port != 8080 || config.LogLevel != "debug" || !config.LogDevelopment || config.RoundRobinTimeQuantum != 4 {
		t.Fatalf("unexpected config %+v", config)
	}
}

func TestLoadSchedulerConfigDefaults(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n")
	config, err := LoadSchedulerConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Port != defaultPort || config.RoundRobinTimeQuantum != defaultTimeQuantum || config.LogLevel != "warn" {
		t.Fatalf("unexpected config %+v", config)
	}
}

func TestLoadSchedulerConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "port: 8080\n")
	t.Setenv("SCHEDULER_PORT", "7000")
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")

	config, err := LoadSchedulerConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Port != 7000 || config.RoundRobinTimeQuantum != 5 {
		t.Fatalf("env did not override file: %+v", config)
	}
}

func TestLoadSchedulerConfigErrors(t *testing.T) {
	if _, err := LoadSchedulerConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for an explicit missing file")
	}
	if _, err := LoadSchedulerConfig(writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n")); err == nil {
		t.Error("expected error for zero quantum")
	}
	if _, err := LoadSchedulerConfig(writeConfig(t, "port: 70000\n")); err == nil {
		t.Error("expected error for out of range port")
	}
}

func TestLoadSchedulerConfigWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	config, err := LoadSchedulerConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Port != defaultPort {
		t.Fatalf("expected default port, got %d", config.Port)
	}
}
