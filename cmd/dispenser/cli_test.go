package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/dispenser/config"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func mustLoad(t *testing.T, path string) *config.Config {
	t.Helper()
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init refuses without --overwrite
	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse existing file")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "machine.pour_rate")
	requireContains(t, out, "DISPENSER_MACHINE_POUR_RATE")
	if strings.Contains(out, "defaults were used") {
		t.Fatalf("expected existing file to be reported, got %q", out)
	}
}

func TestConfigShowAppliesFlagsAndEnv(t *testing.T) {
	t.Setenv("DISPENSER_MACHINE_POUR_RATE", "12.5")
	missing := filepath.Join(t.TempDir(), "absent.toml")

	out, _, err := runCLI(t, "--config", missing, "--mute", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "12.5")

	rows := configRows(mustLoad(t, missing))
	for _, row := range rows {
		if row[0] == "display.mute" && row[1] != "false" {
			t.Fatalf("expected file/env mute false without flag, got %s", row[1])
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "display.mute") && !strings.Contains(line, "true") {
			t.Fatalf("expected --mute to show true, got %q", line)
		}
	}
}

func TestConfigShowRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[machine]\norbit_speed = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, "--config", path, "config", "show")
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "machine")
}

func TestRootRefusesNonTerminal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	_, _, err := runCLI(t, "--config", missing)
	if !errors.Is(err, errNotTerminal) {
		t.Fatalf("expected errNotTerminal, got %v", err)
	}
}

func TestRootFlavorFlag(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	_, _, err := runCLI(t, "--config", missing, "--flavor", "vanilla")
	if err == nil || errors.Is(err, errNotTerminal) {
		t.Fatalf("expected unknown flavor error, got %v", err)
	}
	requireContains(t, err.Error(), "vanilla")

	if _, _, err := runCLI(t, "--config", missing, "--flavor", "none"); err == nil || errors.Is(err, errNotTerminal) {
		t.Fatalf("expected none to be rejected, got %v", err)
	}

	// A known flavor passes parsing and stops at the terminal check
	_, _, err = runCLI(t, "--config", missing, "--flavor", " Chocolate ")
	if !errors.Is(err, errNotTerminal) {
		t.Fatalf("expected errNotTerminal, got %v", err)
	}
}
