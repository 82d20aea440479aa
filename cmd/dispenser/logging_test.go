package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false, t.TempDir(), slog.LevelDebug)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	// Verify log output is discarded
	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), logDir)

	logFile := setupLogging(true, dir, slog.LevelDebug)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()
	defer setupLogging(false, dir, slog.LevelDebug)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	logPath := filepath.Join(dir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Expected log file to be created")
	}

	log.Println("Test log message")
	slog.Debug("structured message", "key", "value")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	// Create a log file just over the limit
	data := make([]byte, maxLogSize+1)
	if err := os.WriteFile(logPath, data, 0o644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	logFile := setupLogging(true, dir, slog.LevelInfo)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()
	defer setupLogging(false, dir, slog.LevelInfo)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	dir := t.TempDir()
	logFile := setupLogging(true, dir, slog.LevelDebug)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()
	defer setupLogging(false, dir, slog.LevelDebug)

	output := log.Writer()
	if output == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if output == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}
