package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/dispenser/parameter"
)

const (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog and the standard logger to a file under dir when debug is set
// Anything written to stdout or stderr would corrupt the terminal UI, so logs are
// discarded otherwise and the returned file is nil
func setupLogging(debug bool, dir string, level slog.Level) *os.File {
	if !debug {
		discardLogs()
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		discardLogs()
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	rotateLog(logPath)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		discardLogs()
		return nil
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file
}

func discardLogs() {
	// SetDefault repoints the standard logger, so silence it afterwards
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(logPath, rotated)
}
