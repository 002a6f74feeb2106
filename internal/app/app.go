package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"fm-go/internal/config"
	"fm-go/internal/fm"

	"github.com/google/uuid"
)

// FMApp is the application layer between the CLI and the file manager.
// It builds the logger and FileManager from config, exposes operations that
// accept raw CLI input, and releases the log file on Close.
type FMApp struct {
	cfg     *config.Config
	fm      *fm.FileManager
	logger  *slog.Logger
	logFile *os.File
}

// NewFMApp creates a fully wired FMApp from the given config.
// command identifies the CLI command being run and tags every log line.
// The caller must call Close when done.
func NewFMApp(cfg *config.Config, command string) (*FMApp, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(cfg.LogDir, uuid.New().String(), level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger = logger.With("command", command)

	m := fm.NewFileManager(&slogAdapter{l: logger})
	if cfg.CurrentPath != "" {
		m.SetCurrentPath(cfg.CurrentPath)
	}

	return &FMApp{
		cfg:     cfg,
		fm:      m,
		logger:  logger,
		logFile: logFile,
	}, nil
}

// FileManager returns the wired FileManager.
func (a *FMApp) FileManager() *fm.FileManager {
	return a.fm
}

// FormatFileSize parses a decimal byte count and formats it.
func (a *FMApp) FormatFileSize(raw string) (string, error) {
	size, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parsing size %q: %w", raw, err)
	}
	return fm.FormatFileSize(size), nil
}

// ProcessContent reads all of r and applies operation to it.
func (a *FMApp) ProcessContent(r io.Reader, operation string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading content: %w", err)
	}
	a.logger.Debug("processing content", "operation", operation, "bytes", len(content))
	return fm.ProcessContent(string(content), operation), nil
}

// FormatCode reads all of r, trims it and re-indents brace blocks.
func (a *FMApp) FormatCode(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading content: %w", err)
	}
	a.logger.Debug("formatting content", "bytes", len(content))
	return fm.FormatCode(string(content)), nil
}

// Analyze reads all of r and summarizes it as the buffer at path.
// An empty path falls back to the current path.
func (a *FMApp) Analyze(r io.Reader, path string) (*fm.Analysis, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if path == "" {
		path = a.fm.CurrentPath()
	}
	a.logger.Debug("analyzing content", "path", path, "bytes", len(content))
	return fm.Analyze(string(content), path), nil
}

// Close releases the log file.
func (a *FMApp) Close() error {
	if a.logFile == nil {
		return nil
	}
	if err := a.logFile.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}
