package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pradipta/paystream/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our custom logger that supports multiple outputs
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger: logger,
	}

	// Setup file output if path is provided
	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.file = file
	al.filePath = filePath
	al.SetOutput(file)

	return nil
}

// Close closes the log file if one is open
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}
