/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for APKScope. Wraps logrus with level and format
selection, timestamped log files alongside console output, and retention of a
bounded number of old log files.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"` // empty disables file output
	MaxFiles  int       `json:"max_files"`
	Colors    bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid values
func (c *LoggerConfig) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	if c.OutputDir != "" && c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive when file output is enabled")
	}
	return nil
}

// Logger wraps a configured logrus.Logger plus its file handle
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
}

// NewLogger creates a logger. A nil config means info-level custom-format
// console logging with no log files.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:  LogLevelInfo,
			Format: LogFormatCustom,
			Colors: true,
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	l := &Logger{config: config, logger: logrus.New()}
	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// Logrus exposes the underlying logger for packages that take *logrus.Logger
func (l *Logger) Logrus() *logrus.Logger {
	return l.logger
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		return l.fileHandle.Close()
	}
	return nil
}

// WithFields returns an entry carrying structured fields
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.logger.WithFields(fields)
}

func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			ForceColors:     l.config.Colors,
			DisableColors:   !l.config.Colors,
		})
	case LogFormatCustom:
		l.logger.SetFormatter(&CustomFormatter{Timestamp: true, Colors: l.config.Colors})
	}

	return l.setupFileOutput()
}

// setupFileOutput tees log output into a timestamped file under OutputDir
func (l *Logger) setupFileOutput() error {
	if l.config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(l.config.OutputDir, fmt.Sprintf("apkscope_%s.log", timestamp))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(os.Stdout, file))

	if err := l.cleanupOldLogs(); err != nil {
		l.logger.WithError(err).Warn("failed to clean up old log files")
	}
	return nil
}

// cleanupOldLogs keeps at most MaxFiles log files, dropping the oldest
func (l *Logger) cleanupOldLogs() error {
	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, "apkscope_*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		statI, _ := os.Stat(files[i])
		statJ, _ := os.Stat(files[j])
		if statI == nil || statJ == nil {
			return files[i] < files[j]
		}
		return statI.ModTime().Before(statJ.ModTime())
	})

	for _, f := range files[:len(files)-l.config.MaxFiles] {
		os.Remove(f)
	}
	return nil
}
