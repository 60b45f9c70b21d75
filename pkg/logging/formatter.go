/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for APKScope. Structured console output with
level colors, key=value fields, and severity highlighting for security
findings.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter renders entries as "timestamp LEVEL message key=value ..."
type CustomFormatter struct {
	Timestamp bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[36m%s\033[0m ", timestamp)) // Cyan
		} else {
			output.WriteString(timestamp + " ")
		}
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		output.WriteString(fmt.Sprintf("\033[%dm%s\033[0m ", f.levelColor(entry.Level), level))
	} else {
		output.WriteString(level + " ")
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String()), nil
}

// levelColor returns the ANSI color code for a log level
func (f *CustomFormatter) levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return 31 // Red
	default:
		return 37
	}
}

// formatFields renders structured fields in stable key order
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := f.formatValue(key, fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, value))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}
	return strings.Join(parts, " ")
}

// formatValue renders one field value. Severity values keep their color-coded
// emphasis; long strings are truncated for terminal readability.
func (f *CustomFormatter) formatValue(key string, value interface{}) string {
	if key == "severity" {
		s := fmt.Sprintf("%v", value)
		if f.Colors {
			switch s {
			case "high":
				return fmt.Sprintf("\033[1;31m%s\033[0m", s)
			case "medium":
				return fmt.Sprintf("\033[1;33m%s\033[0m", s)
			case "low":
				return fmt.Sprintf("\033[1;36m%s\033[0m", s)
			}
		}
		return s
	}

	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if len(v) > 60 {
			return v[:60] + "..."
		}
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}
