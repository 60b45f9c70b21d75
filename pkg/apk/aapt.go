/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: aapt.go
Description: AaptRunner for APKScope. Invokes the external aapt binary to dump
the manifest xmltree and badging text for an APK and captures stdout. All
subprocess concerns (binary discovery, timeout, cancellation) live here, kept
out of the parsing and analysis logic.
*/

package apk

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDumpTimeout bounds a single aapt invocation
const DefaultDumpTimeout = 30 * time.Second

// AaptRunner shells out to aapt for manifest dumps
type AaptRunner struct {
	AaptPath string        // aapt executable, resolved via PATH when bare
	Timeout  time.Duration // per-invocation timeout
	logger   *logrus.Logger
}

// NewAaptRunner creates a runner. An empty path falls back to "aapt" on PATH.
func NewAaptRunner(aaptPath string, logger *logrus.Logger) *AaptRunner {
	if aaptPath == "" {
		aaptPath = "aapt"
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &AaptRunner{AaptPath: aaptPath, Timeout: DefaultDumpTimeout, logger: logger}
}

// Check verifies the aapt binary is invokable
func (r *AaptRunner) Check() error {
	if err := exec.Command(r.AaptPath, "version").Run(); err != nil {
		return fmt.Errorf("aapt not available at %q: %w", r.AaptPath, err)
	}
	return nil
}

// DumpXMLTree returns the flattened AndroidManifest.xml dump for the APK
func (r *AaptRunner) DumpXMLTree(ctx context.Context, apkPath string) (string, error) {
	return r.dump(ctx, apkPath, "xmltree", apkPath, "AndroidManifest.xml")
}

// DumpBadging returns the badging summary for the APK
func (r *AaptRunner) DumpBadging(ctx context.Context, apkPath string) (string, error) {
	return r.dump(ctx, apkPath, "badging", apkPath)
}

func (r *AaptRunner) dump(ctx context.Context, apkPath string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, r.AaptPath, append([]string{"dump"}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("aapt dump %s failed for %s: %w", args[0], apkPath, err)
	}

	r.logger.WithFields(logrus.Fields{
		"apk":      apkPath,
		"dump":     args[0],
		"bytes":    len(output),
		"duration": time.Since(start),
	}).Debug("aapt dump captured")

	return string(output), nil
}
