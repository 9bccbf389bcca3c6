package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/config"
)

// setupLogging points logger at the configured file, rotating it when oversized
// Logs never go to stdout or stderr since the terminal is owned by the screen
// Returns nil file when logging is disabled
func setupLogging(logger *logrus.Logger, cfg config.LogConfig) (*os.File, error) {
	if !cfg.Enabled {
		logger.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}

	logPath := filepath.Join(cfg.Dir, cfg.File)
	maxSize := int64(cfg.MaxSizeMB) * 1024 * 1024
	if info, err := os.Stat(logPath); err == nil && maxSize > 0 && info.Size() > maxSize {
		ext := filepath.Ext(cfg.File)
		rotated := filepath.Join(cfg.Dir, fmt.Sprintf("%s_%s%s",
			strings.TrimSuffix(cfg.File, ext), time.Now().Format("20060102_150405"), ext))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "log level")
	}

	logger.SetOutput(f)
	logger.SetLevel(level)
	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return f, nil
}
