package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robbyt/go-polycalc/engines/calc/lang"
)

const (
	envPath       = "ENV_PATH"
	envOverflow   = "POLYCALC_OVERFLOW"
	envLogLevel   = "POLYCALC_LOG_LEVEL"
	defaultDotEnv = ".env"
)

type config struct {
	overflow lang.OverflowPolicy
	logLevel slog.Level
}

// loadDotEnv loads variables from the file named by ENV_PATH, or from
// defaultPath. A missing file is not an error; variables already set in the
// environment are not overwritten.
func loadDotEnv(defaultPath string) error {
	path := os.Getenv(envPath)
	if path == "" {
		path = defaultPath
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// configFromEnv reads POLYCALC_OVERFLOW and POLYCALC_LOG_LEVEL through
// getenv. Unset variables keep their defaults: fail and error.
func configFromEnv(getenv func(string) string) (*config, error) {
	cfg := &config{
		overflow: lang.OverflowFail,
		logLevel: slog.LevelError,
	}

	var errz []error
	if v := getenv(envOverflow); v != "" {
		policy, err := lang.ParseOverflowPolicy(v)
		if err != nil {
			errz = append(errz, fmt.Errorf("%s: %w", envOverflow, err))
		} else {
			cfg.overflow = policy
		}
	}

	if v := getenv(envLogLevel); v != "" {
		level, err := parseLogLevel(v)
		if err != nil {
			errz = append(errz, fmt.Errorf("%s: %w", envLogLevel, err))
		} else {
			cfg.logLevel = level
		}
	}

	if err := errors.Join(errz...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
