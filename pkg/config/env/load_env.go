package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// It uses the ENV_PATH environment variable to determine the path to the .env file.
// A missing file is skipped; variables already set in the process win.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Skipping .env, file not found", "path", envPath)
			return nil
		}
		return fmt.Errorf("load env file %s: %w", envPath, err)
	}

	slog.Debug("Loaded .env", "path", envPath)
	return nil
}

func String(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// Int returns def when key is unset. A set but malformed value is an error.
func Int(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("env %s: invalid integer %q: %w", key, v, err)
	}
	return n, nil
}

func Int64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("env %s: invalid integer %q: %w", key, v, err)
	}
	return n, nil
}
