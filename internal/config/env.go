package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by the server and CLI.
const (
	EnvSSHAddr = "BUGFEATURE_SSH_ADDR"
	EnvHostKey = "BUGFEATURE_HOST_KEY"
	EnvDBPath  = "BUGFEATURE_DB"
)

// LoadEnv loads variables from the given .env files (default ".env") into the
// process environment. Missing files are not an error; variables already set
// in the environment win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
