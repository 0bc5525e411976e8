package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindEnvFile walks up from the working directory looking for filename.
// An empty filename means ".env".
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", filename, os.ErrNotExist)
		}
		dir = parent
	}
}

// loadEnvFile applies the first of names that exists. Variables already in
// the environment win. It returns the path applied, or "" when none exists.
func loadEnvFile(names ...string) (string, error) {
	for _, name := range names {
		path, err := FindEnvFile(name)
		if err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}
