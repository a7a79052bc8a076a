package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindProjectRoot walks up from the working directory to the directory
// holding go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads .env from the project root, falling back to the working
// directory for packaged builds that ship without go.mod. Variables already
// present in the environment are kept.
func LoadEnv() error {
	root, err := FindProjectRoot()
	if err != nil {
		root, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	envPath := filepath.Join(root, ".env")
	if !FileExists(envPath) {
		return os.ErrNotExist
	}
	return godotenv.Load(envPath)
}
