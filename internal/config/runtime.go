package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves the runtime directory before any config struct is
// parsed, since the .env file itself lives there.
func GetRuntimePath() string {
	path := os.Getenv("TARICTL_RUNTIME_PATH")
	if path == "" {
		path = ".tarictl"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
