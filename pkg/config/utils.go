package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultEnvFile = ".env"

// FindEnvFile returns the path of name (".env" when empty) in the working
// directory or its nearest ancestor holding one, so the server, the CLI and
// package tests nested under webapi/ all pick up the same file.
func FindEnvFile(name string) (string, error) {
	if name == "" {
		name = defaultEnvFile
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		_, err := os.Stat(candidate)
		switch {
		case err == nil:
			return candidate, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fs.ErrNotExist
		}
		dir = parent
	}
}
