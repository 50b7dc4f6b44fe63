package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/dotpip/internal/messages"
)

// DefaultConfigNames lists the task file names searched for, in order of preference.
var DefaultConfigNames = []string{
	"install.conf.yaml",
	"install.conf.yml",
	"install.conf.json",
	"install.conf.toml",
}

// FindConfig returns the first default task file that exists in dir.
func FindConfig(dir string) (string, bool, error) {
	if dir == "" {
		return "", false, fmt.Errorf(messages.ConfigDirRequired)
	}
	for _, name := range DefaultConfigNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", false, err
		}
		if info.Mode().IsRegular() {
			return path, true, nil
		}
	}
	return "", false, nil
}
