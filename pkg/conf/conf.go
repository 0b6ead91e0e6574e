// Package conf reads the optional launcher config file.
package conf

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Config holds launcher settings from a JSON config file, typically
// <root>/conf/livy.json. All fields are optional; empty means unset.
type Config struct {
	SessionKind string // default session kind when no argument is given
	Root        string // installation root override
	EnvFile     string // .env file overlaid onto the environment before exec
}

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// Load reads and parses a launcher config file. Missing keys stay empty;
// an unreadable file or invalid JSON is an error.
func Load(fs FileSystem, path string) (Config, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	body := string(content)
	if !gjson.Valid(body) {
		return Config{}, fmt.Errorf("config %s: invalid JSON", path)
	}

	return Config{
		SessionKind: strings.ToLower(gjson.Get(body, "session_kind").String()),
		Root:        gjson.Get(body, "root").String(),
		EnvFile:     gjson.Get(body, "env_file").String(),
	}, nil
}
