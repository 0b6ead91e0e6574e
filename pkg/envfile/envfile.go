// Package envfile overlays .env definitions onto an environment snapshot.
package envfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Overlay parses a .env file and applies its definitions on top of the given
// snapshot, returning a new slice. The process environment is never touched.
// Snapshot entries for keys redefined in the file are replaced; the redefined
// and new keys are appended in sorted order.
func Overlay(env []string, path string) ([]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	out := make([]string, 0, len(env)+len(vars))
	for _, entry := range env {
		key, _, _ := strings.Cut(entry, "=")
		if _, redefined := vars[key]; redefined {
			continue
		}
		out = append(out, entry)
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, key+"="+vars[key])
	}

	return out, nil
}
