package main

import (
	"os"
	"path/filepath"

	"github.com/DataScienceMom/hue/pkg/conf"
)

// homeEnv names the environment variable pointing at the installation root.
const homeEnv = "LIVY_SERVER_HOME"

// resolveConfig loads the launcher config. An explicit --conf must exist;
// the default <root>/conf/livy.json is optional.
func resolveConfig() (conf.Config, error) {
	if confFlag != "" {
		return conf.Load(&conf.RealFileSystem{}, confFlag)
	}

	root := firstNonEmpty(rootFlag, os.Getenv(homeEnv), executableRoot())
	path := filepath.Join(root, "conf", "livy.json")
	if _, err := os.Stat(path); err != nil {
		return conf.Config{}, nil
	}
	return conf.Load(&conf.RealFileSystem{}, path)
}

// resolveRoot picks the installation root: flag, then config, then the
// environment, then the launcher's own location.
func resolveRoot(cfg conf.Config) string {
	return firstNonEmpty(rootFlag, cfg.Root, os.Getenv(homeEnv), executableRoot())
}

// executableRoot assumes the launcher is installed at <root>/bin/livy-server
// and returns <root>. Falls back to the working directory when the
// executable path cannot be determined.
func executableRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(filepath.Dir(exe))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
