// Package javacheck verifies that a java runtime suitable for the session
// server is available on PATH.
package javacheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/DataScienceMom/hue/pkg/check"
)

// versionRegex matches the quoted version in a java version banner,
// e.g. `openjdk version "11.0.2"` or `java version "1.8.0_292"`.
var versionRegex = regexp.MustCompile(`version "([0-9]+(?:\.[0-9]+){0,2})`)

// Check verifies that java exists and meets a minimum version.
type Check struct {
	MinVersion string  // minimum java version, e.g. "8" or "11.0.2"
	Runtime    Runtime // injected for testing
}

// Run executes the java runtime check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "java: runtime",
	}

	path, err := c.Runtime.JavaPath()
	if err != nil {
		return result.Failf("java not found in PATH: %v", err)
	}

	result.AddDetailf("path: %s", path)

	banner, err := c.Runtime.VersionOutput()
	if err != nil {
		return result.Failf("java -version failed: %v", err)
	}

	version, err := parseVersion(banner)
	if err != nil {
		return result.Failf("%v", err)
	}

	result.AddDetailf("version: %s", version)

	if c.MinVersion != "" {
		constraint, err := semver.NewConstraint(">= " + c.MinVersion)
		if err != nil {
			return result.Failf("invalid minimum version %q: %v", c.MinVersion, err)
		}
		if !constraint.Check(version) {
			return result.Failf("version %s below minimum %s", version, c.MinVersion)
		}
	}

	result.Status = check.StatusOK
	return result
}

// parseVersion extracts a comparable version from a java version banner.
// The legacy 1.x scheme (java 8 and older) is normalized, so "1.8.0_292"
// compares as 8.0.
func parseVersion(banner string) (*semver.Version, error) {
	matches := versionRegex.FindStringSubmatch(banner)
	if matches == nil {
		return nil, fmt.Errorf("could not parse version from output: %q", strings.TrimSpace(banner))
	}

	raw := matches[1]
	if rest, ok := strings.CutPrefix(raw, "1."); ok {
		raw = rest
	}

	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid java version %q: %v", raw, err)
	}
	return version, nil
}
