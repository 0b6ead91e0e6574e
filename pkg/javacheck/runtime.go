package javacheck

import (
	"bytes"
	"os/exec"
)

// Runtime locates the java binary and captures its version banner.
type Runtime interface {
	JavaPath() (string, error)
	VersionOutput() (string, error)
}

// RealRuntime shells out to the java on PATH.
type RealRuntime struct{}

// JavaPath searches PATH for the java executable.
func (r *RealRuntime) JavaPath() (string, error) {
	return exec.LookPath("java")
}

// VersionOutput runs `java -version` and returns the banner. java prints it
// to stderr; stdout is the fallback for runtimes that do not.
func (r *RealRuntime) VersionOutput() (string, error) {
	cmd := exec.Command("java", "-version")
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	if errBuf.Len() > 0 {
		return errBuf.String(), nil
	}
	return outBuf.String(), nil
}

// MockRuntime is a test double for Runtime.
type MockRuntime struct {
	JavaPathFunc      func() (string, error)
	VersionOutputFunc func() (string, error)
}

// JavaPath calls the mock function.
func (m *MockRuntime) JavaPath() (string, error) {
	return m.JavaPathFunc()
}

// VersionOutput calls the mock function.
func (m *MockRuntime) VersionOutput() (string, error) {
	return m.VersionOutputFunc()
}
