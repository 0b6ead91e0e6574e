//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates process replacement is not available on Windows.
var ErrExecNotSupported = errors.New("process replacement not supported on Windows")

// Exec is not supported on Windows.
// Windows does not have a true exec syscall that replaces the current process.
func (e *RealExecutor) Exec(path string, argv []string, env []string) error {
	return &ReplaceError{Path: path, Err: ErrExecNotSupported}
}
