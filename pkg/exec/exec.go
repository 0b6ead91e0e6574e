// Package exec provides process replacement for launching the session server.
package exec

import "fmt"

// Executor replaces the current process with a target program.
type Executor interface {
	// Exec replaces the current process image with the program at path,
	// passing argv and env through verbatim. On Unix this uses
	// syscall.Exec and does not return on success. On Windows it returns
	// an error.
	Exec(path string, argv []string, env []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// ReplaceError reports a process replacement that could not be completed:
// the target is missing, not executable, or the OS refused the exec.
type ReplaceError struct {
	Path string
	Err  error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("replacing process with %s: %v", e.Path, e.Err)
}

func (e *ReplaceError) Unwrap() error {
	return e.Err
}
