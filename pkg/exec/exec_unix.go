//go:build unix

package exec

import (
	"syscall"
)

// execFunc is swapped out in tests so they survive the call.
var execFunc = syscall.Exec

// Exec replaces the current process with the program at path.
// argv[0] must be the program path by convention; env is forwarded
// untouched. On success this call does not return.
func (e *RealExecutor) Exec(path string, argv []string, env []string) error {
	if err := execFunc(path, argv, env); err != nil {
		return &ReplaceError{Path: path, Err: err}
	}
	return nil
}
