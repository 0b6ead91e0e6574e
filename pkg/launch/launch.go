// Package launch resolves and performs the session server exec.
package launch

import (
	"path/filepath"
	"strings"

	"github.com/DataScienceMom/hue/pkg/exec"
)

// DefaultKind is the session kind used when no argument is given.
const DefaultKind = "process"

// SessionKind picks the session kind from positional arguments. Only the
// first argument is consumed; extras are ignored. The kind is not validated
// here: the server rejects kinds it does not know.
func SessionKind(args []string) string {
	if len(args) == 0 {
		return DefaultKind
	}
	return strings.ToLower(args[0])
}

// ServerPath returns the session server binary path under an install root.
func ServerPath(root string) string {
	return filepath.Join(root, "java", "bin", "livy-server")
}

// Launcher performs the environment-forwarding exec into the session server.
type Launcher struct {
	Root     string   // installation root
	Env      []string // environment snapshot forwarded to the server
	Executor exec.Executor
	Logf     func(format string, args ...interface{}) // invocation trace; nil disables
}

// Launch replaces the current process with the session server running the
// given kind. On success it does not return; it returns an error only when
// the replacement fails.
func (l *Launcher) Launch(kind string) error {
	path := ServerPath(l.Root)
	argv := []string{path, kind}

	if l.Logf != nil {
		l.Logf("executing %s (%v) (%v)", path, argv, l.Env)
	}

	return l.Executor.Exec(path, argv, l.Env)
}
