// Package installcheck verifies the session server installation layout.
package installcheck

import (
	"fmt"
	"os"

	"github.com/DataScienceMom/hue/pkg/check"
)

// Check verifies that the session server binary is present and runnable.
type Check struct {
	ServerPath string     // resolved path to the server binary
	Stater     FileStater // injected for testing
}

// Run executes the installation check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("server: %s", c.ServerPath),
	}

	info, err := c.Stater.Stat(c.ServerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return result.Failf("server binary not found")
		}
		if os.IsPermission(err) {
			return result.Failf("permission denied")
		}
		return result.Failf("stat failed: %v", err)
	}

	if info.IsDir() {
		return result.Failf("path is a directory, not a binary")
	}

	if info.Mode()&0o111 == 0 {
		return result.Failf("not executable (mode %v)", info.Mode().Perm())
	}

	result.Status = check.StatusOK
	result.AddDetailf("mode: %v", info.Mode().Perm())
	result.AddDetailf("size: %d bytes", info.Size())
	return result
}
