// Package output prints check results and launch traces with colored status.
package output

import (
	"fmt"

	"github.com/jwalton/go-supportscolor"

	"github.com/DataScienceMom/hue/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
		for _, d := range r.Details {
			fmt.Printf("     %s\n", d)
		}
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
		for _, d := range r.Details {
			fmt.Printf("       %s\n", d)
		}
	}
}

// Infof prints an informational trace line, dimmed when colors are available.
func Infof(format string, args ...interface{}) {
	fmt.Printf("%s[INFO]%s %s\n", dim, reset, fmt.Sprintf(format, args...))
}
