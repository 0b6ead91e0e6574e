package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/DataScienceMom/hue/pkg/check"
	"github.com/DataScienceMom/hue/pkg/distcheck"
	"github.com/DataScienceMom/hue/pkg/installcheck"
	"github.com/DataScienceMom/hue/pkg/javacheck"
	"github.com/DataScienceMom/hue/pkg/launch"
	"github.com/DataScienceMom/hue/pkg/output"
)

// Checker is implemented by all check types.
type Checker interface {
	Run() check.Result
}

// ErrCheckFailed is returned when an installation check fails.
var ErrCheckFailed = errors.New("check failed")

var (
	checkMinJava string
	checkSHA256  string
	checkBLAKE3  string
	checkSumFile string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the session server installation without starting it",
	Args:  cobra.NoArgs,
	RunE:  runInstallChecks,
}

func init() {
	checkCmd.Flags().StringVar(&checkMinJava, "min-java", "8", "minimum java version required (empty disables the java check)")
	checkCmd.Flags().StringVar(&checkSHA256, "sha256", "", "expected sha256 of the server binary")
	checkCmd.Flags().StringVar(&checkBLAKE3, "blake3", "", "expected blake3 of the server binary")
	checkCmd.Flags().StringVar(&checkSumFile, "checksum-file", "", "checksum file listing the server binary (overrides --sha256/--blake3)")
	rootCmd.AddCommand(checkCmd)
}

func runInstallChecks(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	serverPath := launch.ServerPath(resolveRoot(cfg))

	checks := []Checker{
		&installcheck.Check{
			ServerPath: serverPath,
			Stater:     &installcheck.RealFileStater{},
		},
	}

	if checkMinJava != "" {
		checks = append(checks, &javacheck.Check{
			MinVersion: checkMinJava,
			Runtime:    &javacheck.RealRuntime{},
		})
	}

	if checkSHA256 != "" || checkBLAKE3 != "" || checkSumFile != "" {
		c := &distcheck.Check{
			File:         serverPath,
			ChecksumFile: checkSumFile,
			Opener:       &distcheck.RealFileOpener{},
		}
		if checkBLAKE3 != "" {
			c.ExpectedHash = checkBLAKE3
			c.Algorithm = distcheck.AlgorithmBLAKE3
		} else {
			c.ExpectedHash = checkSHA256
			c.Algorithm = distcheck.AlgorithmSHA256
		}
		checks = append(checks, c)
	}

	failed := false
	for _, c := range checks {
		result := c.Run()
		output.PrintResult(result)
		if !result.OK() {
			failed = true
		}
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}
