package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DataScienceMom/hue/pkg/envfile"
	"github.com/DataScienceMom/hue/pkg/exec"
	"github.com/DataScienceMom/hue/pkg/launch"
	"github.com/DataScienceMom/hue/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

// executor is swapped for a recording fake in tests.
var executor exec.Executor = &exec.RealExecutor{}

var (
	rootFlag    string
	confFlag    string
	envFileFlag string
	dryRun      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "livy-server [process|yarn]",
	Short:   "Start the Livy session server with process or yarn workers",
	Long:    "livy-server replaces the current process with the bundled Livy session server,\nforwarding the environment and the chosen session kind (default: process).",
	Args:    cobra.ArbitraryArgs,
	RunE:    runLaunch,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "installation root (default: $LIVY_SERVER_HOME or the launcher's parent directory)")
	rootCmd.PersistentFlags().StringVar(&confFlag, "conf", "", "launcher config file (default: <root>/conf/livy.json if present)")
	rootCmd.Flags().StringVar(&envFileFlag, "env-file", "", "env file overlaid onto the forwarded environment")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved invocation without replacing the process")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	root := resolveRoot(cfg)

	kind := launch.SessionKind(args)
	if len(args) == 0 && cfg.SessionKind != "" {
		kind = cfg.SessionKind
	}

	env := os.Environ()
	envFile := envFileFlag
	if envFile == "" {
		envFile = cfg.EnvFile
	}
	if envFile != "" {
		env, err = envfile.Overlay(env, envFile)
		if err != nil {
			return err
		}
	}

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", launch.ServerPath(root), kind)
		return nil
	}

	l := &launch.Launcher{
		Root:     root,
		Env:      env,
		Executor: executor,
		Logf:     output.Infof,
	}
	return l.Launch(kind)
}
