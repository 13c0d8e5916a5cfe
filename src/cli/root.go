package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dvm/src/config"
)

// NewRootCmd returns the root cobra command for the dvm CLI.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dvm",
		Short:         "Migrate Docker volumes between hosts via a transfer.sh-compatible service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// Subcommands
	cmd.AddCommand(newVersionCmd(stdout))
	cmd.AddCommand(newShowConfigCmd(stdout, stderr))
	cmd.AddCommand(newConfigCmd(stdin, stdout, stderr))
	cmd.AddCommand(newBackupCmd(stdout, stderr))
	cmd.AddCommand(newRestoreCmd(stdin, stdout, stderr))

	return cmd
}

// Execute runs the CLI with the process stdio.
func Execute() int {
	root := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadConfig resolves the persisted configuration, degrading to built-in
// defaults (with a warning on warn) when the file is unreadable.
func loadConfig(warn io.Writer) config.Config {
	defaults := config.BuiltinDefaults()
	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(warn, "Warning: %v; using built-in defaults\n", err)
		return config.Config{DockerRoot: defaults.DockerRoot, Endpoint: defaults.Endpoint}
	}
	return config.Load(path, defaults, warn)
}
