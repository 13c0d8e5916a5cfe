package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dvm/src/config"
)

func newShowConfigCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			cfg := config.Load(path, config.BuiltinDefaults(), stderr)

			fmt.Fprintf(stdout, "Config file: %s\n", path)
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintln(stdout, "Status: file found")
			} else {
				fmt.Fprintln(stdout, "Status: file does not exist yet (defaults in use)")
			}
			fmt.Fprintln(stdout)
			fmt.Fprintf(stdout, "Docker root : %s\n", cfg.DockerRoot)
			fmt.Fprintf(stdout, "Endpoint    : %s\n", cfg.Endpoint)
			return nil
		},
	}
}

func newConfigCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Interactively set the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			current := config.Load(path, config.BuiltinDefaults(), stderr)

			fmt.Fprintf(stdout, "dvm configuration wizard\nFile: %s\nExisting values are used as defaults.\n\n", path)

			reader := bufio.NewReader(stdin)
			dockerRoot, err := prompt(reader, stdout, "Docker root directory (contains 'volumes/')", current.DockerRoot)
			if err != nil {
				return err
			}
			endpoint, err := prompt(reader, stdout, "transfer.sh endpoint", current.Endpoint)
			if err != nil {
				return err
			}

			cfg := config.Config{DockerRoot: dockerRoot, Endpoint: endpoint}
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(stdout, "\nConfiguration saved.\n")
			fmt.Fprintf(stdout, "Docker root : %s\n", cfg.DockerRoot)
			fmt.Fprintf(stdout, "Endpoint    : %s\n", cfg.Endpoint)
			fmt.Fprintf(stdout, "\nFile written to: %s\n", path)
			return nil
		},
	}
}

// prompt reads one line; empty input keeps the default.
func prompt(in *bufio.Reader, out io.Writer, label, def string) (string, error) {
	fmt.Fprintf(out, "%s [%s]: ", label, def)
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}
