package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"dvm/src/privilege"
	"dvm/src/restorer"
	"dvm/src/transfer"
	"dvm/src/workflow"
)

func newRestoreCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var dockerRoot string
	var replacements []string
	var force bool
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "restore URL",
		Short: "Download a volume archive and restore it",
		Long: "Download the tar archive from URL and unpack the volumes into the Docker\n" +
			"volumes directory, optionally renaming them with -r OLD=NEW rules.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := privilege.EnsureRoot(); err != nil {
				return err
			}
			// Malformed replacement specs fail before any network I/O.
			rules, err := restorer.ParseRules(replacements)
			if err != nil {
				return err
			}
			cfg := loadConfig(stderr)
			if dockerRoot == "" {
				dockerRoot = cfg.DockerRoot
			}
			opts := workflow.RestoreOptions{
				URL:        args[0],
				DockerRoot: dockerRoot,
				Rules:      rules,
				Force:      force,
			}
			return workflow.RunRestore(opts, transfer.New(timeout), stdin, stderr)
		},
	}
	cmd.Flags().StringVar(&dockerRoot, "docker-root", "", "Docker root directory (overrides configuration)")
	cmd.Flags().StringArrayVarP(&replacements, "replace", "r", nil, "Rename rule for volume names, e.g. 'old=new' (repeatable)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing volume directories without asking")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP timeout per transfer (0 = unbounded)")
	return cmd
}
