package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"dvm/src/dockercli"
	"dvm/src/privilege"
	"dvm/src/transfer"
	"dvm/src/workflow"
)

func newBackupCmd(stdout, stderr io.Writer) *cobra.Command {
	var volumes []string
	var allVolumes bool
	var dockerRoot, endpoint, name string
	var maxDays int
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Pack volumes and upload them to the transfer endpoint",
		Long: "Pack the named Docker volume directories into a tar archive and upload it.\n" +
			"On success the retrieval URL is printed on stdout so scripts can capture it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := privilege.EnsureRoot(); err != nil {
				return err
			}
			cfg := loadConfig(stderr)
			if dockerRoot == "" {
				dockerRoot = cfg.DockerRoot
			}
			if endpoint == "" {
				endpoint = cfg.Endpoint
			}
			opts := workflow.BackupOptions{
				Volumes:     volumes,
				AllVolumes:  allVolumes,
				DockerRoot:  dockerRoot,
				Endpoint:    endpoint,
				ArchiveName: name,
				MaxDays:     maxDays,
			}
			return workflow.RunBackup(opts, dockercli.New(), transfer.New(timeout), stdout, stderr)
		},
	}
	cmd.Flags().StringArrayVarP(&volumes, "volume", "v", nil, "Name of a Docker volume (repeatable)")
	cmd.Flags().BoolVarP(&allVolumes, "all-volumes", "a", false, "Back up all Docker volumes (names from 'docker volume ls')")
	cmd.Flags().StringVar(&dockerRoot, "docker-root", "", "Docker root directory (overrides configuration)")
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "transfer.sh-compatible endpoint (overrides configuration)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "File name for the archive on the endpoint (e.g. docker-volumes.tar)")
	cmd.Flags().IntVar(&maxDays, "max-days", 0, "Expiry in days, if the endpoint supports it")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP timeout per transfer (0 = unbounded)")
	return cmd
}
