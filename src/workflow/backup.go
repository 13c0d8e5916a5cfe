// Package workflow sequences the backup pipeline (validate, pack, upload)
// and the restore pipeline (download, extract, place). Each run owns a
// scratch workspace that is released on every exit path.
package workflow

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dvm/src/archive"
	"dvm/src/dockercli"
	"dvm/src/transfer"
)

// DefaultArchiveName is the archive file name used locally and, unless
// overridden, on the transfer endpoint.
const DefaultArchiveName = "docker-volumes.tar"

// BackupOptions parameterizes one backup run. DockerRoot and Endpoint are
// already resolved (flag over config file over default) by the caller.
type BackupOptions struct {
	Volumes     []string
	AllVolumes  bool
	DockerRoot  string
	Endpoint    string
	ArchiveName string // name on the endpoint; defaults to DefaultArchiveName
	MaxDays     int
}

// RunBackup packs the selected volumes and uploads the archive. The
// retrieval URL is written to stdout (alone, capturable); all status goes
// to stderr. Any step's failure aborts the remaining steps.
func RunBackup(opts BackupOptions, docker dockercli.Client, xfer *transfer.Client, stdout, stderr io.Writer) error {
	volumesDir := filepath.Join(opts.DockerRoot, "volumes")

	names := opts.Volumes
	if opts.AllVolumes {
		discovered, err := docker.ListVolumes()
		if err != nil {
			return fmt.Errorf("list docker volumes: %w", err)
		}
		if len(discovered) == 0 {
			return errors.New("no docker volumes found")
		}
		names = discovered
	}
	if len(names) == 0 {
		return errors.New("no volumes given; use --volume or --all-volumes")
	}

	fmt.Fprintf(stderr, "Backing up volumes: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(stderr, "Using volumes directory: %s\n", volumesDir)
	fmt.Fprintf(stderr, "Endpoint: %s\n", opts.Endpoint)

	ws, err := AcquireWorkspace()
	if err != nil {
		return err
	}
	defer ws.Release()

	tarPath := ws.Path(DefaultArchiveName)
	if err := archive.Create(tarPath, volumesDir, names, stderr); err != nil {
		return err
	}

	archiveName := opts.ArchiveName
	if archiveName == "" {
		archiveName = DefaultArchiveName
	}
	url, err := xfer.Upload(tarPath, opts.Endpoint, archiveName, opts.MaxDays, stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "\nDONE\nUse the following link on the target system for 'restore':\n")
	fmt.Fprintln(stdout, url)
	return nil
}
