package workflow

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dvm/src/archive"
	"dvm/src/restorer"
	"dvm/src/safety"
	"dvm/src/transfer"
)

// RestoreOptions parameterizes one restore run.
type RestoreOptions struct {
	URL        string
	DockerRoot string
	Rules      []restorer.Rule
	Force      bool
}

// RunRestore downloads the archive and unpacks the volumes. Without rules
// the archive is extracted straight into the volumes directory; with rules
// it is extracted into scratch space and each top-level entry placed under
// its resolved name, prompting (via confirmIn) before overwriting existing
// directories unless opts.Force is set. A declined entry is skipped; any
// download or extract failure aborts.
func RunRestore(opts RestoreOptions, xfer *transfer.Client, confirmIn io.Reader, stderr io.Writer) error {
	volumesDir := filepath.Join(opts.DockerRoot, "volumes")
	if err := requireDir(volumesDir); err != nil {
		return err
	}

	ws, err := AcquireWorkspace()
	if err != nil {
		return err
	}
	defer ws.Release()

	tarPath := ws.Path(DefaultArchiveName)
	if err := xfer.Download(opts.URL, tarPath, stderr); err != nil {
		return err
	}

	if len(opts.Rules) == 0 {
		if err := archive.Extract(tarPath, volumesDir, stderr); err != nil {
			return err
		}
	} else {
		extractDir, err := ws.Mkdir("extract")
		if err != nil {
			return err
		}
		if err := archive.Extract(tarPath, extractDir, stderr); err != nil {
			return err
		}
		safeOpts := safety.Options{Force: opts.Force}
		if err := restorer.Place(extractDir, volumesDir, opts.Rules, safeOpts, confirmIn, stderr); err != nil {
			return err
		}
	}

	fmt.Fprintf(stderr, "\nDONE\nVolumes restored under %s.\n"+
		"Restart Docker and start the containers with the matching volume names.\n", volumesDir)
	return nil
}

func requireDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("volumes directory does not exist: %s", dir)
	}
	return nil
}
