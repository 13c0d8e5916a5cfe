// Package archive wraps the system tar binary to bundle and unpack volume
// directory trees with extended attributes, ACLs, and numeric ownership
// preserved. The archive's top-level entries are exactly the volume names,
// so extraction with -C <volumesDir> reproduces the original layout.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// attribute preservation flags; numeric owner so ownership round-trips
// across hosts with different user databases.
var tarFlags = []string{"--xattrs", "--acls", "--numeric-owner"}

// MissingVolumesError reports volume directories absent under BaseDir,
// in the order they were supplied.
type MissingVolumesError struct {
	BaseDir string
	Names   []string
}

func (e *MissingVolumesError) Error() string {
	return fmt.Sprintf("missing volume directories under %s: %s",
		e.BaseDir, strings.Join(e.Names, ", "))
}

// ToolError reports a tar invocation that exited non-zero, with the
// captured stderr.
type ToolError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("tar %s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

// runTar executes the tar binary and captures stderr. Tests swap it out via
// SetRunTarForTest.
var runTar = func(args ...string) (string, error) {
	cmd := exec.Command("tar", args...)
	var stderrBuf bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderrBuf
	err := cmd.Run()
	return stderrBuf.String(), err
}

// SetRunTarForTest replaces the tar exec hook and returns a restore function.
func SetRunTarForTest(fn func(args ...string) (string, error)) func() {
	prev := runTar
	runTar = fn
	return func() { runTar = prev }
}

// Create produces archivePath containing names sourced from baseDir. It
// fails fast, before any archiving work, when baseDir or any named
// directory is missing; the error lists exactly the missing names in the
// order supplied.
func Create(archivePath, baseDir string, names []string, logOut io.Writer) error {
	if err := requireDir(baseDir); err != nil {
		return err
	}
	var missing []string
	for _, name := range names {
		if fi, err := os.Stat(filepath.Join(baseDir, name)); err != nil || !fi.IsDir() {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingVolumesError{BaseDir: baseDir, Names: missing}
	}

	args := append(append([]string{}, tarFlags...), "-C", baseDir, "-cpf", archivePath)
	args = append(args, names...)
	if logOut != nil {
		fmt.Fprintf(logOut, "Creating tar archive: tar %s\n", strings.Join(args, " "))
	}
	if stderr, err := runTar(args...); err != nil {
		return &ToolError{Args: args, Stderr: stderr, Err: err}
	}
	return nil
}

// Extract unpacks archivePath into destDir, preserving the same attributes
// Create wrote. destDir must exist. Files already written before a failure
// remain on disk; the caller's scratch-directory discipline bounds that.
func Extract(archivePath, destDir string, logOut io.Writer) error {
	if err := requireDir(destDir); err != nil {
		return err
	}

	args := append(append([]string{}, tarFlags...), "-C", destDir, "-xpf", archivePath)
	if logOut != nil {
		fmt.Fprintf(logOut, "Extracting tar archive: tar %s\n", strings.Join(args, " "))
	}
	if stderr, err := runTar(args...); err != nil {
		return &ToolError{Args: args, Stderr: stderr, Err: err}
	}
	return nil
}

func requireDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("directory does not exist: %s", dir)
	}
	return nil
}
