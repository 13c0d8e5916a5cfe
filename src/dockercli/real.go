package dockercli

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CommandError reports a docker CLI invocation that exited non-zero. The
// captured stderr is included so the operator sees the daemon's diagnostic.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("docker %s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// runDocker executes the docker binary and captures both streams. Tests swap
// it out via SetRunDockerForTest.
var runDocker = func(args ...string) (string, string, error) {
	cmd := exec.Command("docker", args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err := cmd.Run()
	return stdoutBuf.String(), stderrBuf.String(), err
}

// SetRunDockerForTest replaces the docker exec hook and returns a restore
// function.
func SetRunDockerForTest(fn func(args ...string) (string, string, error)) func() {
	prev := runDocker
	runDocker = fn
	return func() { runDocker = prev }
}

type realClient struct{}

// New returns a Client backed by the local docker binary.
func New() Client { return realClient{} }

func (realClient) ListVolumes() ([]string, error) {
	args := []string{"volume", "ls", "--format", "{{.Name}}"}
	stdout, stderr, err := runDocker(args...)
	if err != nil {
		return nil, &CommandError{Args: args, Stderr: stderr, Err: err}
	}
	var names []string
	for _, line := range strings.Split(stdout, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
