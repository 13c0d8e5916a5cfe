package cli

import (
	"bytes"
	"strings"
	"testing"

	"dvm/src/version"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	stdout, _, err := runCmd(t, "", "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, sub := range []string{"backup", "restore", "config", "show-config", "version"} {
		if !strings.Contains(stdout, sub) {
			t.Fatalf("help output missing %q:\n%s", sub, stdout)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := runCmd(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(stdout) != version.Version {
		t.Fatalf("got %q want %q", stdout, version.Version)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	if _, _, err := runCmd(t, "", "frobnicate"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
