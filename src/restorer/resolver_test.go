package restorer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dvm/src/restorer"
	"dvm/src/safety"
)

func TestParseRules(t *testing.T) {
	rules, err := restorer.ParseRules([]string{"old=new", "a=b=c", "gone="})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []restorer.Rule{{"old", "new"}, {"a", "b=c"}, {"gone", ""}}
	if len(rules) != len(want) {
		t.Fatalf("got %v want %v", rules, want)
	}
	for i := range want {
		if rules[i] != want[i] {
			t.Fatalf("rule %d: got %v want %v", i, rules[i], want[i])
		}
	}
}

func TestParseRules_Invalid(t *testing.T) {
	if _, err := restorer.ParseRules([]string{"noequals"}); err == nil {
		t.Fatal("expected error for spec without '='")
	}
	if _, err := restorer.ParseRules([]string{"=new"}); err == nil {
		t.Fatal("expected error for empty left side")
	}
}

func TestApply_SequentialNotSimultaneous(t *testing.T) {
	rules := []restorer.Rule{{"old", "new"}, {"new", "final"}}
	if got := restorer.Apply("old", rules); got != "final" {
		t.Fatalf("sequential application: got %q want %q", got, "final")
	}
}

func TestApply_LiteralSubstring(t *testing.T) {
	rules := []restorer.Rule{{"prod", "staging"}}
	if got := restorer.Apply("prod_db_prod", rules); got != "staging_db_staging" {
		t.Fatalf("got %q", got)
	}
}

func TestPlace_MovesAndRenames(t *testing.T) {
	extract, dest := t.TempDir(), t.TempDir()
	mustMkdir(t, filepath.Join(extract, "web_prod"))
	mustWriteFile(t, filepath.Join(extract, "web_prod", "data"), "payload")
	mustWriteFile(t, filepath.Join(extract, "stray-file"), "ignored") // non-dir at top level

	var out bytes.Buffer
	err := restorer.Place(extract, dest, []restorer.Rule{{"prod", "staging"}},
		safety.Options{}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dest, "web_staging", "data"))
	if err != nil {
		t.Fatalf("moved tree missing: %v", err)
	}
	if string(b) != "payload" {
		t.Fatalf("payload: %q", b)
	}
	if _, err := os.Stat(filepath.Join(dest, "stray-file")); err == nil {
		t.Fatal("non-directory entries must not be placed")
	}
}

func TestPlace_CollisionDeclinedSkipsEntry(t *testing.T) {
	extract, dest := t.TempDir(), t.TempDir()
	mustMkdir(t, filepath.Join(extract, "volA"))
	mustMkdir(t, filepath.Join(extract, "volB"))
	mustMkdir(t, filepath.Join(dest, "volB"))
	mustWriteFile(t, filepath.Join(dest, "volB", "keep"), "existing")

	var out bytes.Buffer
	err := restorer.Place(extract, dest, nil, safety.Options{}, strings.NewReader("n\n"), &out)
	if err != nil {
		t.Fatalf("a declined entry must not fail the operation: %v", err)
	}

	// volA still placed, volB untouched.
	if _, err := os.Stat(filepath.Join(dest, "volA")); err != nil {
		t.Fatalf("volA not placed: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dest, "volB", "keep"))
	if err != nil || string(b) != "existing" {
		t.Fatalf("existing volB must be untouched: %v %q", err, b)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("collision warning missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "Skipping volume") {
		t.Fatalf("skip notice missing: %q", out.String())
	}
}

func TestPlace_ForceOverwritesWithoutPrompting(t *testing.T) {
	extract, dest := t.TempDir(), t.TempDir()
	mustMkdir(t, filepath.Join(extract, "volB"))
	mustWriteFile(t, filepath.Join(extract, "volB", "data"), "restored")
	mustMkdir(t, filepath.Join(dest, "volB"))
	mustWriteFile(t, filepath.Join(dest, "volB", "keep"), "existing")

	var out bytes.Buffer
	// Empty reader: any prompt would fail to read a confirmation.
	err := restorer.Place(extract, dest, nil, safety.Options{Force: true}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "volB", "keep")); err == nil {
		t.Fatal("existing tree must be replaced, not merged")
	}
	b, err := os.ReadFile(filepath.Join(dest, "volB", "data"))
	if err != nil || string(b) != "restored" {
		t.Fatalf("restored tree missing: %v %q", err, b)
	}
	if strings.Contains(out.String(), "[y/N]") {
		t.Fatalf("force must not prompt: %q", out.String())
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir -p %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
