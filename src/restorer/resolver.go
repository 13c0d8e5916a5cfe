// Package restorer renames and places extracted volume directories into the
// live volumes directory, resolving collisions per entry.
package restorer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dvm/src/safety"
)

// Rule is an ordered literal find/replace pair applied to a restored volume
// name. Old must be non-empty.
type Rule struct {
	Old string
	New string
}

// ParseRules parses "-r OLD=NEW" specs in order. The first '=' splits the
// pair; a spec without '=' or with an empty left side is a validation error.
func ParseRules(specs []string) ([]Rule, error) {
	var rules []Rule
	for _, spec := range specs {
		old, repl, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --replace argument %q, expected form 'OLD=NEW'", spec)
		}
		if old == "" {
			return nil, fmt.Errorf("invalid --replace argument %q, left side must not be empty", spec)
		}
		rules = append(rules, Rule{Old: old, New: repl})
	}
	return rules, nil
}

// Apply runs every rule in order against name, each rule a literal substring
// replacement whose output feeds the next.
func Apply(name string, rules []Rule) string {
	for _, r := range rules {
		name = strings.ReplaceAll(name, r.Old, r.New)
	}
	return name
}

// Place moves each top-level directory entry of extractDir into destDir
// under its rule-resolved name. Non-directory entries are skipped. When the
// destination already exists the user is asked before overwriting (default
// no) unless opts.Force is set; a declined entry is skipped and the
// remaining entries still proceed.
func Place(extractDir, destDir string, rules []Rule, opts safety.Options, in io.Reader, out io.Writer) error {
	entries, err := os.ReadDir(extractDir)
	if err != nil {
		return fmt.Errorf("read extracted entries: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		finalName := Apply(name, rules)
		src := filepath.Join(extractDir, name)
		dst := filepath.Join(destDir, finalName)

		if _, err := os.Lstat(dst); err == nil {
			fmt.Fprintf(out, "Warning: target volume directory already exists: %s\n", dst)
			ok, err := safety.Confirm(opts, in, out, "Overwrite?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(out, "Skipping volume %q.\n", name)
				continue
			}
			fmt.Fprintf(out, "Overwriting existing volume directory %q.\n", dst)
			if err := os.RemoveAll(dst); err != nil {
				return fmt.Errorf("remove existing %s: %w", dst, err)
			}
		}

		fmt.Fprintf(out, "Volume directory %q -> %q\n", name, finalName)
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("move %s to %s: %w", src, dst, err)
		}
	}
	return nil
}
