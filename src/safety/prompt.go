package safety

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options carries the flags that control interactive confirmation.
type Options struct {
	// Yes answers every prompt with "yes" without asking.
	Yes bool
	// Force overwrites existing data without asking; it implies Yes for
	// overwrite prompts.
	Force bool
}

// Confirm prompts the user to confirm a potentially destructive action.
// - If opts.Force or opts.Yes is true, it returns true without prompting.
// The default answer is "no"; only "y"/"yes" confirm.
// The caller decides what to do with the result.
func Confirm(opts Options, in io.Reader, out io.Writer, question string) (bool, error) {
	if opts.Force || opts.Yes {
		return true, nil
	}
	if out != nil {
		fmt.Fprintf(out, "%s [y/N]: ", strings.TrimSpace(question))
	}
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	ans := strings.TrimSpace(strings.ToLower(line))
	return ans == "y" || ans == "yes", nil
}
