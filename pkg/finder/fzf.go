package finder

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fzf exit codes. 130 covers both Esc and the ctrl-c copy binding,
// which aborts after running the clipboard command.
const (
	fzfExitNoMatch = 1
	fzfExitError   = 2
	fzfExitAborted = 130
)

// ErrMatcherNotFound means the fzf binary is not installed.
var ErrMatcherNotFound = errors.New("fzf not found (install with: brew install fzf)")

// FzfMatcher runs fzf over the formatted resource lines. Enter accepts
// the highlighted line; ctrl-c copies the line's URL field to the
// clipboard and leaves.
type FzfMatcher struct {
	binary string
}

// NewFzfMatcher returns a matcher backed by the fzf binary on PATH.
func NewFzfMatcher() *FzfMatcher {
	return &FzfMatcher{binary: "fzf"}
}

// Available reports whether the fzf binary can be found.
func (m *FzfMatcher) Available() bool {
	_, err := exec.LookPath(m.binary)
	return err == nil
}

// Present feeds lines to fzf and maps its exit status to an Outcome.
func (m *FzfMatcher) Present(lines []string, opts Options) (string, Outcome, error) {
	if _, err := exec.LookPath(m.binary); err != nil {
		return "", OutcomeCancelled, ErrMatcherNotFound
	}

	args := []string{
		"--height=80%",
		"--layout=default",
		"--border",
		"--margin=2,4",
		"--padding=1",
		"--info=inline",
		"--delimiter=|",
		"--with-nth=1,2,3",
		"--preview-window=down:6:wrap:border",
		"--preview=echo 'Name: {1}\nService: {2}\nEnvironment: {3}\nConsole: {4}\n\nEnter opens the console, Ctrl-C copies the URL'",
		"--ansi",
	}
	if opts.Header != "" {
		args = append(args, "--header="+opts.Header)
	}
	if opts.Prompt != "" {
		args = append(args, "--prompt="+opts.Prompt)
	}
	if copyCmd, err := clipboardCommandLine("{4}"); err == nil {
		args = append(args, "--bind=ctrl-c:execute-silent("+copyCmd+")+abort")
	}

	cmd := exec.Command(m.binary, args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	selected := strings.TrimSpace(stdout.String())

	if err == nil {
		if selected == "" {
			return "", OutcomeCancelled, nil
		}
		return selected, OutcomeSelected, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case fzfExitAborted:
			return "", OutcomeCopied, nil
		case fzfExitNoMatch:
			return "", OutcomeCancelled, nil
		}
	}
	return "", OutcomeCancelled, fmt.Errorf("error running fzf: %w", err)
}

var _ Matcher = (*FzfMatcher)(nil)
