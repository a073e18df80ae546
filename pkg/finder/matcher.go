// Package finder wraps the external pieces of a search: the interactive
// fuzzy matcher process, the OS URL launcher and the OS clipboard. The
// Matcher interface keeps the query pipeline testable without spawning
// anything.
package finder

// Outcome classifies how an interactive matcher session ended.
type Outcome int

const (
	// OutcomeSelected means the user accepted a line.
	OutcomeSelected Outcome = iota
	// OutcomeCopied means the user triggered the copy-to-clipboard
	// action, which also ends the session. Not an error.
	OutcomeCopied
	// OutcomeCancelled means the user left without selecting anything.
	OutcomeCancelled
)

// Options adjust the matcher presentation for a session.
type Options struct {
	Header string
	Prompt string
}

// Matcher presents lines interactively and reports what the user chose.
type Matcher interface {
	Present(lines []string, opts Options) (string, Outcome, error)
}
