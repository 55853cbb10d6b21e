// Package prompt reads secrets from the controlling terminal.
package prompt

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"shardkit/internal/domain"
)

// Terminal prompts on stderr and reads without echo. Input is never logged.
type Terminal struct{}

// PromptHidden prints label and reads one line with echo disabled.
func (Terminal) PromptHidden(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	defer fmt.Fprintln(os.Stderr)

	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", errors.Wrap(err, "read hidden input")
	}
	return string(b), nil
}

var _ domain.Prompter = Terminal{}
