// Package detector inspects the terminal standard output is attached to.
package detector

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Terminal implements ports.Terminal for a file descriptor.
type Terminal struct {
	fd         int
	lookupEnv  func(string) (string, bool)
	isTerminal func(int) bool
	getSize    func(int) (int, int, error)
}

// New returns a Terminal for standard output.
func New() *Terminal {
	return &Terminal{
		fd:         int(os.Stdout.Fd()), //nolint:gosec // file descriptors fit in int
		lookupEnv:  os.LookupEnv,
		isTerminal: term.IsTerminal,
		getSize:    term.GetSize,
	}
}

// Width returns the terminal width in cells.
// A positive COLUMNS value wins over the detected size. Zero means the
// output is not a terminal and the width is unknown.
func (t *Terminal) Width() int {
	if v, ok := t.lookupEnv("COLUMNS"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}

	if !t.isTerminal(t.fd) {
		return 0
	}

	w, _, err := t.getSize(t.fd)
	if err != nil || w < 0 {
		return 0
	}
	return w
}
