package util

import (
	"errors"

	"golang.org/x/term"
)

var ErrNotATerminal = errors.New("not attached to a terminal")

// Terminal abstracts the terminal queries needed to size usage output
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal uses golang.org/x/term
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the column count of the terminal attached to fd.
func TerminalWidth(fd int, t Terminal) (int, error) {
	if t == nil {
		t = DefaultTerminal{}
	}
	if !t.IsTerminal(fd) {
		return 0, ErrNotATerminal
	}
	w, _, err := t.GetSize(fd)
	if err != nil {
		return 0, err
	}

	return w, nil
}
