// Package ui implements the host collaborators of the package browser on a
// terminal: notifications, yes/no prompts, a progress line and the workspace
// folder list.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Terminal writes notifications to out/errOut and reads answers from in.
type Terminal struct {
	in        *bufio.Scanner
	out       io.Writer
	errOut    io.Writer
	view      string
	assumeYes bool

	mu sync.Mutex
}

// NewTerminal creates a Terminal. view names the scope shown on progress
// lines. With assumeYes every confirmation is answered yes without reading in.
func NewTerminal(in io.Reader, out, errOut io.Writer, view string, assumeYes bool) *Terminal {
	return &Terminal{
		in:        bufio.NewScanner(in),
		out:       out,
		errOut:    errOut,
		view:      view,
		assumeYes: assumeYes,
	}
}

// Info prints an informational message.
func (t *Terminal) Info(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, msg)
}

// Error prints an error message.
func (t *Terminal) Error(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.errOut, "\u2717 "+msg)
}

// Confirm asks a Yes/No question. Only "y" or "yes" counts as yes; an empty
// answer or end of input is no.
func (t *Terminal) Confirm(question string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "? %s (y/N) ", question)
	if t.assumeYes {
		fmt.Fprintln(t.out, "y")
		return true, nil
	}

	if !t.in.Scan() {
		fmt.Fprintln(t.out)
		if err := t.in.Err(); err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		return false, nil
	}
	answer := strings.TrimSpace(strings.ToLower(t.in.Text()))
	return answer == "y" || answer == "yes", nil
}

// Run prints a progress line scoped to the view while fn runs.
func (t *Terminal) Run(ctx context.Context, title string, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	fmt.Fprintf(t.errOut, "[%s] %s...\n", t.view, title)
	t.mu.Unlock()

	err := fn(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		fmt.Fprintf(t.errOut, "[%s] %s failed\n", t.view, title)
	} else {
		fmt.Fprintf(t.errOut, "[%s] %s done\n", t.view, title)
	}
	return err
}

// Folders is the list of open workspace folders.
type Folders []string

// Root returns the first folder.
func (f Folders) Root() (string, bool) {
	for _, dir := range f {
		if dir != "" {
			return dir, true
		}
	}
	return "", false
}
