package installer

import "context"

// Workspace supplies the install root.
type Workspace interface {
	// Root returns the first open workspace folder, or false if none is open.
	Root() (string, bool)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// Progress shows an indicator while fn runs.
type Progress interface {
	Run(ctx context.Context, title string, fn func(ctx context.Context) error) error
}

// Notifier displays messages to the user.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

type noProgress struct{}

func (noProgress) Run(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
