package installer

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Status is the outcome of an install.
type Status int

const (
	StatusInstalled Status = iota + 1
	StatusDeclined
	StatusNoWorkspace
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusDeclined:
		return "declined"
	case StatusNoWorkspace:
		return "no-workspace"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes what Install did.
type Result struct {
	Status  Status
	Package string
	Path    string // destination directory, empty for no-workspace
	Err     error  // set for StatusFailed
}

// Render reports r through n. Failures are also logged.
func Render(r Result, n Notifier, logger *log.Logger) {
	switch r.Status {
	case StatusInstalled:
		n.Info(fmt.Sprintf("Package %s installed.", r.Package))
	case StatusNoWorkspace:
		n.Info("Open a workspace folder before installing a package.")
	case StatusFailed:
		if logger != nil {
			logger.Error("install failed", "package", r.Package, "err", r.Err)
		}
		n.Error(fmt.Sprintf("Failed to install %s: %v", r.Package, r.Err))
	}
}
