// Package issue describes non-fatal problems met while scanning.
// Every issue is a terminal "skip this unit of work" decision; the run goes on.
package issue

import "fmt"

// Kind classifies an issue.
type Kind string

const (
	// KindConfig means the documentation root is unset or unusable.
	KindConfig Kind = "config"
	// KindTraversal means a configured source root is not a directory.
	KindTraversal Kind = "traversal"
	// KindAccess means a file could not be opened or read.
	KindAccess Kind = "access"
)

// Issue is a skipped unit of work.
type Issue struct {
	Kind Kind
	Path string
	Err  error
}

// Message returns the human readable text printed after the error prefix.
func (i Issue) Message() string {
	switch i.Kind {
	case KindConfig:
		if i.Path == "" {
			return "No path specified"
		}
		return fmt.Sprintf("Not a directory: %s", i.Path)
	case KindTraversal:
		return fmt.Sprintf("Not a directory: %s", i.Path)
	case KindAccess:
		return fmt.Sprintf("Can not open file for reading: %s", i.Path)
	default:
		return fmt.Sprintf("%s: %s", i.Kind, i.Path)
	}
}

// Error implements error so an issue can be logged with zap.Error.
func (i Issue) Error() string {
	if i.Err != nil {
		return i.Message() + ": " + i.Err.Error()
	}
	return i.Message()
}

// Unwrap returns the underlying cause.
func (i Issue) Unwrap() error {
	return i.Err
}
