package reconcile

import (
	"context"

	"keyaudit/core/keys"
)

// Loader produces the key set of one side of the reconciliation.
// Implementations decide where the keys come from (local XML tree, bucket,
// source roots) and how non-fatal problems are reported; an error returned
// here aborts the reconciliation.
type Loader interface {
	// Name returns the side's label used in reports (e.g., "XMLs", "source code").
	Name() string

	// LoadKeys returns the canonical keys of this side.
	LoadKeys(ctx context.Context) (keys.Set, error)
}

// StaticLoader serves a fixed key set.
type StaticLoader struct {
	Label string
	Keys  keys.Set
}

// Name returns the label.
func (l StaticLoader) Name() string {
	return l.Label
}

// LoadKeys returns a copy of the fixed set.
func (l StaticLoader) LoadKeys(ctx context.Context) (keys.Set, error) {
	return l.Keys.Clone(), nil
}
