package docs

import (
	"strings"

	"keyaudit/core/keys"
)

// Placeholder marks a partial key that borrows the running key of the file.
const Placeholder = "@"

// Resolver holds the running key of one documentation file.
type Resolver struct {
	last string
}

// NewResolver creates a resolver with no running key.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Reset forgets the running key. Call it at every file boundary.
func (r *Resolver) Reset() {
	r.last = ""
}

// Resolve turns a raw declaration into a canonical key.
//
// A raw value holding the placeholder has every placeholder replaced by the
// running key before normalization; the running key is returned as shortcut
// with hasShortcut set. Any other value becomes the new running key.
// Substitution happens on the raw value so that "@:SUB" still counts as a
// shortcut use even though its namespace part is stripped afterwards.
func (r *Resolver) Resolve(raw string) (key string, shortcut string, hasShortcut bool) {
	if strings.Contains(raw, Placeholder) {
		shortcut = r.last
		return keys.Normalize(strings.ReplaceAll(raw, Placeholder, r.last)), shortcut, true
	}

	key = keys.Normalize(raw)
	r.last = key
	return key, "", false
}
