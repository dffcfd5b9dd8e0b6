package keys

import (
	"sort"
	"strings"
)

// NamespaceSeparator separates a section or namespace prefix from the key name.
const NamespaceSeparator = ":"

// Normalize returns the canonical form of a raw key token.
// The text up to and including the last NamespaceSeparator is discarded and
// the rest is uppercased. No trimming is performed.
func Normalize(raw string) string {
	if idx := strings.LastIndex(raw, NamespaceSeparator); idx >= 0 {
		raw = raw[idx+len(NamespaceSeparator):]
	}
	return strings.ToUpper(raw)
}

// Set is a collection of unique canonical keys.
type Set map[string]struct{}

// NewSet creates a set holding the given keys as-is.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// NewIgnoreSet builds an ignore set from configured raw keys.
// Entries are normalized so that matching is case-insensitive against the
// canonical form. Empty entries are dropped.
func NewIgnoreSet(raw []string) Set {
	s := make(Set, len(raw))
	for _, r := range raw {
		key := Normalize(strings.TrimSpace(r))
		if key == "" {
			continue
		}
		s[key] = struct{}{}
	}
	return s
}

// Add inserts a key.
func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether key is present. A nil set holds nothing.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int {
	return len(s)
}

// Merge adds every key of other into s and returns s.
func (s Set) Merge(other Set) Set {
	for key := range other {
		s[key] = struct{}{}
	}
	return s
}

// Subtract removes every key of other from s and returns s.
func (s Set) Subtract(other Set) Set {
	for key := range other {
		delete(s, key)
	}
	return s
}

// Difference returns a new set holding the keys of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for key := range s {
		if !other.Has(key) {
			out[key] = struct{}{}
		}
	}
	return out
}

// Clone returns a copy of s.
func (s Set) Clone() Set {
	return make(Set, len(s)).Merge(s)
}

// Sorted returns the keys in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for key := range s {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
