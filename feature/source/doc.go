// Package source finds configuration key usages in a source tree.
//
// Matching is driven by a Catalogue: a flat, ordered list of literal prefixes
// such as cfg.get( or inputConfig[ with one compiled pattern per entry. It is
// not a grammar. Usages spelled differently are missed and matches inside
// comments or strings are accepted.
//
// To support a new access syntax, add an Entry to DefaultEntries.
package source
