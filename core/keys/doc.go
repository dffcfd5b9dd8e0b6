// Package keys defines the canonical identity of a configuration key and the
// set types used by both extractors.
//
// # Canonical Form
//
// A raw token captured from documentation or source code is reduced to its
// canonical form by Normalize: everything up to and including the last
// namespace separator (':') is dropped and the remainder is uppercased.
//
//	keys.Normalize("Input::time_zone") // "TIME_ZONE"
//	keys.Normalize("meteopath")        // "METEOPATH"
//
// # Sets
//
// Set is an unordered collection of canonical keys. Presence is the only
// signal; adding a key twice is a no-op. Sorted returns a deterministic view
// for reporting.
package keys
