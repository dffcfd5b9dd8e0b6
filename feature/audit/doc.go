// Package audit wires the extractors and the reconciler into one run.
//
// A run is a single linear pass with no retries: documentation scan, source
// scan, reconciliation, report. Problems met on the way (missing roots,
// unreadable files) are printed as
//
//	---------- [E] Not a directory: /home/user/src/meteoio
//
// and logged, and the run goes on with whatever data it has.
//
// # Outputs
//
//   - PrintReport: the two console sections (docs-only, source-only).
//   - WriteJSON: the complete report including per-key presence.
package audit
