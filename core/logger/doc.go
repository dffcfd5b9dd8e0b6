// Package logger provides a structured logging facility based on Zap.
//
// The console report of an audit is written to stdout; everything logged here
// goes to stderr, so the report can be piped or diffed on its own.
//
// # Run Correlation
//
// Every audit run gets a random run ID. WithRunID attaches it to the logger so
// all entries of one run can be correlated when several audits share a log.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Audit started")
package logger
