// Package reconcile compares the configuration keys declared in documentation
// with the keys used in source code.
//
// # Architecture
//
// 1. Loader: produces the key set of one side. The audit feature provides
// loaders for XML trees, buckets and source roots; StaticLoader serves a fixed
// set.
//
// 2. Engine: builds the union of both sets, records per-key presence and
// computes the symmetric difference:
//
//	docsOnly   = docs − source
//	sourceOnly = source − docs
//
// Both lists are sorted so reports are stable and diffable.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Docs: docsLoader, Source: sourceLoader}
//	report, err := reconcile.ReconcileAll(ctx, spec)
//
//	// Or with sets already in hand
//	report := reconcile.Reconcile(docKeys, sourceKeys)
package reconcile
