package reconcile

// ReconcileResult represents the reconciliation output for a single key.
type ReconcileResult struct {
	// ID is the canonical key.
	ID string `json:"id"`

	// DocsPresent indicates whether the documentation declares the key.
	DocsPresent bool `json:"docs_present"`

	// SourcePresent indicates whether the source code uses the key.
	SourcePresent bool `json:"source_present"`
}

// Spec bundles the two sides of a reconciliation.
type Spec struct {
	// Docs loads the documented keys.
	Docs Loader

	// Source loads the keys used in source code.
	Source Loader
}

// Report is the outcome of a reconciliation.
type Report struct {
	// DocsName labels the documentation side.
	DocsName string `json:"docs_name"`

	// SourceName labels the source side.
	SourceName string `json:"source_name"`

	// Results contains one entry per key of the union, sorted by ID.
	Results []ReconcileResult `json:"results"`

	// DocsOnly lists keys documented but never used, sorted.
	DocsOnly []string `json:"docs_only"`

	// SourceOnly lists keys used but never documented, sorted.
	SourceOnly []string `json:"source_only"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a report.
type Summary struct {
	// TotalKeys is the size of the union of both sides.
	TotalKeys int `json:"total_keys"`

	// DocsKeys is the number of documented keys.
	DocsKeys int `json:"docs_keys"`

	// SourceKeys is the number of keys used in source code.
	SourceKeys int `json:"source_keys"`

	// DocsOnly counts keys missing in source code.
	DocsOnly int `json:"docs_only"`

	// SourceOnly counts keys missing in documentation.
	SourceOnly int `json:"source_only"`
}

// Clean reports whether both sides agree.
func (r *Report) Clean() bool {
	return len(r.DocsOnly) == 0 && len(r.SourceOnly) == 0
}
