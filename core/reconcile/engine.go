package reconcile

import (
	"context"
	"fmt"
	"sort"

	"keyaudit/core/keys"
)

// Default side labels used in the console report.
const (
	DocsName   = "XMLs"
	SourceName = "source code"
)

// ReconcileAll loads the docs side, then the source side, and reconciles them.
func ReconcileAll(ctx context.Context, spec *Spec) (*Report, error) {
	docs, err := spec.Docs.LoadKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s keys: %w", spec.Docs.Name(), err)
	}

	source, err := spec.Source.LoadKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s keys: %w", spec.Source.Name(), err)
	}

	report := Reconcile(docs, source)
	report.DocsName = spec.Docs.Name()
	report.SourceName = spec.Source.Name()
	return report, nil
}

// Reconcile computes the two-way difference of the documentation and source
// key sets. The inputs are not modified.
func Reconcile(docs, source keys.Set) *Report {
	unionKeys := buildUnion(docs, source)

	results := make([]ReconcileResult, 0, len(unionKeys))
	for key := range unionKeys {
		results = append(results, ReconcileResult{
			ID:            key,
			DocsPresent:   docs.Has(key),
			SourcePresent: source.Has(key),
		})
	}

	// Sort results by key for deterministic output
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	docsOnly := docs.Difference(source).Sorted()
	sourceOnly := source.Difference(docs).Sorted()

	return &Report{
		DocsName:   DocsName,
		SourceName: SourceName,
		Results:    results,
		DocsOnly:   docsOnly,
		SourceOnly: sourceOnly,
		Summary: Summary{
			TotalKeys:  len(unionKeys),
			DocsKeys:   docs.Len(),
			SourceKeys: source.Len(),
			DocsOnly:   len(docsOnly),
			SourceOnly: len(sourceOnly),
		},
	}
}

// Dedupe collapses a list of canonical keys into a set.
// Calling it on values that are already unique is harmless.
func Dedupe(values []string) keys.Set {
	return keys.NewSet(values...)
}

// buildUnion creates a union of all keys from both sides.
func buildUnion(docs, source keys.Set) keys.Set {
	union := make(keys.Set, len(docs)+len(source))
	union.Merge(docs)
	union.Merge(source)
	return union
}
