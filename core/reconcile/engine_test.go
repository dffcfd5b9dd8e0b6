package reconcile

import (
	"context"
	"fmt"
	"testing"

	"keyaudit/core/keys"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLoader is a simple test loader
type mockLoader struct {
	name  string
	keys  keys.Set
	err   error
	calls int
}

func (m *mockLoader) Name() string {
	return m.name
}

func (m *mockLoader) LoadKeys(ctx context.Context) (keys.Set, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.keys, nil
}

// TestReconcile_SetAlgebra tests that both differences match the set definitions.
func TestReconcile_SetAlgebra(t *testing.T) {
	docs := keys.NewSet("A", "B", "C")
	source := keys.NewSet("B", "C", "D", "E")

	report := Reconcile(docs, source)

	assert.Equal(t, []string{"A"}, report.DocsOnly)
	assert.Equal(t, []string{"D", "E"}, report.SourceOnly)
	assert.Equal(t, Summary{TotalKeys: 5, DocsKeys: 3, SourceKeys: 4, DocsOnly: 1, SourceOnly: 2}, report.Summary)
	assert.False(t, report.Clean())

	// Inputs are left untouched
	assert.Equal(t, 3, docs.Len())
	assert.Equal(t, 4, source.Len())
}

// TestReconcile_Results tests per-key presence flags and ordering.
func TestReconcile_Results(t *testing.T) {
	report := Reconcile(keys.NewSet("B", "A"), keys.NewSet("C", "B"))

	assert.Equal(t, []ReconcileResult{
		{ID: "A", DocsPresent: true, SourcePresent: false},
		{ID: "B", DocsPresent: true, SourcePresent: true},
		{ID: "C", DocsPresent: false, SourcePresent: true},
	}, report.Results)
	assert.Equal(t, DocsName, report.DocsName)
	assert.Equal(t, SourceName, report.SourceName)
}

func TestReconcile_Identical(t *testing.T) {
	set := keys.NewSet("A", "B")

	report := Reconcile(set, set)

	assert.Empty(t, report.DocsOnly)
	assert.Empty(t, report.SourceOnly)
	assert.NotNil(t, report.DocsOnly)
	assert.True(t, report.Clean())
}

func TestReconcile_Empty(t *testing.T) {
	report := Reconcile(nil, keys.NewSet("X"))

	assert.Empty(t, report.DocsOnly)
	assert.Equal(t, []string{"X"}, report.SourceOnly)
	assert.Equal(t, 1, report.Summary.TotalKeys)
}

func TestDedupe(t *testing.T) {
	once := Dedupe([]string{"A", "A", "B", "A"})
	assert.Equal(t, []string{"A", "B"}, once.Sorted())

	twice := Dedupe(once.Sorted())
	assert.Equal(t, once, twice)
}

func TestReconcileAll(t *testing.T) {
	docs := &mockLoader{name: "XMLs", keys: keys.NewSet("TIME_ZONE", "METEOPATH")}
	source := &mockLoader{name: "source code", keys: keys.NewSet("TIME_ZONE", "STATION1")}

	report, err := ReconcileAll(context.Background(), &Spec{Docs: docs, Source: source})
	require.NoError(t, err)

	assert.Equal(t, []string{"METEOPATH"}, report.DocsOnly)
	assert.Equal(t, []string{"STATION1"}, report.SourceOnly)
	assert.Equal(t, 1, docs.calls)
	assert.Equal(t, 1, source.calls)
}

// TestReconcileAll_ErrorHandling tests that loader errors abort the reconciliation.
func TestReconcileAll_ErrorHandling(t *testing.T) {
	tests := []struct {
		name      string
		docsErr   error
		sourceErr error
		expectErr string
	}{
		{name: "Docs load error", docsErr: fmt.Errorf("docs error"), expectErr: "failed to load XMLs keys: docs error"},
		{name: "Source load error", sourceErr: fmt.Errorf("source error"), expectErr: "failed to load source code keys: source error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &Spec{
				Docs:   &mockLoader{name: "XMLs", keys: keys.NewSet(), err: tt.docsErr},
				Source: &mockLoader{name: "source code", keys: keys.NewSet(), err: tt.sourceErr},
			}

			report, err := ReconcileAll(context.Background(), spec)
			assert.Nil(t, report)
			require.Error(t, err)
			assert.Equal(t, tt.expectErr, err.Error())
		})
	}
}

func TestStaticLoader(t *testing.T) {
	original := keys.NewSet("A")
	l := StaticLoader{Label: "fixed", Keys: original}

	got, err := l.LoadKeys(context.Background())
	require.NoError(t, err)
	got.Add("B")

	assert.Equal(t, "fixed", l.Name())
	assert.Equal(t, 1, original.Len())
}

func TestReconcileAll_FullReport(t *testing.T) {
	spec := &Spec{
		Docs:   StaticLoader{Label: "manual", Keys: keys.NewSet("TIME_ZONE", "METEOPATH")},
		Source: StaticLoader{Label: "tree", Keys: keys.NewSet("TIME_ZONE", "STATION1")},
	}

	got, err := ReconcileAll(context.Background(), spec)
	require.NoError(t, err)

	want := &Report{
		DocsName:   "manual",
		SourceName: "tree",
		Results: []ReconcileResult{
			{ID: "METEOPATH", DocsPresent: true},
			{ID: "STATION1", SourcePresent: true},
			{ID: "TIME_ZONE", DocsPresent: true, SourcePresent: true},
		},
		DocsOnly:   []string{"METEOPATH"},
		SourceOnly: []string{"STATION1"},
		Summary:    Summary{TotalKeys: 3, DocsKeys: 2, SourceKeys: 2, DocsOnly: 1, SourceOnly: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReconcileAll() mismatch (-want +got):\n%s", diff)
	}
}
