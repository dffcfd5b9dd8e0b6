package audit

import (
	"encoding/json"
	"fmt"
	"io"

	"keyaudit/core/reconcile"
)

// PrintReport writes the two console sections of a report:
//
//	---------- Keys in XMLs but not in source code (1): ----------
//	[METEOPATH]
//	---------- Keys in source code but not in XMLs (1): ----------
//	[STATION1]
func PrintReport(w io.Writer, rep *reconcile.Report) {
	printSection(w, rep.DocsName, rep.SourceName, rep.DocsOnly)
	printSection(w, rep.SourceName, rep.DocsName, rep.SourceOnly)
}

func printSection(w io.Writer, location, other string, keys []string) {
	fmt.Fprintf(w, "---------- Keys in %s but not in %s (%d): ----------\n", location, other, len(keys))
	fmt.Fprintln(w, keys)
}

// WriteJSON writes the full report, per-key results included, as indented JSON.
func WriteJSON(w io.Writer, rep *reconcile.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
