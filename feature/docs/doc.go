// Package docs extracts the configuration keys declared in XML documentation.
//
// A declaration is any line holding the marker key="...". Keys are normalized
// with keys.Normalize before they are compared with the source side.
//
// # Shortcut Keys
//
// Grouping elements (panels, choices, checklists) declare a partial key and
// their children refer to it with the '@' placeholder:
//
//	<parameter key="TA" type="horizontal">
//	    <parameter key="@_INTERPOL" .../>
//
// The child resolves to TA_INTERPOL. The grouping key TA is scaffolding: it
// is remembered as a shortcut and removed from the documentation set once the
// file has been folded in. The running key lives in a Resolver, one per file.
//
// # Sources
//
//   - Collect walks a local directory tree for *.xml files.
//   - CollectBucket lists *.xml objects under a bucket prefix.
//
// Both fold files in listing order with Fold and return the problems they met
// as issue values instead of aborting.
package docs
