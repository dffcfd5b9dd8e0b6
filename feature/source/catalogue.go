package source

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Entry declares one configuration access syntax by its literal prefix.
type Entry struct {
	Name   string
	Prefix string
}

// Pattern is a compiled catalogue entry.
type Pattern struct {
	Name   string
	Prefix string
	re     *regexp.Regexp
}

// Catalogue is the ordered list of access patterns searched in every line.
type Catalogue struct {
	patterns []Pattern
}

// DefaultEntries are the access syntaxes of the SLF code base.
//
//	cfg.getValue("ZRXP_STATUS_UNALTERED_NODATA", "Output", qa_unaltered_nodata, IOUtils::nothrow);
//	const double in_TZ = cfg.get("TIME_ZONE", "Input");
//	if (cfg.keyExists("ZRXP_STATUS_NODATA", "Output"))
//	if (vecArgs[ii].first=="SENSITIVITY") {
//	} else if (vecArgs[0].first=="SUPPR") {
//	outputConfig["AGGREGATE_PRO"] = "false";
//	inputConfig["METEOPATH"] = "./input";
//	advancedConfig["WIND_SCALING_FACTOR"] = "1.0";
var DefaultEntries = []Entry{
	{Name: "getValue", Prefix: `cfg.getValue(`},
	{Name: "get", Prefix: `cfg.get(`},
	{Name: "keyExists", Prefix: `cfg.keyExists(`},
	{Name: "argLoop", Prefix: `vecArgs[ii].first==`},
	{Name: "argFirst", Prefix: `vecArgs[0].first==`},
	{Name: "outputConfig", Prefix: `outputConfig[`},
	{Name: "inputConfig", Prefix: `inputConfig[`},
	{Name: "advancedConfig", Prefix: `advancedConfig[`},
}

// NewCatalogue compiles the given entries in order.
// Prefixes are matched against whitespace-free lines, so they must not contain
// whitespace themselves.
func NewCatalogue(entries ...Entry) (*Catalogue, error) {
	seen := make(map[string]struct{}, len(entries))
	patterns := make([]Pattern, 0, len(entries))

	for _, e := range entries {
		if e.Prefix == "" {
			return nil, fmt.Errorf("catalogue entry %q has an empty prefix", e.Name)
		}
		if compact(e.Prefix) != e.Prefix {
			return nil, fmt.Errorf("catalogue entry %q: prefix %q contains whitespace", e.Name, e.Prefix)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("duplicate catalogue entry %q", e.Name)
		}
		seen[e.Name] = struct{}{}

		re, err := regexp.Compile(regexp.QuoteMeta(e.Prefix) + `[^"]*"([^"]*)`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile catalogue entry %q: %w", e.Name, err)
		}
		patterns = append(patterns, Pattern{Name: e.Name, Prefix: e.Prefix, re: re})
	}

	return &Catalogue{patterns: patterns}, nil
}

// DefaultCatalogue returns the compiled DefaultEntries.
func DefaultCatalogue() *Catalogue {
	cat, err := NewCatalogue(DefaultEntries...)
	if err != nil {
		panic(err)
	}
	return cat
}

// Patterns returns the catalogue in match order.
func (c *Catalogue) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// ExtractLine returns the raw tokens found in one line.
//
// Whitespace is removed before matching. Every entry is evaluated on its own,
// in catalogue order, and every occurrence of its prefix yields the first
// quoted string that follows it. A line matching two entries therefore
// produces two tokens.
func (c *Catalogue) ExtractLine(line string) []string {
	line = compact(line)

	var tokens []string
	for _, p := range c.patterns {
		if !strings.Contains(line, p.Prefix) {
			continue
		}
		for _, m := range p.re.FindAllStringSubmatch(line, -1) {
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}

// compact removes every whitespace rune.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
