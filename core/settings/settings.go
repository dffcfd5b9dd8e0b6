// Package settings parses the line-oriented settings file that tells the audit
// where the documentation lives and which source trees to scan.
//
//	# comment
//	xmlpath=../inishell-config
//	extensions=cc,h
//	ignore=WRITE_DEBUG,TIME_ZONE
//	base=/home/user/src/
//	exclude=meteoio/doc,snowpack/tests
//	meteoio
//	snowpack
package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"keyaudit/core/keys"
)

// DefaultFile is the settings file name used when none is configured.
const DefaultFile = "code_base_files.ini"

const (
	directiveXMLPath    = "xmlpath="
	directiveExtensions = "extensions="
	directiveIgnore     = "ignore="
	directiveBase       = "base="
	directiveExclude    = "exclude="
)

// Settings holds the parsed content of a settings file.
type Settings struct {
	// XMLPath is the documentation root. It is not prefixed by Base.
	XMLPath string
	// Base is prepended to every source root and exclusion.
	Base string
	// Extensions filters source files by extension (no dot). Empty means all files.
	Extensions []string
	// Ignore lists raw keys excluded from both outputs.
	Ignore []string
	// Exclusions are directories skipped with their subtree, already prefixed by Base.
	Exclusions []string
	// Roots are source roots as written in the file, without Base.
	Roots []string
}

// Load reads and parses the settings file at path.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return s, nil
}

// Parse reads settings directives from r.
// Base is applied to exclusions once the whole input has been read, so the
// directive order does not matter for them.
func Parse(r io.Reader) (*Settings, error) {
	s := &Settings{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, directiveXMLPath):
			s.XMLPath = strings.TrimPrefix(line, directiveXMLPath)
		case strings.HasPrefix(line, directiveExtensions):
			s.Extensions = append(s.Extensions, splitList(strings.TrimPrefix(line, directiveExtensions))...)
		case strings.HasPrefix(line, directiveIgnore):
			s.Ignore = append(s.Ignore, splitList(strings.TrimPrefix(line, directiveIgnore))...)
		case strings.HasPrefix(line, directiveBase):
			s.Base = strings.TrimPrefix(line, directiveBase)
		case strings.HasPrefix(line, directiveExclude):
			s.Exclusions = append(s.Exclusions, splitList(strings.TrimPrefix(line, directiveExclude))...)
		default:
			s.Roots = append(s.Roots, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if s.Base != "" {
		for i, path := range s.Exclusions {
			s.Exclusions[i] = s.Base + path
		}
	}

	return s, nil
}

// SourceRoots returns the configured roots with Base prepended.
func (s *Settings) SourceRoots() []string {
	roots := make([]string, 0, len(s.Roots))
	for _, root := range s.Roots {
		roots = append(roots, s.Base+root)
	}
	return roots
}

// IgnoreSet returns the normalized ignore keys.
func (s *Settings) IgnoreSet() keys.Set {
	return keys.NewIgnoreSet(s.Ignore)
}

// splitList splits a comma separated value, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
