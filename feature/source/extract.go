package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"keyaudit/core/keys"
)

// ErrBinary is returned for content that is not valid UTF-8 text.
var ErrBinary = errors.New("not a text file")

// ExtractFile extracts the key usages of one source file.
func ExtractFile(path string, cat *Catalogue, ignore keys.Set) (keys.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	found, err := ExtractReader(f, cat, ignore)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return found, nil
}

// ExtractReader extracts key usages from r.
// The whole content must decode as UTF-8, otherwise ErrBinary is returned and
// nothing is extracted.
func ExtractReader(r io.Reader, cat *Catalogue, ignore keys.Set) (keys.Set, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, ErrBinary
	}

	found := keys.NewSet()
	for _, line := range strings.Split(string(content), "\n") {
		for _, raw := range cat.ExtractLine(line) {
			key := keys.Normalize(raw)
			if key == "" || ignore.Has(key) {
				continue
			}
			found.Add(key)
		}
	}
	return found, nil
}
