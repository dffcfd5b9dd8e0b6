package docs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"keyaudit/core/keys"
)

// Marker is the substring every declaration line must contain.
const Marker = "key="

// declaration captures the quoted value after the marker. The closing quote is
// optional, as in a value broken over two lines.
var declaration = regexp.MustCompile(`key="([^"]*)`)

// FileResult is what one documentation file contributes.
type FileResult struct {
	// Path identifies the file (local path or bucket/object).
	Path string
	// Keys are the declared keys, shortcut resolution applied, ignore set honoured.
	Keys keys.Set
	// Shortcuts are the running keys borrowed by placeholder declarations.
	Shortcuts keys.Set
}

// ExtractFile extracts the declarations of one local XML file.
func ExtractFile(path string, ignore keys.Set) (FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{Path: path}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	res, err := ExtractReader(f, ignore)
	res.Path = path
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return res, nil
}

// ExtractReader extracts declarations from r with a fresh resolver.
// Lines are read whole, whatever their length.
func ExtractReader(r io.Reader, ignore keys.Set) (FileResult, error) {
	res := FileResult{
		Keys:      keys.NewSet(),
		Shortcuts: keys.NewSet(),
	}
	resolver := NewResolver()

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			res.add(resolver, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), ignore)
		}
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
	}
}

// add applies one line of a documentation file to res.
func (res *FileResult) add(resolver *Resolver, line string, ignore keys.Set) {
	if !strings.Contains(line, Marker) {
		return
	}

	raw, ok := declaredValue(line)
	if !ok {
		return
	}

	key, shortcut, hasShortcut := resolver.Resolve(raw)
	if hasShortcut && shortcut != "" {
		res.Shortcuts.Add(shortcut)
	}
	if key == "" || ignore.Has(key) {
		return
	}
	res.Keys.Add(key)
}

// declaredValue returns the quoted value of the last declaration on the line.
func declaredValue(line string) (string, bool) {
	matches := declaration.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1][1], true
}

// Fold merges a file result into acc and purges the file's shortcut keys.
// The purge is by value: a key declared in full elsewhere that equals a
// shortcut of this file is removed as well.
func Fold(acc keys.Set, res FileResult) keys.Set {
	return acc.Merge(res.Keys).Subtract(res.Shortcuts)
}
