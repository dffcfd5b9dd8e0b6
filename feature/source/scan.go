package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"keyaudit/core/issue"
	"keyaudit/core/keys"

	"go.uber.org/zap"
)

// Root is one source tree to scan.
type Root struct {
	// Path is the directory to walk, base already applied.
	Path string
	// Extensions filters files by extension without the dot. Empty means every file.
	Extensions []string
	// Exclusions are directories skipped together with their subtree.
	Exclusions []string
}

// accepts reports whether a file name passes the extension filter.
func (r Root) accepts(name string) bool {
	if len(r.Extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, want := range r.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func (r Root) excluded() map[string]struct{} {
	out := make(map[string]struct{}, len(r.Exclusions))
	for _, path := range r.Exclusions {
		out[filepath.Clean(path)] = struct{}{}
	}
	return out
}

// Scan walks root and collects the key usages of every accepted file.
// Binary files are skipped silently; files that cannot be opened are reported.
func Scan(root Root, cat *Catalogue, ignore keys.Set, logger *zap.Logger) (keys.Set, []issue.Issue) {
	found := keys.NewSet()

	info, err := os.Stat(root.Path)
	if err != nil || !info.IsDir() {
		return found, []issue.Issue{{Kind: issue.KindTraversal, Path: root.Path, Err: err}}
	}

	excluded := root.excluded()
	start := filepath.Clean(root.Path)

	var problems []issue.Issue
	files, binaries := 0, 0

	// The trailing separator makes WalkDir enter a root that is itself a link.
	walkFrom := root.Path
	if !strings.HasSuffix(walkFrom, string(filepath.Separator)) {
		walkFrom += string(filepath.Separator)
	}

	_ = filepath.WalkDir(walkFrom, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			problems = append(problems, issue.Issue{Kind: issue.KindAccess, Path: path, Err: err})
			return nil
		}
		if d.IsDir() {
			if _, skip := excluded[filepath.Clean(path)]; skip && filepath.Clean(path) != start {
				logger.Debug("Skipping excluded directory", zap.String("dir", path))
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 || !root.accepts(d.Name()) {
			return nil
		}

		fileKeys, err := ExtractFile(path, cat, ignore)
		switch {
		case errors.Is(err, ErrBinary):
			binaries++
			return nil
		case err != nil:
			problems = append(problems, issue.Issue{Kind: issue.KindAccess, Path: path, Err: err})
			return nil
		}

		found.Merge(fileKeys)
		files++
		return nil
	})

	logger.Info("Source scan completed",
		zap.String("root", root.Path),
		zap.Int("files", files),
		zap.Int("binary_skipped", binaries),
		zap.Int("keys", found.Len()),
	)

	return found, problems
}
