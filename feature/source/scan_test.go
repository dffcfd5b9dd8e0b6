package source

import (
	"os"
	"path/filepath"
	"testing"

	"keyaudit/core/issue"
	"keyaudit/core/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// tree builds a small code base:
//
//	meteoio/IOHandler.cc     STATION1
//	meteoio/Config.h         TIME_ZONE
//	meteoio/README           README_KEY
//	meteoio/doc/example.cc   DOC_ONLY
//	meteoio/plugins/a.cc     PLUGIN
//	meteoio/blob.cc          binary
func tree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "meteoio")
	writeFile(t, filepath.Join(root, "IOHandler.cc"), `cfg.getValue("STATION1", "Input", s);`)
	writeFile(t, filepath.Join(root, "Config.h"), `cfg.get("TIME_ZONE", "Input");`)
	writeFile(t, filepath.Join(root, "README"), `cfg.get("README_KEY", "Input");`)
	writeFile(t, filepath.Join(root, "doc", "example.cc"), `cfg.get("DOC_ONLY", "Input");`)
	writeFile(t, filepath.Join(root, "plugins", "a.cc"), `inputConfig["PLUGIN"] = "x";`)
	writeFile(t, filepath.Join(root, "blob.cc"), "cfg.get(\"BINARY\")\x00\xff")
	return root
}

func TestScan_AllFiles(t *testing.T) {
	root := tree(t)

	found, problems := Scan(Root{Path: root}, DefaultCatalogue(), nil, zap.NewNop())

	assert.Empty(t, problems)
	assert.Equal(t, []string{"DOC_ONLY", "PLUGIN", "README_KEY", "STATION1", "TIME_ZONE"}, found.Sorted())
}

func TestScan_Extensions(t *testing.T) {
	root := tree(t)

	found, _ := Scan(Root{Path: root, Extensions: []string{"h"}}, DefaultCatalogue(), nil, zap.NewNop())
	assert.Equal(t, []string{"TIME_ZONE"}, found.Sorted())
}

func TestScan_Exclusions(t *testing.T) {
	root := tree(t)

	r := Root{
		Path:       root,
		Extensions: []string{"cc", "h"},
		Exclusions: []string{filepath.Join(root, "doc") + "/", filepath.Join(root, "plugins")},
	}
	found, problems := Scan(r, DefaultCatalogue(), nil, zap.NewNop())

	assert.Empty(t, problems)
	assert.Equal(t, []string{"STATION1", "TIME_ZONE"}, found.Sorted())
}

func TestScan_Ignore(t *testing.T) {
	root := tree(t)

	found, _ := Scan(Root{Path: root}, DefaultCatalogue(), keys.NewIgnoreSet([]string{"station1", "doc_only"}), zap.NewNop())
	assert.False(t, found.Has("STATION1"))
	assert.False(t, found.Has("DOC_ONLY"))
	assert.True(t, found.Has("TIME_ZONE"))
}

func TestScan_Symlinks(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	outside := filepath.Join(t.TempDir(), "outside.cc")
	writeFile(t, outside, `cfg.get("LINKED", "x");`)
	writeFile(t, filepath.Join(root, "real.cc"), `cfg.get("REAL", "x");`)

	if err := os.Symlink(outside, filepath.Join(root, "link.cc")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.cc"), filepath.Join(root, "broken.cc")))

	found, problems := Scan(Root{Path: root}, DefaultCatalogue(), nil, zap.NewNop())
	assert.Empty(t, problems)
	assert.Equal(t, []string{"REAL"}, found.Sorted())
}

func TestScan_SymlinkedRoot(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	writeFile(t, filepath.Join(target, "a.cc"), `cfg.get("TIME_ZONE", "Input");`)
	writeFile(t, filepath.Join(target, "tests", "t.cc"), `cfg.get("TEST_ONLY", "Input");`)
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	root := Root{Path: link, Exclusions: []string{filepath.Join(link, "tests")}}
	found, problems := Scan(root, DefaultCatalogue(), nil, zap.NewNop())

	assert.Empty(t, problems)
	assert.Equal(t, []string{"TIME_ZONE"}, found.Sorted())
}

func TestScan_NotADirectory(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")

		found, problems := Scan(Root{Path: missing}, DefaultCatalogue(), nil, zap.NewNop())
		assert.Empty(t, found)
		require.Len(t, problems, 1)
		assert.Equal(t, issue.KindTraversal, problems[0].Kind)
		assert.Equal(t, "Not a directory: "+missing, problems[0].Message())
	})

	t.Run("File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "a.cc")
		writeFile(t, file, `cfg.get("A", "x");`)

		found, problems := Scan(Root{Path: file}, DefaultCatalogue(), nil, zap.NewNop())
		assert.Empty(t, found)
		require.Len(t, problems, 1)
		assert.Equal(t, issue.KindTraversal, problems[0].Kind)
	})
}

func TestScan_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := filepath.Join(t.TempDir(), "src")
	locked := filepath.Join(root, "locked.cc")
	writeFile(t, locked, `cfg.get("LOCKED", "x");`)
	writeFile(t, filepath.Join(root, "open.cc"), `cfg.get("OPEN", "x");`)
	require.NoError(t, os.Chmod(locked, 0))

	found, problems := Scan(Root{Path: root}, DefaultCatalogue(), nil, zap.NewNop())

	assert.Equal(t, []string{"OPEN"}, found.Sorted())
	require.Len(t, problems, 1)
	assert.Equal(t, issue.KindAccess, problems[0].Kind)
	assert.Equal(t, "Can not open file for reading: "+locked, problems[0].Message())
}
