package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// LibraryTree creates the given directories and empty files under root on fs.
// Entries may contain slashes to create nested paths.
func LibraryTree(t testing.TB, fs afero.Fs, root string, dirs, files []string) {
	t.Helper()

	if err := fs.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", root, err)
	}
	for _, dir := range dirs {
		path := filepath.Join(root, filepath.FromSlash(dir))
		if err := fs.MkdirAll(path, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
	}
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := afero.WriteFile(fs, path, []byte{0x42}, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
