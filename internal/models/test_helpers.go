package models

import (
	"path/filepath"
	"runtime"
	"testing"
)

// FixturePath returns the absolute path of name under the module's testdata
// directory, independent of the calling package's depth.
func FixturePath(t testing.TB, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("cannot locate testdata for %s", name)
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}
