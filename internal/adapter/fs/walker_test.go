package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fragdoc/internal/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_SelectsByPatternInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/test/java/demo/ZTest.java", "z")
	writeFile(t, root, "src/main/java/demo/A.java", "a")
	writeFile(t, root, "src/main/java/demo/notes.txt", "n")
	writeFile(t, root, "target/classes/Gen.java", "g")
	writeFile(t, root, "B.java", "b")

	w := NewWalker([]string{"**/*.java"}, []string{"**/target/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"B.java", "src/main/java/demo/A.java", "src/test/java/demo/ZTest.java"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %+v", len(want), len(files), files)
	}
	for i, f := range files {
		if f.RelPath != want[i] {
			t.Errorf("file %d: expected %s, got %s", i, want[i], f.RelPath)
		}
		if !filepath.IsAbs(f.Path) {
			t.Errorf("expected absolute path, got %s", f.Path)
		}
	}
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "b/c.md", "c")

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}

func TestWalker_MissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "missing"))

	var scanErr *domain.ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected ScanError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

func TestWalker_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "X.java", "x")

	_, err := NewWalker(nil, nil).Walk(filepath.Join(root, "X.java"))

	var scanErr *domain.ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected ScanError, got %v", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.java"))

	var scanErr *domain.ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected ScanError, got %v", err)
	}
}
