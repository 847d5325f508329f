package memstore

import (
	"testing"

	"fragdoc/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func TestFragmentStore_AppendConcatenates(t *testing.T) {
	s := NewFragmentStore()
	key := domain.FragmentKey{Path: "a/B.java", Name: "run"}

	s.Append(key, "one\n")
	s.Append(key, "two\n")

	got, ok := s.Get(key)
	if !ok {
		t.Fatal("expected key to be present")
	}
	if got != "one\ntwo\n" {
		t.Errorf("expected appended body, got %q", got)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 fragment, got %d", s.Len())
	}
}

func TestFragmentStore_EmptyBodyIsPresent(t *testing.T) {
	s := NewFragmentStore()
	s.Append(domain.Start("a/B.java"), "")

	if _, ok := s.Get(domain.Start("a/B.java")); !ok {
		t.Error("expected empty fragment to be resolvable")
	}
	if _, ok := s.Get(domain.WholeFile("a/B.java")); ok {
		t.Error("expected whole-file key to be absent")
	}
}

func TestFragmentStore_KeysSorted(t *testing.T) {
	s := NewFragmentStore()
	s.Append(domain.FragmentKey{Path: "b.java", Name: "z"}, "")
	s.Append(domain.FragmentKey{Path: "a.java", Name: "run"}, "")
	s.Append(domain.WholeFile("a.java"), "")
	s.Append(domain.Start("a.java"), "")

	want := []domain.FragmentKey{
		{Path: "a.java"},
		{Path: "a.java", Name: "#start"},
		{Path: "a.java", Name: "run"},
		{Path: "b.java", Name: "z"},
	}
	if diff := cmp.Diff(want, s.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}
