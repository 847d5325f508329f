package render

import (
	"errors"
	"testing"

	"fragdoc/internal/adapter/memstore"
	"fragdoc/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func newStore() *memstore.FragmentStore {
	s := memstore.NewFragmentStore()
	s.Append(domain.WholeFile("demo/X.java"), "class X {\n    void foo() {\n        bar();\n    }\n}")
	s.Append(domain.Start("demo/X.java"), "class X {\n\n")
	s.Append(domain.FragmentKey{Path: "demo/X.java", Name: "foo"}, "  bar();\n  baz();")
	return s
}

func TestSubstitute_Fragment(t *testing.T) {
	sub := NewSubstitutor("")

	got, err := sub.Substitute("before\n{{{\n#include demo/X.java#foo\n}}}\nafter\n", newStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "before\n{{{\nbar();\nbaz();\n}}}\nafter\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstitute_WholeFileAndStart(t *testing.T) {
	sub := NewSubstitutor("")

	got, err := sub.Substitute("#include demo/X.java\n  #include   demo/X.java##start  \n", newStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "class X {\n    void foo() {\n        bar();\n    }\n}\nclass X {\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstitute_Unresolved(t *testing.T) {
	sub := NewSubstitutor("")

	_, err := sub.Substitute("intro\n#include demo/Y.java#missing\n", newStore())

	var unresolved *domain.UnresolvedFragmentError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedFragmentError, got %v", err)
	}
	if unresolved.Key != "demo/Y.java#missing" {
		t.Errorf("expected key demo/Y.java#missing, got %q", unresolved.Key)
	}
	if unresolved.Line != 2 {
		t.Errorf("expected line 2, got %d", unresolved.Line)
	}
}

func TestSubstitute_KeyWithHash(t *testing.T) {
	store := newStore()
	store.Append(domain.WholeFile("issue#12/Y.java"), "class Y {}")
	store.Append(domain.FragmentKey{Path: "issue#12/Y.java", Name: "run"}, "void run() {\n}")
	store.Append(domain.Start("issue#12/Y.java"), "class Y {\n")
	sub := NewSubstitutor("")

	got, err := sub.Substitute("#include issue#12/Y.java\n#include issue#12/Y.java#run\n#include issue#12/Y.java##start\n", store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "class Y {}\nvoid run() {\n}\nclass Y {\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstitute_EmptyFragmentNameUnresolved(t *testing.T) {
	sub := NewSubstitutor("")

	_, err := sub.Substitute("#include demo/X.java#\n", newStore())

	var unresolved *domain.UnresolvedFragmentError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedFragmentError, got %v", err)
	}
	if unresolved.Key != "demo/X.java#" {
		t.Errorf("expected key demo/X.java#, got %q", unresolved.Key)
	}
}

func TestSubstitute_TolerantKeepsMarker(t *testing.T) {
	sub := NewSubstitutor("", WithTolerant(true))

	tmpl := "#include demo/Y.java#missing\n#include demo/X.java#foo"
	got, err := sub.Substitute(tmpl, newStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "#include demo/Y.java#missing\nbar();\nbaz();"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstitute_MalformedMarker(t *testing.T) {
	sub := NewSubstitutor("", WithTolerant(true))

	_, err := sub.Substitute("ok\n#include   \n", newStore())

	var malformed *domain.MalformedTemplateError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedTemplateError, got %v", err)
	}
	if malformed.Line != 2 {
		t.Errorf("expected line 2, got %d", malformed.Line)
	}
}

func TestSubstitute_IgnoresNonMarkers(t *testing.T) {
	sub := NewSubstitutor("")

	tmpl := "text #include demo/X.java\n#include two tokens\n#included demo/X.java\r\n"
	got, err := sub.Substitute(tmpl, newStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmpl {
		t.Errorf("expected template unchanged, got %q", got)
	}
}

func TestSubstitute_CustomDirective(t *testing.T) {
	sub := NewSubstitutor("@@snippet")

	got, err := sub.Substitute("@@snippet demo/X.java#foo\r\n#include demo/X.java#foo\r\n", newStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "bar();\nbaz();\r\n#include demo/X.java#foo\r\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}
