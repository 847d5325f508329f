package extract

import "testing"

func TestGrammar_BlockName_Matches(t *testing.T) {
	g := NewGrammar(nil)

	tests := []struct {
		line string
		want string
	}{
		{"void foo() {", "foo"},
		{"public void testSimpleScenario() {", "testSimpleScenario"},
		{"    @Test public void simpleScenario() {", "simpleScenario"},
		{"    public ROT13List(List<String> list) {", "ROT13List"},
		{"    public <T> T first(List<T> items) {", "first"},
		{"    private static String rot13(String s) {", "rot13"},
		{"    public boolean add(int index, String element) {", "add"},
		{"    public String get(int index){", "get"},
		{"    public Map<String, Integer> counts() {   ", "counts"},
		{"\tprotected abstract final void tabbed() {", "tabbed"},
	}

	for _, tt := range tests {
		got, ok := g.BlockName(tt.line)
		if !ok {
			t.Errorf("expected %q to open a block", tt.line)
			continue
		}
		if got != tt.want {
			t.Errorf("BlockName(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestGrammar_BlockName_Rejects(t *testing.T) {
	g := NewGrammar(nil)

	lines := []string{
		"public class Demo {",
		"    if (ready) {",
		"    for (String s : items) {",
		"    catch (Exception e) {",
		"    } catch (Exception e) {",
		"    new Runnable() {",
		"    Runnable r = new Runnable() {",
		"    context.checking(new Expectations() {{",
		"    void foo() { bar(); }",
		"    void foo();",
		"    void withDefault(int x = 1) {",
		"    void commented(int a /* first */) {",
		"    foo(bar);",
		"",
	}

	for _, line := range lines {
		if name, ok := g.BlockName(line); ok {
			t.Errorf("expected %q not to open a block, got name %q", line, name)
		}
	}
}

func TestGrammar_CustomModifiers(t *testing.T) {
	g := NewGrammar([]string{"public", "override"})

	name, ok := g.BlockName("    public override String toString() {")
	if !ok || name != "toString" {
		t.Errorf("expected toString, got %q (ok=%v)", name, ok)
	}

	// static is not in the custom set, so it reads as the return type and
	// the following token breaks the shape.
	if _, ok := g.BlockName("    public static void main(String[] args) {"); ok {
		t.Error("expected static method not to match without the static modifier")
	}
}

func TestGrammar_IsFlush(t *testing.T) {
	g := NewGrammar(nil)

	for _, line := range []string{"", "   ", "\t", "}", "    }", "  }  "} {
		if !g.IsFlush(line) {
			t.Errorf("expected %q to flush", line)
		}
	}
	for _, line := range []string{"};", "} else {", "x", "    return;", "}}"} {
		if g.IsFlush(line) {
			t.Errorf("expected %q not to flush", line)
		}
	}
}
