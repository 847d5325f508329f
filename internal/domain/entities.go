package domain

import "strings"

// StartName names the material that precedes the first detected block of a
// file. It carries a leading '#' so that templates address it as
// "path##start", which never collides with a method literally named start.
const StartName = "#start"

// FragmentKey identifies a fragment by the file it came from and the block
// name inside that file. An empty Name refers to the whole cleaned file.
type FragmentKey struct {
	Path string
	Name string
}

// WholeFile returns the key of the cleaned whole-file fragment of path.
func WholeFile(path string) FragmentKey {
	return FragmentKey{Path: path}
}

// Start returns the key of the leading material of path.
func Start(path string) FragmentKey {
	return FragmentKey{Path: path, Name: StartName}
}

// String renders the key the way include markers spell it.
func (k FragmentKey) String() string {
	if k.Name == "" {
		return k.Path
	}
	return k.Path + "#" + k.Name
}

// ParseKey reads an include key. The fragment name follows the last '#',
// so "a/B.java#foo" is the block foo and "a/B.java##start" the start
// fragment; a key without '#' is the whole file. A key ending in '#' names
// nothing and reports false.
func ParseKey(s string) (FragmentKey, bool) {
	if path, ok := strings.CutSuffix(s, "#"+StartName); ok {
		return Start(path), path != ""
	}
	i := strings.LastIndexByte(s, '#')
	if i < 0 {
		return FragmentKey{Path: s}, s != ""
	}
	path, name := s[:i], s[i+1:]
	if path == "" || name == "" {
		return FragmentKey{}, false
	}
	return FragmentKey{Path: path, Name: name}, true
}

// SourceFile is one scanned file: its '/'-separated path relative to the
// source root and its raw text.
type SourceFile struct {
	Path    string
	Content string
}

// Fragment is a stored fragment body.
type Fragment struct {
	Key  FragmentKey
	Body string
}

type ExtractStats struct {
	FilesScanned int
	Fragments    int
}
