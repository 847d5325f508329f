package domain

import "fmt"

// ScanError reports a source tree that could not be walked or a file that
// could not be read.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// UnresolvedFragmentError reports an include marker whose key names no
// stored fragment. Line is 1-based within the template.
type UnresolvedFragmentError struct {
	Key  string
	Line int
}

func (e *UnresolvedFragmentError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("unresolved fragment %q", e.Key)
	}
	return fmt.Sprintf("template line %d: unresolved fragment %q", e.Line, e.Key)
}

// MalformedTemplateError reports an include directive without a key.
type MalformedTemplateError struct {
	Line int
	Text string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("template line %d: include directive without key: %q", e.Line, e.Text)
}
