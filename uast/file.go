package uast

import (
	"fmt"
	"strings"
)

// File is the root element of the uniform tree of a source file.
type File struct {
	// Source file path.
	Path string
	// Comments of the file, in source order.
	Comments []*Comment
}

// SourceString returns the source text of the comments of the file, one per
// line.
func (f *File) SourceString() string {
	buf := &strings.Builder{}
	for _, c := range f.Comments {
		buf.WriteString(c.SourceString())
		buf.WriteString("\n")
	}
	return buf.String()
}

// RenderString returns the rendering of the file; same as SourceString.
func (f *File) RenderString() string {
	return f.SourceString()
}

// LogString returns the node kind and path of the file.
func (f *File) LogString() string {
	return fmt.Sprintf("UFile (%s)", f.Path)
}

// Parent returns nil; a file is the root of its tree.
func (f *File) Parent() Element {
	return nil
}
