package uast

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Comment is the uniform view of a native comment node.
//
// A Comment is immutable and safe for concurrent use, as long as the native
// tree is not mutated concurrently.
type Comment struct {
	// Borrowed native comment; never nil.
	native NativeComment
	// Non-owning back-reference to the containing element.
	parent Element
}

// NewComment returns a uniform view of the given native comment, contained in
// parent.
func NewComment(native NativeComment, parent Element) (*Comment, error) {
	if isNil(native) {
		return nil, errors.WithStack(ErrNilNative)
	}
	c := &Comment{
		native: native,
		parent: parent,
	}
	return c, nil
}

// AsComment narrows the given loosely-typed native node to a comment and
// returns its uniform view. A *NotCommentError is returned if n is not a
// comment.
func AsComment(n NativeNode, parent Element) (*Comment, error) {
	if isNil(n) {
		return nil, errors.WithStack(ErrNilNative)
	}
	native, ok := n.(NativeComment)
	if !ok {
		return nil, errors.WithStack(&NotCommentError{Native: n})
	}
	return NewComment(native, parent)
}

// Text returns the verbatim source text of the comment, including delimiters.
func (c *Comment) Text() string {
	return c.native.RawText()
}

// SourceString returns the source text of the comment; same as Text.
func (c *Comment) SourceString() string {
	return c.Text()
}

// RenderString returns the rendered comment; same as Text.
func (c *Comment) RenderString() string {
	return c.Text()
}

// LogString returns the node kind and span of the comment. The comment body is
// omitted.
func (c *Comment) LogString() string {
	start, length := c.native.Span()
	return fmt.Sprintf("UComment [%d:%d]", start, start+length)
}

// Parent returns the element containing the comment.
func (c *Comment) Parent() Element {
	return c.parent
}

// Native returns the wrapped native comment.
func (c *Comment) Native() NativeComment {
	return c.native
}

// isNil reports whether n is nil or holds a nil pointer, map, slice, func,
// chan or interface.
func isNil(n NativeNode) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
