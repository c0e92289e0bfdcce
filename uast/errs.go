package uast

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNilNative is returned when an adapter is created from a nil native
	// node.
	ErrNilNative = errors.New("nil native node")
	// ErrNotComment is matched by errors.Is for every *NotCommentError.
	ErrNotComment = errors.New("native node is not a comment")
)

// NotCommentError is returned when a non-comment native node is narrowed to a
// comment.
type NotCommentError struct {
	// Native node of the mismatch.
	Native NativeNode
}

// Error implements the error interface.
func (e *NotCommentError) Error() string {
	return fmt.Sprintf("native node of type %T is not a comment", e.Native)
}

// Is reports whether target is ErrNotComment.
func (e *NotCommentError) Is(target error) bool {
	return target == ErrNotComment
}
