package scan

import (
	"go/token"
)

// Comment is a native comment node.
type Comment struct {
	// Position of the comment start.
	Pos token.Position
	// Tree containing the comment.
	tree *Tree
	// Byte span of the comment in the source buffer.
	start, length int
}

// Span returns the byte offset and length of the comment.
func (c *Comment) Span() (start, length int) {
	return c.start, c.length
}

// RawText returns the verbatim source text of the comment.
func (c *Comment) RawText() string {
	return string(c.tree.Src[c.start : c.start+c.length])
}

// Comment marks the node as a comment.
func (*Comment) Comment() {}

// IsLine reports whether c is a line comment.
func (c *Comment) IsLine() bool {
	src := c.tree.Src[c.start:]
	return len(src) >= 2 && src[0] == '/' && src[1] == '/'
}

// EndLine returns the line number on which the comment ends.
func (c *Comment) EndLine() int {
	n := 0
	for _, b := range c.tree.Src[c.start : c.start+c.length] {
		if b == '\n' {
			n++
		}
	}
	return c.Pos.Line + n
}

// Token is a native non-comment node.
type Token struct {
	// Token kind.
	Kind token.Token
	// Position of the token start.
	Pos token.Position
	// Byte span of the token in the source buffer.
	start, length int
}

// Span returns the byte offset and length of the token.
func (t *Token) Span() (start, length int) {
	return t.start, t.length
}
