// Package uast provides a uniform facade over native, language-specific syntax
// trees.
//
// Each native node kind is wrapped by an adapter which satisfies the Element
// interface. Adapters borrow the native node; they must not be used after the
// native tree they were created from has been reparsed or discarded.
package uast

import (
	"fmt"
	"strings"
)

// Element is a node of the uniform syntax tree.
//
// The interface is open: packages outside of uast may add node kinds by
// implementing it.
type Element interface {
	// SourceString returns the node rendered as source code.
	SourceString() string
	// RenderString returns the human-facing rendering of the node.
	RenderString() string
	// LogString returns a short identifier of the node, suitable for
	// diagnostic logs.
	LogString() string
	// Parent returns the element structurally containing the node, or nil for
	// the root.
	Parent() Element
}

// NativeNode is a loosely-typed handle to a node of a native syntax tree.
type NativeNode interface {
	// Span returns the byte offset and length of the source text spanned by
	// the node.
	Span() (start, length int)
}

// NativeComment is a native syntax node representing a single source comment.
type NativeComment interface {
	NativeNode
	// RawText returns the verbatim source text of the comment, including
	// delimiters.
	RawText() string
	// Comment marks the node as a comment.
	Comment()
}

// LogTree returns the log strings of e and its ancestors, root first, indented
// by depth.
func LogTree(e Element) string {
	var chain []Element
	for ; e != nil; e = e.Parent() {
		chain = append(chain, e)
	}
	buf := &strings.Builder{}
	for depth := len(chain) - 1; depth >= 0; depth-- {
		indent := strings.Repeat("    ", len(chain)-1-depth)
		fmt.Fprintf(buf, "%s%s\n", indent, chain[depth].LogString())
	}
	return buf.String()
}
