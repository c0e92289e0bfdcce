// Package ctree exposes the declarations of a clang translation unit, and the
// raw comments clang attaches to them, as native syntax nodes.
package ctree

import (
	"path/filepath"
	"sort"

	"github.com/go-clang/clang-v3.9/clang"
	"github.com/mewspring/cc"
	"github.com/mewspring/uast/uast"
	"github.com/pkg/errors"
)

// Decl is a native declaration node. It is not a comment.
type Decl struct {
	Node *cc.Node
}

// Span returns the byte offset and length of the declaration.
func (d *Decl) Span() (start, length int) {
	return span(d.Node.Body.Extent())
}

// DeclComment is the native raw comment attached to a declaration.
type DeclComment struct {
	Decl *cc.Node
}

// NewDeclComment returns the raw comment attached to the given declaration. The
// boolean result reports whether a comment is attached.
func NewDeclComment(decl *cc.Node) (*DeclComment, bool) {
	if decl.Body.RawCommentText() == "" {
		return nil, false
	}
	return &DeclComment{Decl: decl}, true
}

// Span returns the byte offset and length of the comment.
func (c *DeclComment) Span() (start, length int) {
	return span(c.Decl.Body.CommentRange())
}

// RawText returns the verbatim source text of the comment.
func (c *DeclComment) RawText() string {
	return c.Decl.Body.RawCommentText()
}

// Comment marks the node as a comment.
func (*DeclComment) Comment() {}

// span returns the byte offset and length of the given source range.
func span(r clang.SourceRange) (start, length int) {
	_, _, _, startOff := r.Start().FileLocation()
	_, _, _, endOff := r.End().FileLocation()
	return offsets(startOff, endOff)
}

// offsets returns the start offset and length of the given byte range. The
// length of an inverted range is 0.
func offsets(startOff, endOff uint32) (start, length int) {
	if endOff < startOff {
		return int(startOff), 0
	}
	return int(startOff), int(endOff - startOff)
}

// FindDecls returns the variable and function declarations of the given AST,
// sorted by location.
func FindDecls(root *cc.Node) []*cc.Node {
	var decls []*cc.Node
	visit := func(n *cc.Node) {
		switch n.Body.Kind() {
		case clang.Cursor_VarDecl, clang.Cursor_FunctionDecl:
			decls = append(decls, n)
		}
	}
	cc.Walk(root, visit)
	sort.Slice(decls, func(i, j int) bool {
		return Less(decls[i].Loc, decls[j].Loc)
	})
	return decls
}

// FileDecls returns the declarations of FindDecls located in the given source
// file, excluding declarations of included files.
func FileDecls(root *cc.Node, srcPath string) []*cc.Node {
	var decls []*cc.Node
	for _, decl := range FindDecls(root) {
		if sameFile(decl.Loc.File, srcPath) {
			decls = append(decls, decl)
		}
	}
	return decls
}

// Nodes returns the native nodes of the declarations of the given source file;
// each declaration followed by its attached raw comment, if any.
func Nodes(root *cc.Node, srcPath string) []uast.NativeNode {
	var nodes []uast.NativeNode
	for _, decl := range FileDecls(root, srcPath) {
		nodes = append(nodes, &Decl{Node: decl})
		if c, ok := NewDeclComment(decl); ok {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// Comments returns the uniform views of the raw comments clang attaches to the
// declarations of the given source file, contained in parent.
func Comments(file *cc.File, srcPath string, parent uast.Element) ([]*uast.Comment, error) {
	return narrow(Nodes(file.Root, srcPath), parent)
}

// narrow returns the uniform views of the comment nodes of nodes, contained in
// parent. Other nodes are skipped.
func narrow(nodes []uast.NativeNode, parent uast.Element) ([]*uast.Comment, error) {
	var comments []*uast.Comment
	for _, n := range nodes {
		c, err := uast.AsComment(n, parent)
		if err != nil {
			if errors.Is(err, uast.ErrNotComment) {
				continue
			}
			return nil, errors.WithStack(err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// Less reports whether location a is before location b.
func Less(a, b cc.Location) bool {
	switch {
	case a.Line < b.Line:
		return true
	case a.Line > b.Line:
		return false
	}
	// case a.Line == b.Line:
	return a.Col < b.Col
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
