// Package docs associates comments with the declarations they document.
package docs

import (
	"go/token"
	"strings"

	"github.com/mewspring/uast/scan"
	"github.com/mewspring/uast/uast"
	"github.com/pkg/errors"
)

// Decl is a declaration which may be documented.
type Decl struct {
	// Declared identifier.
	Ident string
	// Position of the declaration.
	Pos token.Position
}

// DocComment is the doc comment of a declaration.
type DocComment struct {
	// Documented identifier.
	Ident string
	// Position of the declaration.
	Pos token.Position
	// Comments of the doc comment, in source order.
	Comments []*uast.Comment
}

// Text returns the source text of the doc comment, with one line per
// comment.
func (d DocComment) Text() string {
	var lines []string
	for _, c := range d.Comments {
		lines = append(lines, c.Text())
	}
	return strings.Join(lines, "\n")
}

// Group groups the given comments, merging consecutive line comments.
func Group(comments []*scan.Comment) [][]*scan.Comment {
	var groups [][]*scan.Comment
	for _, c := range comments {
		if n := len(groups); n > 0 {
			last := groups[n-1][len(groups[n-1])-1]
			if isConsecutiveLineComments(last, c) {
				groups[n-1] = append(groups[n-1], c)
				continue
			}
		}
		groups = append(groups, []*scan.Comment{c})
	}
	return groups
}

func isConsecutiveLineComments(a, b *scan.Comment) bool {
	if !a.IsLine() || !b.IsLine() {
		return false
	}
	return a.EndLine() == b.Pos.Line-1
}

// Associate returns the doc comments of the given declarations, sorted by
// position. A comment group documents a declaration if it is the last group
// before the declaration and ends on the line of or directly above the
// declaration. Each group documents at most one declaration.
func Associate(decls []Decl, groups [][]*scan.Comment, parent uast.Element) ([]DocComment, error) {
	var docComments []DocComment
	i := 0 // current group index.
	for _, decl := range decls {
		var doc []*scan.Comment
		for ; i < len(groups); i++ {
			group := groups[i]
			end := endPos(group)
			if !less(end, decl.Pos) {
				// group after decl.
				break
			}
			doc = group
		}
		if doc == nil {
			continue
		}
		if decl.Pos.Line-endPos(doc).Line > 1 {
			continue
		}
		docComment := DocComment{
			Ident: decl.Ident,
			Pos:   decl.Pos,
		}
		for _, native := range doc {
			c, err := uast.NewComment(native, parent)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			docComment.Comments = append(docComment.Comments, c)
		}
		docComments = append(docComments, docComment)
	}
	return docComments, nil
}

// endPos returns the end position of the given comment group; the line on
// which the last comment ends, at the column of its start.
func endPos(group []*scan.Comment) token.Position {
	last := group[len(group)-1]
	pos := last.Pos
	pos.Line = last.EndLine()
	return pos
}

func less(a, b token.Position) bool {
	switch {
	case a.Line < b.Line:
		return true
	case a.Line > b.Line:
		return false
	}
	// case a.Line == b.Line:
	return a.Column < b.Column
}
