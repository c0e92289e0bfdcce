// Package scan provides a native syntax tree of C-family source files, as
// recognized by the Go scanner.
//
// The tree is a flat, ordered sequence of comment and token nodes over an
// immutable source buffer.
package scan

import (
	"bytes"
	"go/scanner"
	"go/token"
	"io/ioutil"
	"log"
	"os"

	"github.com/mewkiz/pkg/term"
	"github.com/mewspring/uast/uast"
	"github.com/pkg/errors"
)

// warn is a logger with the "scan:" prefix which logs warning messages to
// standard error.
var warn = log.New(os.Stderr, term.RedBold("scan:")+" ", 0)

// Tree is the native syntax tree of a source file.
type Tree struct {
	// Source file path.
	Path string
	// Source buffer; must not be modified.
	Src []byte
	// Native nodes in source order.
	nodes []uast.NativeNode
	// Comment nodes in source order.
	comments []*Comment
}

// ParseFile parses the given source file into a native syntax tree.
func ParseFile(srcPath string) (*Tree, error) {
	src, err := ioutil.ReadFile(srcPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return Parse(srcPath, src)
}

// Parse parses the given source into a native syntax tree. Preprocessor
// directives are ignored; other scan errors are reported as warnings.
func Parse(srcPath string, src []byte) (*Tree, error) {
	t := &Tree{
		Path: srcPath,
		Src:  src,
	}
	fset := token.NewFileSet()
	file := fset.AddFile(srcPath, -1, len(src))
	s := &scanner.Scanner{}
	eh := func(pos token.Position, msg string) {
		if msg == "illegal character U+0023 '#'" {
			// Ignore pre-process directives.
			return
		}
		warn.Printf("pos: %v, msg: %v", pos, msg)
	}
	s.Init(file, src, eh, scanner.ScanComments)
	for {
		p, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			// skip automatically inserted semicolons.
			continue
		}
		start := file.Offset(p)
		// line directives are not honoured; positions are those of the C
		// source.
		pos := file.PositionFor(p, false)
		switch tok {
		case token.COMMENT:
			c := &Comment{
				Pos:    pos,
				tree:   t,
				start:  start,
				length: commentEnd(src, start) - start,
			}
			t.nodes = append(t.nodes, c)
			t.comments = append(t.comments, c)
		default:
			length := len(lit)
			if length == 0 {
				length = len(tok.String())
			}
			if start+length > len(src) {
				length = len(src) - start
			}
			tk := &Token{
				Kind:   tok,
				Pos:    pos,
				start:  start,
				length: length,
			}
			t.nodes = append(t.nodes, tk)
		}
	}
	if s.ErrorCount > 0 {
		warn.Printf("%d scan errors in %q", s.ErrorCount, srcPath)
	}
	return t, nil
}

// commentEnd returns the end offset of the comment starting at the given
// offset in src. Line comments end before the line break; unterminated block
// comments end at the end of src.
func commentEnd(src []byte, start int) int {
	rest := src[start:]
	if bytes.HasPrefix(rest, []byte("/*")) {
		end := bytes.Index(rest[2:], []byte("*/"))
		if end == -1 {
			return len(src)
		}
		return start + 2 + end + 2
	}
	end := bytes.IndexByte(rest, '\n')
	if end == -1 {
		end = len(rest)
	}
	if end > 0 && rest[end-1] == '\r' {
		end--
	}
	return start + end
}

// Nodes returns the native nodes of the tree in source order.
func (t *Tree) Nodes() []uast.NativeNode {
	return t.nodes
}

// Comments returns the comment nodes of the tree in source order.
func (t *Tree) Comments() []*Comment {
	return t.comments
}

// Uniform returns the uniform tree of the source file. Each native node is
// narrowed to a comment; other nodes are skipped.
func (t *Tree) Uniform() (*uast.File, error) {
	file := &uast.File{
		Path: t.Path,
	}
	for _, n := range t.nodes {
		c, err := uast.AsComment(n, file)
		if err != nil {
			if errors.Is(err, uast.ErrNotComment) {
				continue
			}
			return nil, errors.WithStack(err)
		}
		file.Comments = append(file.Comments, c)
	}
	return file, nil
}
