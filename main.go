// cdoc2json -clang_args="-m32|-I./include|-I/usr/lib/clang/8.0.1/include" foo.h

// clang++ -Wp,-v -x c++ - -fsyntax-only < /dev/null 2>&1 | grep /clang/

package main

import (
	"flag"
	"fmt"
	"go/token"
	"log"
	"os"
	"strings"

	"github.com/mewkiz/pkg/jsonutil"
	"github.com/mewkiz/pkg/term"
	"github.com/mewspring/cc"
	"github.com/mewspring/uast/ctree"
	"github.com/mewspring/uast/docs"
	"github.com/mewspring/uast/scan"
	"github.com/pkg/errors"
)

var (
	// dbg is a logger with the "cdoc2json:" prefix which logs debug messages to
	// standard error.
	dbg = log.New(os.Stderr, term.CyanBold("cdoc2json:")+" ", 0)
	// warn is a logger with the "cdoc2json:" prefix which logs warning messages
	// to standard error.
	warn = log.New(os.Stderr, term.RedBold("cdoc2json:")+" ", 0)
)

func main() {
	// Parse command line arguments.
	var (
		// Output path for doc comments JSON file.
		output string
		// Clang arguments.
		clangArgs []string
		// Print doc comments to standard output.
		verbose bool
	)
	var clangArgsRaw string
	flag.StringVar(&output, "output", "doc_comments.json", "output path for doc comments JSON file")
	flag.StringVar(&clangArgsRaw, "clang_args", "", "pipe-separated Clang arguments")
	flag.BoolVar(&verbose, "v", false, "print doc comments to standard output")
	flag.Parse()
	if len(clangArgsRaw) > 0 {
		clangArgs = strings.Split(clangArgsRaw, "|")
	}
	// map from identifier to comment.
	commentFromIdent := make(map[string]string)
	for _, srcPath := range flag.Args() {
		if err := parse(srcPath, commentFromIdent, verbose, clangArgs...); err != nil {
			log.Fatalf("%+v", err)
		}
	}
	dbg.Printf("creating %q", output)
	if err := jsonutil.WriteFile(output, commentFromIdent); err != nil {
		log.Fatalf("%+v", err)
	}
}

func parse(srcPath string, commentFromIdent map[string]string, verbose bool, clangArgs ...string) error {
	dbg.Printf("parsing %q", srcPath)
	tree, err := scan.ParseFile(srcPath)
	if err != nil {
		return errors.WithStack(err)
	}
	uniform, err := tree.Uniform()
	if err != nil {
		return errors.WithStack(err)
	}
	file, err := cc.ParseFile(srcPath, clangArgs...)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()
	var decls []docs.Decl
	for _, n := range ctree.FileDecls(file.Root, srcPath) {
		decl := docs.Decl{
			Ident: n.Body.Spelling(),
			Pos: token.Position{
				Filename: n.Loc.File,
				Line:     int(n.Loc.Line),
				Column:   int(n.Loc.Col),
			},
		}
		decls = append(decls, decl)
	}
	groups := docs.Group(tree.Comments())
	docComments, err := docs.Associate(decls, groups, uniform)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, docComment := range docComments {
		ident := docComment.Ident
		new := docComment.Text()
		if old, ok := commentFromIdent[ident]; ok {
			warn.Printf("doc comment for %q already present; old %q, new %q", ident, old, new)
		}
		commentFromIdent[ident] = new
	}
	if verbose {
		printDocComments(docComments)
	}
	return nil
}

func printDocComments(docComments []docs.DocComment) {
	for _, docComment := range docComments {
		fmt.Println(docComment.Ident)
		for _, c := range docComment.Comments {
			fmt.Println(c.LogString())
		}
		fmt.Println(docComment.Text())
	}
}
