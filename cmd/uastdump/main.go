// The uastdump tool prints the uniform comment tree of C-family source files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/mewkiz/pkg/jsonutil"
	"github.com/mewkiz/pkg/term"
	"github.com/mewspring/cc"
	"github.com/mewspring/uast/ctree"
	"github.com/mewspring/uast/scan"
	"github.com/mewspring/uast/uast"
	"github.com/pkg/errors"
)

var (
	// dbg is a logger with the "uastdump:" prefix which logs debug messages to
	// standard error.
	dbg = log.New(os.Stderr, term.CyanBold("uastdump:")+" ", 0)
	// warn is a logger with the "uastdump:" prefix which logs warning messages
	// to standard error.
	warn = log.New(os.Stderr, term.RedBold("uastdump:")+" ", 0)
)

func usage() {
	const use = `
Usage:

	uastdump [OPTION]... FILE...

Flags:`
	fmt.Fprintln(os.Stderr, use[1:])
	flag.PrintDefaults()
}

func main() {
	// Parse command line arguments.
	var (
		// Output path for comments JSON file.
		jsonPath string
		// Pretty-print uniform trees.
		verbose bool
		// Use the comments clang attaches to declarations.
		useClang bool
		// Clang arguments.
		clangArgs []string
	)
	var clangArgsRaw string
	flag.StringVar(&jsonPath, "json", "", "output path for comments JSON file")
	flag.BoolVar(&verbose, "v", false, "pretty-print uniform trees")
	flag.BoolVar(&useClang, "clang", false, "use the comments clang attaches to declarations")
	flag.StringVar(&clangArgsRaw, "clang_args", "", "pipe-separated Clang arguments")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if len(clangArgsRaw) > 0 {
		clangArgs = strings.Split(clangArgsRaw, "|")
	}

	var records []Record
	// handle is invoked with the uniform tree of each source file, while the
	// native tree is still alive.
	handle := func(file *uast.File) {
		if verbose {
			pretty.Println(file.LogString(), toRecords(file))
		}
		if len(jsonPath) == 0 {
			dump(os.Stdout, file)
		}
		records = append(records, toRecords(file)...)
	}
	for _, srcPath := range flag.Args() {
		var err error
		if useClang {
			err = parseClang(srcPath, clangArgs, handle)
		} else {
			err = parseScan(srcPath, handle)
		}
		if err != nil {
			warn.Printf("%+v", err)
		}
	}
	if len(jsonPath) > 0 {
		dbg.Printf("creating %q", jsonPath)
		if err := jsonutil.WriteFile(jsonPath, records); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

// Record is the JSON representation of a comment.
type Record struct {
	// Source file path.
	Path string `json:"path"`
	// Byte offset of the comment.
	Start int `json:"start"`
	// Byte length of the comment.
	Length int `json:"length"`
	// Verbatim comment text.
	Text string `json:"text"`
}

// toRecords returns the JSON records of the comments of the given file.
func toRecords(file *uast.File) []Record {
	var rs []Record
	for _, c := range file.Comments {
		start, length := c.Native().Span()
		r := Record{
			Path:   file.Path,
			Start:  start,
			Length: length,
			Text:   c.Text(),
		}
		rs = append(rs, r)
	}
	return rs
}

// dump prints the log string and text of each comment of the given file.
func dump(w io.Writer, file *uast.File) {
	fmt.Fprintln(w, file.LogString())
	for _, c := range file.Comments {
		fmt.Fprintf(w, "\t%s %s\n", c.LogString(), c.Text())
	}
}

// parseScan invokes handle with the uniform tree of the given source file, as
// recognized by the Go scanner.
func parseScan(srcPath string, handle func(file *uast.File)) error {
	tree, err := scan.ParseFile(srcPath)
	if err != nil {
		return errors.WithStack(err)
	}
	uniform, err := tree.Uniform()
	if err != nil {
		return errors.WithStack(err)
	}
	handle(uniform)
	return nil
}

// parseClang invokes handle with the uniform tree of the comments clang
// attaches to the declarations of the given source file. The uniform tree must
// not be used after handle returns, as the translation unit is disposed.
func parseClang(srcPath string, clangArgs []string, handle func(file *uast.File)) error {
	file, err := cc.ParseFile(srcPath, clangArgs...)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()
	uniform := &uast.File{
		Path: srcPath,
	}
	comments, err := ctree.Comments(file, srcPath, uniform)
	if err != nil {
		return errors.WithStack(err)
	}
	uniform.Comments = comments
	handle(uniform)
	return nil
}
