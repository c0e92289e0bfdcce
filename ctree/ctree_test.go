package ctree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mewspring/cc"
	"github.com/mewspring/uast/uast"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b cc.Location
		want bool
	}{
		{name: "earlier line", a: cc.Location{Line: 1, Col: 9}, b: cc.Location{Line: 2, Col: 1}, want: true},
		{name: "later line", a: cc.Location{Line: 3, Col: 1}, b: cc.Location{Line: 2, Col: 9}, want: false},
		{name: "same line earlier column", a: cc.Location{Line: 2, Col: 1}, b: cc.Location{Line: 2, Col: 5}, want: true},
		{name: "same line later column", a: cc.Location{Line: 2, Col: 5}, b: cc.Location{Line: 2, Col: 1}, want: false},
		{name: "equal", a: cc.Location{Line: 2, Col: 5}, b: cc.Location{Line: 2, Col: 5}, want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Less(test.a, test.b))
		})
	}
}

func TestSameFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "foo.h", b: "foo.h", want: true},
		{name: "dot prefix", a: "./foo.h", b: "foo.h", want: true},
		{name: "relative and absolute", a: "foo.h", b: filepath.Join(wd, "foo.h"), want: true},
		{name: "parent segment", a: "inc/../foo.h", b: "foo.h", want: true},
		{name: "different dir", a: "inc/foo.h", b: "foo.h", want: false},
		{name: "different file", a: "foo.h", b: "bar.h", want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, sameFile(test.a, test.b))
		})
	}
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		name             string
		startOff, endOff uint32
		start, length    int
	}{
		{name: "range", startOff: 4, endOff: 10, start: 4, length: 6},
		{name: "empty", startOff: 7, endOff: 7, start: 7, length: 0},
		{name: "inverted", startOff: 10, endOff: 4, start: 10, length: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			start, length := offsets(test.startOff, test.endOff)
			assert.Equal(t, test.start, start)
			assert.Equal(t, test.length, length)
		})
	}
}

// rawComment is a native comment which does not require a translation unit.
type rawComment struct {
	text string
}

func (c *rawComment) Span() (int, int) { return 0, len(c.text) }
func (c *rawComment) RawText() string  { return c.text }
func (c *rawComment) Comment()         {}

func TestNarrow(t *testing.T) {
	file := &uast.File{Path: "foo.h"}
	nodes := []uast.NativeNode{
		&Decl{},
		&rawComment{text: "/// foo"},
		&Decl{},
		&rawComment{text: "/* bar */"},
	}
	comments, err := narrow(nodes, file)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "/// foo", comments[0].Text())
	assert.Equal(t, "/* bar */", comments[1].Text())
	for _, c := range comments {
		assert.Same(t, file, c.Parent())
	}
}

func TestNarrowNil(t *testing.T) {
	var c *DeclComment
	_, err := narrow([]uast.NativeNode{c}, &uast.File{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, uast.ErrNilNative))
}
