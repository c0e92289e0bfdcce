package uast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	file := &File{Path: "foo.h"}
	for _, lit := range []string{"// a", "/* b */"} {
		c, err := NewComment(newSpanComment(t, lit, lit), file)
		require.NoError(t, err)
		file.Comments = append(file.Comments, c)
	}
	assert.Nil(t, file.Parent())
	assert.Equal(t, "UFile (foo.h)", file.LogString())
	assert.Equal(t, "// a\n/* b */\n", file.SourceString())
	assert.Equal(t, file.SourceString(), file.RenderString())
}

func TestLogTree(t *testing.T) {
	file := &File{Path: "foo.h"}
	c, err := NewComment(newSpanComment(t, "// x", "// x"), file)
	require.NoError(t, err)
	assert.Equal(t, "UFile (foo.h)\n    UComment [0:4]\n", LogTree(c))
	assert.Equal(t, "UFile (foo.h)\n", LogTree(file))
	assert.Equal(t, "", LogTree(nil))
}

// Compile-time interface checks.
var (
	_ Element = (*Comment)(nil)
	_ Element = (*File)(nil)
)
