package dimacs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldcolor/core"
	"github.com/katalvlaran/foldcolor/dimacs"
)

const triangleCol = `c a 3-cycle, the smallest odd cycle
c
p edge 3 3
e 1 2
e 2 3
e 1 3
`

func TestParse_Triangle(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader(triangleCol))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	// file vertex u lands on id u−1
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(0, 2))
}

func TestParse_IsolatedVerticesAndNoTrailingNewline(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p edge 5 1\ne 2 4"))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestParse_DuplicateEdgesTolerated(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("p edge 2 2\ne 1 2\ne 2 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestParse_MissingProblemLine(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("c only chatter here\n"))
	assert.ErrorIs(t, err, dimacs.ErrNoProblemLine)
}

func TestParse_TooManyEdges(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 3 1\ne 1 2\ne 2 3\n"))
	assert.ErrorIs(t, err, dimacs.ErrTooManyEdges)
}

func TestParse_VertexOutOfRange(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 3 1\ne 1 4\n"))
	assert.ErrorIs(t, err, dimacs.ErrVertexRange)

	_, err = dimacs.Parse(strings.NewReader("p edge 3 1\ne 0 2\n"))
	assert.ErrorIs(t, err, dimacs.ErrVertexRange)
}

func TestParse_SelfLoopRejected(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p edge 3 1\ne 2 2\n"))
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p clique 3 1\ne 1 2\n"))
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("hello world\n"))
	assert.Error(t, err)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := dimacs.ParseFile("testdata/no-such-file.col")
	assert.Error(t, err)
}
