package dimacs

import (
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/foldcolor/core"
)

var (
	// ErrNoProblemLine is returned when the input has no "p edge N M" line.
	ErrNoProblemLine = errors.New("dimacs: missing problem line")

	// ErrTooManyEdges is returned when the file carries more "e" lines than
	// the problem line declared.
	ErrTooManyEdges = errors.New("dimacs: more edges than declared")

	// ErrVertexRange is returned when an edge endpoint falls outside 1..N.
	ErrVertexRange = errors.New("dimacs: vertex number out of range")
)

// The lexer elides comments and all whitespace (newlines included), so the
// grammar sees only the keyword / number stream; every record is
// self-delimiting by its leading keyword.
var colLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `c([ \t][^\n]*)?(\n|\z)`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Word", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

type colDocument struct {
	Problem *colProblem `parser:"@@?"`
	Edges   []colEdge   `parser:"@@*"`
}

type colProblem struct {
	Format   string `parser:"'p' @Word"`
	Vertices int    `parser:"@Int"`
	Edges    int    `parser:"@Int"`
}

type colEdge struct {
	U int `parser:"'e' @Int"`
	V int `parser:"@Int"`
}

var colParser = participle.MustBuild[colDocument](
	participle.Lexer(colLexer),
)

// Parse reads a DIMACS .col stream and returns the graph it describes.
// Vertex u of the file becomes core.VertexID u−1. Fewer "e" lines than
// declared is tolerated (several published instances under-fill); more is
// ErrTooManyEdges.
func Parse(r io.Reader) (*core.Graph, error) {
	doc, err := colParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "dimacs: parse")
	}

	return build(doc)
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dimacs: open")
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dimacs: %s", path)
	}

	return g, nil
}

func build(doc *colDocument) (*core.Graph, error) {
	if doc.Problem == nil {
		return nil, ErrNoProblemLine
	}
	p := doc.Problem
	if p.Format != "edge" {
		return nil, errors.Errorf("dimacs: unsupported problem format %q", p.Format)
	}
	if len(doc.Edges) > p.Edges {
		return nil, errors.Wrapf(ErrTooManyEdges, "declared %d, found %d", p.Edges, len(doc.Edges))
	}

	g := core.NewGraph(core.WithCapacity(p.Vertices))
	ids := g.AddVertices(p.Vertices)
	for _, e := range doc.Edges {
		if e.U < 1 || e.U > p.Vertices || e.V < 1 || e.V > p.Vertices {
			return nil, errors.Wrapf(ErrVertexRange, "e %d %d with N=%d", e.U, e.V, p.Vertices)
		}
		if err := g.AddEdge(ids[e.U-1], ids[e.V-1]); err != nil {
			return nil, errors.Wrapf(err, "dimacs: e %d %d", e.U, e.V)
		}
	}

	return g, nil
}
