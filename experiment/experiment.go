// Package experiment runs batches of fold-coloring algorithms over sets of
// graphs and fold counts, timing every run and optionally persisting the
// records into a catalog. It is the programmatic face of the CLI's batch
// mode.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/foldcolor/catalog"
	"github.com/katalvlaran/foldcolor/coloring"
	"github.com/katalvlaran/foldcolor/core"
)

var (
	// ErrNoGraphs is returned by Suite.Run when Graphs is empty.
	ErrNoGraphs = errors.New("experiment: no graphs")

	// ErrNoFolds is returned by Suite.Run when Folds is empty.
	ErrNoFolds = errors.New("experiment: no fold counts")

	// ErrUnknownAlgorithm is returned when a requested algorithm name is
	// not one of the Algorithms() keys.
	ErrUnknownAlgorithm = errors.New("experiment: unknown algorithm")
)

// Runner executes one fold-coloring algorithm on one graph.
type Runner func(ctx context.Context, g *core.Graph, folds int) (*coloring.Result, error)

// Algorithms returns the four named runners:
//
//	AMIS     — independent-set extraction
//	tDSATUR  — DSATUR, total saturation
//	oDSATUR  — DSATUR, outer (neighbor-only) saturation
//	interCS  — connected-sequential with color interchange
//
// The map is freshly built on every call; callers may edit their copy.
func Algorithms() map[string]Runner {
	return map[string]Runner{
		"AMIS": func(ctx context.Context, g *core.Graph, folds int) (*coloring.Result, error) {
			return coloring.AMIS(g, folds, coloring.WithContext(ctx))
		},
		"tDSATUR": func(ctx context.Context, g *core.Graph, folds int) (*coloring.Result, error) {
			return coloring.DSATUR(g, folds,
				coloring.WithContext(ctx),
				coloring.WithSaturationPolicy(coloring.SaturationTotal))
		},
		"oDSATUR": func(ctx context.Context, g *core.Graph, folds int) (*coloring.Result, error) {
			return coloring.DSATUR(g, folds,
				coloring.WithContext(ctx),
				coloring.WithSaturationPolicy(coloring.SaturationOuter))
		},
		"interCS": func(ctx context.Context, g *core.Graph, folds int) (*coloring.Result, error) {
			return coloring.ConnectedSequential(g, folds, coloring.WithContext(ctx))
		},
	}
}

// Lookup resolves one algorithm name, or ErrUnknownAlgorithm.
func Lookup(name string) (Runner, error) {
	run, ok := Algorithms()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return run, nil
}

// NamedGraph pairs a graph with the label used in records.
type NamedGraph struct {
	Name  string
	Graph *core.Graph
}

// Suite describes one batch: every (graph, fold, algorithm) cell is run
// Repeat times (minimum 1). Leave Algorithms nil to run all four; set
// Sink to also persist each record as it is produced.
type Suite struct {
	Graphs     []NamedGraph
	Folds      []int
	Algorithms []string
	Repeat     int
	Sink       *catalog.Catalog
}

// Run executes the whole batch and returns its records in deterministic
// order: graphs in slice order, folds in slice order, algorithms by name.
func (s *Suite) Run(ctx context.Context) ([]catalog.Record, error) {
	if len(s.Graphs) == 0 {
		return nil, ErrNoGraphs
	}
	if len(s.Folds) == 0 {
		return nil, ErrNoFolds
	}

	runners, names, err := s.resolveRunners()
	if err != nil {
		return nil, err
	}
	repeat := s.Repeat
	if repeat < 1 {
		repeat = 1
	}

	var recs []catalog.Record
	for _, ng := range s.Graphs {
		for _, folds := range s.Folds {
			for _, name := range names {
				for i := 0; i < repeat; i++ {
					start := time.Now()
					res, err := runners[name](ctx, ng.Graph, folds)
					if err != nil {
						return recs, fmt.Errorf("experiment: %s on %s (folds=%d): %w", name, ng.Name, folds, err)
					}
					rec := catalog.Record{
						Graph:     ng.Name,
						Algorithm: name,
						Folds:     folds,
						Colors:    res.ColorsUsed,
						Elapsed:   time.Since(start),
						When:      time.Now().UTC(),
					}
					if s.Sink != nil {
						if err := s.Sink.Put(rec); err != nil {
							return recs, fmt.Errorf("experiment: record %s/%s: %w", ng.Name, name, err)
						}
					}
					recs = append(recs, rec)
				}
			}
		}
	}

	return recs, nil
}

func (s *Suite) resolveRunners() (map[string]Runner, []string, error) {
	all := Algorithms()

	names := s.Algorithms
	if len(names) == 0 {
		names = make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
	} else {
		for _, name := range names {
			if _, ok := all[name]; !ok {
				return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
			}
		}
		names = append([]string(nil), names...)
	}
	sort.Strings(names)

	return all, names, nil
}
