// foldcolor colors one graph with one of the fold-coloring heuristics and
// prints the palette size plus the per-vertex coloring. The graph comes
// either from a DIMACS .col file (positional argument) or from a named
// generator (-gen).
//
// Usage:
//
//	foldcolor -alg tDSATUR -folds 3 queen8_8.col
//	foldcolor -alg interCS -folds 2 -depth 2 -gen cycle:15
//	foldcolor -alg AMIS -folds 5 -gen queen:8 -db ./runs.db
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/foldcolor/builder"
	"github.com/katalvlaran/foldcolor/catalog"
	"github.com/katalvlaran/foldcolor/coloring"
	"github.com/katalvlaran/foldcolor/core"
	"github.com/katalvlaran/foldcolor/dimacs"
	"github.com/katalvlaran/foldcolor/experiment"
)

func main() {
	alg := flag.String("alg", "tDSATUR", "algorithm: AMIS | tDSATUR | oDSATUR | interCS")
	folds := flag.Int("folds", 2, "colors per vertex")
	gen := flag.String("gen", "", "generated graph instead of a file: cycle:N, path:N, complete:N, star:N, kneser:N:K, queen:N, k:A:B")
	db := flag.String("db", "", "optional catalog directory to record the run")
	depth := flag.Int("depth", 1, "interchange depth for interCS (0 disables)")
	quiet := flag.Bool("quiet", false, "suppress the per-vertex coloring")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	flag.Parse()

	if err := run(*alg, *folds, *gen, flag.Arg(0), *db, *depth, *quiet); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func run(alg string, folds int, gen, path, db string, depth int, quiet bool) error {
	g, name, err := loadGraph(gen, path)
	if err != nil {
		return err
	}
	klog.Infof("graph %s: %d vertices, %d edges", name, g.VertexCount(), g.EdgeCount())

	runner, err := pickRunner(alg, depth)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := runner(context.Background(), g, folds)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Printf("*** Time elapsed: %v\n", elapsed)
	fmt.Printf("*** Number of colors: %d\n", res.ColorsUsed)
	if !quiet {
		fmt.Println()
		fmt.Println("*** Coloring:")
		printColoring(res)
	}

	if db != "" {
		if err := record(db, name, alg, folds, res.ColorsUsed, elapsed); err != nil {
			return err
		}
		klog.Infof("run recorded in %s", db)
	}

	return nil
}

// pickRunner resolves the algorithm name; interCS additionally gets the
// -depth flag wired in.
func pickRunner(alg string, depth int) (experiment.Runner, error) {
	if alg == "interCS" {
		return func(ctx context.Context, g *core.Graph, folds int) (*coloring.Result, error) {
			return coloring.ConnectedSequential(g, folds,
				coloring.WithContext(ctx),
				coloring.WithInterchangeDepth(depth))
		}, nil
	}

	return experiment.Lookup(alg)
}

func loadGraph(gen, path string) (*core.Graph, string, error) {
	switch {
	case gen != "" && path != "":
		return nil, "", fmt.Errorf("pass either -gen or a file path, not both")
	case gen != "":
		g, err := generate(gen)
		return g, gen, err
	case path != "":
		g, err := dimacs.ParseFile(path)
		return g, path, err
	default:
		return nil, "", fmt.Errorf("no graph given: pass a DIMACS .col path or -gen")
	}
}

// generate parses specs like cycle:15, kneser:5:2 or k:3:3 into a builder
// call.
func generate(spec string) (*core.Graph, error) {
	parts := strings.Split(spec, ":")
	args := make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("-gen %s: %q is not a number", spec, p)
		}
		args = append(args, n)
	}

	var cons builder.Constructor
	switch kind, n := parts[0], len(args); {
	case kind == "cycle" && n == 1:
		cons = builder.Cycle(args[0])
	case kind == "path" && n == 1:
		cons = builder.Path(args[0])
	case kind == "complete" && n == 1:
		cons = builder.Complete(args[0])
	case kind == "star" && n == 1:
		cons = builder.Star(args[0])
	case kind == "kneser" && n == 2:
		cons = builder.Kneser(args[0], args[1])
	case kind == "queen" && n == 1:
		cons = builder.Queen(args[0], args[0])
	case kind == "queen" && n == 2:
		cons = builder.Queen(args[0], args[1])
	case kind == "k" && n == 2:
		cons = builder.CompleteBipartite(args[0], args[1])
	default:
		return nil, fmt.Errorf("-gen %s: unknown generator", spec)
	}

	return builder.BuildGraph(nil, nil, cons)
}

func printColoring(res *coloring.Result) {
	ids := make([]core.VertexID, 0, len(res.Coloring))
	for v := range res.Coloring {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, v := range ids {
		fmt.Printf("%d: %v\n", v, res.Coloring[v])
	}
}

func record(dir, graph, alg string, folds, colors int, elapsed time.Duration) error {
	cat, err := catalog.Open(dir)
	if err != nil {
		return err
	}
	defer cat.Close()

	return cat.Put(catalog.Record{
		Graph:     graph,
		Algorithm: alg,
		Folds:     folds,
		Colors:    colors,
		Elapsed:   elapsed,
		When:      time.Now().UTC(),
	})
}
