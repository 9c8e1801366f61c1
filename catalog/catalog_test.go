package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foldcolor/catalog"
)

func openTemp(t *testing.T) (*catalog.Catalog, string) {
	t.Helper()
	dir := t.TempDir()
	cat, err := catalog.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cat.Close() })
	return cat, dir
}

func rec(graph, alg string, folds, colors int) catalog.Record {
	return catalog.Record{
		Graph:     graph,
		Algorithm: alg,
		Folds:     folds,
		Colors:    colors,
		Elapsed:   3 * time.Millisecond,
		When:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPutAndRuns_InsertionOrder(t *testing.T) {
	cat, _ := openTemp(t)

	require.NoError(t, cat.Put(rec("cycle15", "interCS", 3, 8)))
	require.NoError(t, cat.Put(rec("cycle15", "interCS", 3, 7)))
	require.NoError(t, cat.Put(rec("cycle15", "interCS", 3, 8)))

	runs, err := cat.Runs("cycle15", "interCS", 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []int{8, 7, 8}, []int{runs[0].Colors, runs[1].Colors, runs[2].Colors})
	assert.Equal(t, "cycle15", runs[0].Graph)
	assert.Equal(t, 3*time.Millisecond, runs[0].Elapsed)
}

func TestRuns_CellsAreIsolated(t *testing.T) {
	cat, _ := openTemp(t)

	require.NoError(t, cat.Put(rec("queen8", "AMIS", 2, 20)))
	require.NoError(t, cat.Put(rec("queen8", "AMIS", 3, 30)))
	require.NoError(t, cat.Put(rec("queen8", "tDSATUR", 2, 19)))

	runs, err := cat.Runs("queen8", "AMIS", 2)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 20, runs[0].Colors)

	empty, err := cat.Runs("queen8", "oDSATUR", 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSummary(t *testing.T) {
	cat, _ := openTemp(t)

	require.NoError(t, cat.Put(rec("leigh", "AMIS", 2, 10)))
	require.NoError(t, cat.Put(rec("leigh", "AMIS", 2, 12)))
	require.NoError(t, cat.Put(rec("leigh", "tDSATUR", 2, 9)))
	require.NoError(t, cat.Put(rec("leigh", "tDSATUR", 5, 21))) // other fold count

	sum, err := cat.Summary("leigh", 2)
	require.NoError(t, err)
	require.Len(t, sum, 2)

	amis := sum["AMIS"]
	assert.Equal(t, 2, amis.Runs)
	assert.Equal(t, 10, amis.BestColors)
	assert.InDelta(t, 11.0, amis.MeanColors, 1e-9)
	assert.InDelta(t, 5.5, amis.MeanRatio, 1e-9)

	dsat := sum["tDSATUR"]
	assert.Equal(t, 1, dsat.Runs)
	assert.Equal(t, 9, dsat.BestColors)
}

func TestReopen_Persists(t *testing.T) {
	dir := t.TempDir()

	cat, err := catalog.Open(dir)
	require.NoError(t, err)
	require.NoError(t, cat.Put(rec("k33", "interCS", 2, 4)))
	require.NoError(t, cat.Close())

	cat, err = catalog.Open(dir)
	require.NoError(t, err)
	defer cat.Close()

	runs, err := cat.Runs("k33", "interCS", 2)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 4, runs[0].Colors)
	assert.True(t, runs[0].When.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 2.5, catalog.Record{Folds: 2, Colors: 5}.Ratio(), 1e-9)
	assert.Zero(t, catalog.Record{}.Ratio())
}
