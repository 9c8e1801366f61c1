// Package catalog persists fold-coloring run records in a local badger
// store, so repeated experiment batches accumulate into one queryable
// history. Records are keyed by (graph, algorithm, folds) with a monotonic
// sequence suffix; values are JSON.
package catalog

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// Record is one timed run of one algorithm on one graph.
type Record struct {
	Graph     string        `json:"graph"`
	Algorithm string        `json:"algorithm"`
	Folds     int           `json:"folds"`
	Colors    int           `json:"colors"`
	Elapsed   time.Duration `json:"elapsed"`
	When      time.Time     `json:"when"`
}

// Ratio is colors per fold, the accuracy metric experiments compare:
// closer to the fractional chromatic number is better.
func (r Record) Ratio() float64 {
	if r.Folds == 0 {
		return 0
	}
	return float64(r.Colors) / float64(r.Folds)
}

// Stats aggregates the runs of one algorithm cell.
type Stats struct {
	Runs       int
	BestColors int
	MeanColors float64
	MeanRatio  float64
}

// Catalog is an open run store. Safe for concurrent use; Close releases
// the underlying db.
type Catalog struct {
	db *badger.DB
}

// Open opens (creating if needed) the store rooted at dir.
func Open(dir string) (*Catalog, error) {
	dbOpts := badger.DefaultOptions(dir)
	dbOpts.DetectConflicts = false // single-writer usage, skip the bookkeeping
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %s", dir)
	}

	return &Catalog{db: db}, nil
}

// Close flushes and closes the store.
func (c *Catalog) Close() error {
	return errors.Wrap(c.db.Close(), "catalog: close")
}

// runPrefix groups all runs of one (graph, algorithm, folds) cell; the
// 8-byte big-endian suffix after it keeps them in insertion order.
func runPrefix(graph, algorithm string, folds int) []byte {
	return []byte(fmt.Sprintf("run/%s/%s/%d/", graph, algorithm, folds))
}

func graphPrefix(graph string) []byte {
	return []byte(fmt.Sprintf("run/%s/", graph))
}

// Put appends rec under the next free sequence number of its cell.
func (c *Catalog) Put(rec Record) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "catalog: marshal record")
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		prefix := runPrefix(rec.Graph, rec.Algorithm, rec.Folds)

		var next uint64
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
			Prefix:         prefix,
		})
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			if seq := binary.BigEndian.Uint64(k[len(k)-8:]); seq >= next {
				next = seq + 1
			}
		}
		it.Close()

		key := make([]byte, len(prefix)+8)
		copy(key, prefix)
		binary.BigEndian.PutUint64(key[len(prefix):], next)

		return txn.Set(key, val)
	})

	return errors.Wrap(err, "catalog: put")
}

// Runs returns every record of one cell in insertion order.
func (c *Catalog) Runs(graph, algorithm string, folds int) ([]Record, error) {
	var recs []Record
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         runPrefix(graph, algorithm, folds),
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := appendRecord(it.Item(), &recs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "catalog: runs")
	}

	return recs, nil
}

// Summary aggregates every algorithm's runs on (graph, folds), keyed by
// algorithm name. Algorithms with no runs are absent from the map.
func (c *Catalog) Summary(graph string, folds int) (map[string]Stats, error) {
	var recs []Record
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         graphPrefix(graph),
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := appendRecord(it.Item(), &recs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "catalog: summary")
	}

	out := make(map[string]Stats)
	for _, rec := range recs {
		if rec.Folds != folds {
			continue
		}
		st := out[rec.Algorithm]
		if st.Runs == 0 || rec.Colors < st.BestColors {
			st.BestColors = rec.Colors
		}
		st.Runs++
		st.MeanColors += float64(rec.Colors)
		st.MeanRatio += rec.Ratio()
		out[rec.Algorithm] = st
	}
	for alg, st := range out {
		st.MeanColors /= float64(st.Runs)
		st.MeanRatio /= float64(st.Runs)
		out[alg] = st
	}

	return out, nil
}

func appendRecord(item *badger.Item, recs *[]Record) error {
	return item.Value(func(val []byte) error {
		var rec Record
		if err := json.Unmarshal(val, &rec); err != nil {
			return errors.Wrapf(err, "key %q", item.Key())
		}
		*recs = append(*recs, rec)
		return nil
	})
}
