package netfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlnet/core"
)

// DefaultDelimiter separates the two identifier columns unless overridden.
const DefaultDelimiter = '\t'

// expected column count per edge row; anything else is skipped on import.
const edgeColumns = 2

// config aggregates the import/export knobs.
type config struct {
	delimiter rune
	graphOpts []core.GraphOption
}

// Option customizes Read/Write behavior.
type Option func(*config)

// WithDelimiter sets the column separator (default tab).
// Panics on the zero rune to surface programmer error early.
func WithDelimiter(d rune) Option {
	if d == 0 {
		panic("netfile: WithDelimiter(0)")
	}
	return func(c *config) { c.delimiter = d }
}

// WithGraphOptions sets the core.GraphOption set applied to the graph a
// Read call constructs (directedness, self-edge policy). Write ignores it.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graphOpts = opts }
}

func newConfig(opts ...Option) config {
	cfg := config{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Write serializes g's edge enumeration to w, one identifier pair per row.
// Undirected edges appear as both orderings, matching core.Graph.Edges.
// Only edges carry data: a node with no edges has no row, so isolated
// nodes do not survive a Write/Read round trip.
// Complexity: O(V log V + E log E).
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	cfg := newConfig(opts...)

	cw := csv.NewWriter(w)
	cw.Comma = cfg.delimiter
	for _, pair := range g.Edges() {
		if err := cw.Write([]string{rawID(pair[0]), rawID(pair[1])}); err != nil {
			return fmt.Errorf("netfile: write edge %v: %w", pair, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// Read parses a two-column edge list from r into a fresh graph built with
// cfg.graphOpts. Tolerant ingestion contract:
//   - rows with fewer or more than two columns are skipped;
//   - duplicate node and edge inserts are suppressed (upstream files are
//     not required to pre-deduplicate — undirected exports never are);
//   - self-edge rows are skipped when the graph disallows them;
//   - empty input yields an empty graph.
//
// Complexity: O(rows).
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph(cfg.graphOpts...)

	cr := csv.NewReader(r)
	cr.Comma = cfg.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("netfile: read: %w", err)
		}
		if len(record) != edgeColumns {
			continue
		}

		from, to := parseID(record[0]), parseID(record[1])
		if err = addTolerant(g, from, to); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WriteFile creates (or truncates) path and serializes g into it.
func WriteFile(path string, g *core.Graph, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("netfile: create %s: %w", path, err)
	}
	if err = Write(f, g, opts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadFile parses the edge list stored at path.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// addTolerant inserts both endpoints and the edge, suppressing the
// sentinels the tolerant-ingestion contract allows.
func addTolerant(g *core.Graph, from, to core.NodeID) error {
	for _, id := range []core.NodeID{from, to} {
		if err := g.AddNode(id); err != nil && !errors.Is(err, core.ErrDuplicateNode) {
			return fmt.Errorf("netfile: AddNode(%v): %w", id, err)
		}
	}
	err := g.AddEdge(from, to)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrDuplicateEdge), errors.Is(err, core.ErrSelfEdgeNotAllowed):
		return nil
	default:
		return fmt.Errorf("netfile: AddEdge(%v,%v): %w", from, to, err)
	}
}

// rawID renders an identifier without quoting for serialization.
func rawID(id core.NodeID) string {
	if id.IsInt() {
		return strconv.FormatInt(id.Int(), 10)
	}

	return id.Text()
}

// parseID maps a token back to an identifier: base-10 integers become
// numeric, everything else textual.
func parseID(token string) core.NodeID {
	if v, err := strconv.ParseInt(token, 10, 64); err == nil {
		return core.IntID(v)
	}

	return core.StringID(token)
}
