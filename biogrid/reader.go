package biogrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlnet/core"
	"github.com/katalvlaran/lvlnet/netfile"
)

// Sentinel errors for interaction-database queries.
var (
	// ErrUnknownTaxon indicates no interaction data exists for the taxon ID.
	ErrUnknownTaxon = errors.New("biogrid: no data for taxon")

	// ErrInvalidParameter indicates a negative result-count parameter.
	ErrInvalidParameter = errors.New("biogrid: invalid parameter")
)

// Zero-based record columns of the BioGRID "ALL" tab export.
const (
	colTaxonID     = 5
	colInteractorA = 7
	colInteractorB = 8

	// minColumns is the shortest row that still carries all three fields.
	minColumns = colInteractorB + 1
)

// unknownNameTag and unknownIDTag mark failed mapping lookups.
const (
	unknownNameTag = "[name unknown]"
	unknownIDTag   = "[ID unknown]"
)

// TaxonCount pairs an organism with its interaction count.
type TaxonCount struct {
	Interactions int
	TaxonID      string
}

// InteractorDegree pairs an interactor symbol with its degree in one
// organism's interaction network.
type InteractorDegree struct {
	Degree     int
	Interactor string
}

// readerConfig aggregates parse-time knobs.
type readerConfig struct {
	names map[string]string
}

// Option customizes Parse behavior.
type Option func(*readerConfig)

// WithOrganismNames supplies the taxon-ID → organism-name mapping used by
// OrganismName and TaxonID lookups.
func WithOrganismNames(names map[string]string) Option {
	return func(c *readerConfig) { c.names = names }
}

// Reader holds per-organism interaction graphs parsed from one database
// export. It is immutable after Parse.
type Reader struct {
	networks map[string]*core.Graph
	names    map[string]string
}

// Parse reads a tab-separated interaction database from r. The first line
// is a header and is skipped; malformed rows and self-interactions are
// dropped; duplicate nodes and interactions are suppressed via the core
// sentinels, per the tolerant ingestion contract.
// Complexity: O(rows).
func Parse(r io.Reader, opts ...Option) (*Reader, error) {
	cfg := readerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	rd := &Reader{
		networks: make(map[string]*core.Graph),
		names:    cfg.names,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		fields := strings.Split(strings.TrimRight(scanner.Text(), "\r\n"), "\t")
		if len(fields) < minColumns {
			continue
		}

		taxon := fields[colTaxonID]
		a, b := fields[colInteractorA], fields[colInteractorB]
		if taxon == "" || a == "" || b == "" || a == b {
			continue
		}

		g, ok := rd.networks[taxon]
		if !ok {
			g = core.NewGraph()
			rd.networks[taxon] = g
		}
		if err := addInteraction(g, core.StringID(a), core.StringID(b)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("biogrid: scan: %w", err)
	}

	return rd, nil
}

// ParseFile reads the interaction database stored at path.
func ParseFile(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("biogrid: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// addInteraction inserts one undirected interaction, suppressing duplicate
// sentinels.
func addInteraction(g *core.Graph, a, b core.NodeID) error {
	for _, id := range []core.NodeID{a, b} {
		if err := g.AddNode(id); err != nil && !errors.Is(err, core.ErrDuplicateNode) {
			return fmt.Errorf("biogrid: AddNode(%v): %w", id, err)
		}
	}
	if err := g.AddEdge(a, b); err != nil && !errors.Is(err, core.ErrDuplicateEdge) {
		return fmt.Errorf("biogrid: AddEdge(%v,%v): %w", a, b, err)
	}

	return nil
}

// Networks returns the live per-taxon graph map. Callers must treat it as
// read-only.
func (r *Reader) Networks() map[string]*core.Graph { return r.networks }

// Network returns the interaction graph for one organism.
// Returns ErrUnknownTaxon if the database held no data for it.
func (r *Reader) Network(taxonID string) (*core.Graph, error) {
	g, ok := r.networks[taxonID]
	if !ok {
		return nil, fmt.Errorf("taxon %s: %w", taxonID, ErrUnknownTaxon)
	}

	return g, nil
}

// NetworkSize returns the number of undirected interactions recorded for
// the organism.
// Returns ErrUnknownTaxon if the database held no data for it.
func (r *Reader) NetworkSize(taxonID string) (int, error) {
	g, err := r.Network(taxonID)
	if err != nil {
		return 0, err
	}

	return g.EdgeCount(), nil
}

// LargestNetworks returns the min(n, organisms) taxon IDs with the most
// interactions, descending; ties break by taxon ID ascending for
// deterministic output.
// Returns ErrInvalidParameter if n is negative.
func (r *Reader) LargestNetworks(n int) ([]string, error) {
	counts, err := r.MostAbundantTaxonIDs(n)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(counts))
	for i, tc := range counts {
		out[i] = tc.TaxonID
	}

	return out, nil
}

// MostAbundantTaxonIDs returns the min(n, organisms) organisms with the most
// interactions as (interactions, taxon ID) pairs, descending; ties break by
// taxon ID ascending.
// Returns ErrInvalidParameter if n is negative.
func (r *Reader) MostAbundantTaxonIDs(n int) ([]TaxonCount, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidParameter)
	}

	out := make([]TaxonCount, 0, len(r.networks))
	for taxon, g := range r.networks {
		out = append(out, TaxonCount{Interactions: g.EdgeCount(), TaxonID: taxon})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Interactions != out[j].Interactions {
			return out[i].Interactions > out[j].Interactions
		}
		return out[i].TaxonID < out[j].TaxonID
	})
	if n < len(out) {
		out = out[:n]
	}

	return out, nil
}

// HighestDegreeInteractors returns the min(n, interactors) interactors with
// the highest degree in one organism's network, descending; ties break by
// interactor symbol ascending.
// Returns ErrUnknownTaxon or ErrInvalidParameter.
func (r *Reader) HighestDegreeInteractors(taxonID string, n int) ([]InteractorDegree, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidParameter)
	}
	g, err := r.Network(taxonID)
	if err != nil {
		return nil, err
	}

	out := make([]InteractorDegree, 0, g.Size())
	for _, node := range g.Nodes() {
		out = append(out, InteractorDegree{Degree: node.Degree(), Interactor: node.ID().Text()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Degree != out[j].Degree {
			return out[i].Degree > out[j].Degree
		}
		return out[i].Interactor < out[j].Interactor
	})
	if n < len(out) {
		out = out[:n]
	}

	return out, nil
}

// OrganismName returns the organism name mapped to the taxon ID, or the ID
// tagged with "[name unknown]" when the mapping has no entry.
func (r *Reader) OrganismName(taxonID string) string {
	if name, ok := r.names[taxonID]; ok {
		return name
	}

	return taxonID + " " + unknownNameTag
}

// TaxonID returns the taxon ID mapped to the organism name, matched
// case-insensitively, or the name tagged with "[ID unknown]" when the
// mapping has no entry.
func (r *Reader) TaxonID(organismName string) string {
	for taxon, name := range r.names {
		if strings.EqualFold(name, organismName) {
			return taxon
		}
	}

	return organismName + " " + unknownIDTag
}

// ExportNetwork serializes one organism's interaction graph to w in the
// netfile two-column edge-list format.
// Returns ErrUnknownTaxon if the database held no data for it.
func (r *Reader) ExportNetwork(taxonID string, w io.Writer, opts ...netfile.Option) error {
	g, err := r.Network(taxonID)
	if err != nil {
		return err
	}

	return netfile.Write(w, g, opts...)
}
