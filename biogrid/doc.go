// Package biogrid ingests tab-separated interaction-database records into
// per-organism interaction graphs.
//
// The expected record layout follows the BioGRID "ALL" export: one header
// line, then one interaction per row with the NCBI taxon identifier in
// column 6 and the two interactor symbols in columns 8 and 9 (zero-based
// indexes 5, 7, 8). Parsing is tolerant by the ingestion contract: short
// rows, self-interactions, and duplicate interactions are skipped without
// error, so the raw database file can be fed in unfiltered.
//
// Each organism's interactions form one undirected core.Graph without
// self-edges, keyed by taxon identifier. Query helpers rank organisms by
// interaction count and interactors by degree; ExportNetwork serializes one
// organism's graph through the netfile edge-list format.
package biogrid
