// Package netfile reads and writes graphs as two-column delimited edge
// lists, the interchange format used by the experiment tooling:
//
//	0	1
//	0	2
//	1	0
//
// Each row is one adjacency entry, identifier pair separated by a delimiter
// (tab by default). Undirected graphs serialize every edge as both
// orderings, directed graphs as one. Nodes reach the file only through
// their edges, so isolated nodes are not represented. Importing is
// tolerant: rows without exactly two columns are skipped and duplicate
// inserts are suppressed, so a pre-deduplicated file is not required.
//
// Identifiers are written in raw form (no quoting): numeric identifiers as
// decimal, textual ones verbatim. On import a token that parses as a base-10
// integer becomes a numeric identifier; anything else becomes textual. A
// textual identifier whose value looks like a number therefore does not
// survive a round trip unchanged; the generators and the interaction
// database never produce such identifiers.
package netfile
