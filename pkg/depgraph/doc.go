// Package depgraph builds the directory-level dependency graph of a C/C++
// tree.
//
// # Overview
//
// Nodes are directory identifiers (slash-separated paths relative to the
// analysis root). An edge from A to B exists when some file in A includes a
// header that lives in B. Each edge carries the set of header file names
// responsible for it, so a report can say not only that core depends on
// utils but through which headers:
//
//	core -> utils (via: log.h, u.h)
//
// Parallel edges collapse into one: the graph is a simple directed graph
// whose edge labels are header sets.
//
// # Building
//
// [Build] walks the analysis root, extracts quoted includes from each file
// with [scan.Extractor] and folds the results into a [Graph]. The fold is a
// set union keyed by directory pair, so the file order never changes the
// result; [Options.Jobs] can scan files in parallel for large trees.
//
// Broken includes abort the build with an
// [github.com/matzehuels/includecycle/pkg/errors.IntegrityError]. Files that
// cannot be read are logged and skipped.
//
// # Invariants
//
//   - No edge has From == To; [Graph.Add] rejects self-loops.
//   - Every header on an edge was verified on disk by the extractor.
//   - Every listing ([Graph.Nodes], [Graph.Edges], [Graph.Headers],
//     [Graph.Targets]) is sorted, so output is reproducible.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. [Build] serialises its own
// writes; once returned the graph is only read.
package depgraph
