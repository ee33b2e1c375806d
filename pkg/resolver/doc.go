// Package resolver computes the order in which rules are installed.
//
// A Graph is built from a set of requested root identifiers and a lookup
// callback that returns each rule's dependency declaration. Forward deps
// become predecessor edges directly. Post deps are inverted at construction
// time: when rule A lists B as a post dependency, B gets A as a predecessor.
// Both directions are followed transitively, so every rule reachable from a
// root ends up in the graph.
//
// Resolve linearizes the graph with an iterative depth-first traversal that
// keeps an explicit work stack and colors every node unvisited, in progress
// or resolved. A node is emitted once all its predecessors are resolved.
// Meeting an in-progress node again with unresolved predecessors means the
// node is its own ancestor; the traversal stops and reports the cycle as a
// path that starts and ends at the same identifier, e.g. "a -> b -> c -> a",
// where each arrow reads "depends on".
//
// Predecessors are visited in lexical order, which makes the output fully
// deterministic for a given graph.
package resolver
