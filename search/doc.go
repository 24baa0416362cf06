// SPDX-License-Identifier: MIT

// Package search implements point-to-point searches over a core.Graph:
// depth-first, breadth-first, greedy best-first and Dijkstra, plus an A*
// entry point that reports ErrNotImplemented.
//
// Every search shares one contract:
//
//	res, err := search.Dijkstra(g, "1,1", "7,7")
//	if err != nil { ... }          // nil graph, unknown endpoint, hook error, ctx
//	if res.Found() {
//	    fmt.Println(res.Path, res.Cost)
//	} else {
//	    fmt.Println(res.Visited)   // goal unreachable: full visitation trace
//	}
//
// Result.Kind distinguishes a reconstructed path (KindPath) from an exhausted
// frontier (KindTrace). Result.Visited always carries the order in which
// vertices were finalized, so a caller can animate the exploration.
//
// Determinism:
//   - Neighbors are expanded in edge-insertion order.
//   - DFS pushes neighbors in reverse so the first declared neighbor is
//     explored first.
//   - Frontier duplicates are tolerated and skipped when popped.
//
// Concurrency:
//   - All per-call state (frontier, visited set, labels) lives in a walker
//     created by the call, so repeated and concurrent searches on one graph
//     are safe.
//   - The context passed via WithContext is checked once per frontier pop.
//
// Complexity:
//   - DFS/BFS: O(V + E) time and memory.
//   - Best-first/Dijkstra: O((V + E) log V) with lazy duplicate entries.
package search
