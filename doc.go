// Package lvmaze is an in-memory toolkit for carving, exploring and solving
// grid mazes: seeded randomness, a small graph core, classic searches and
// Perlin-noise terrain.
//
// What is inside?
//
//	A deterministic, zero-global-state library built from small packages:
//		• rng     – 128-bit xorshift PRNG and Fisher–Yates shuffle
//		• pq      – min/max binary heap with a pluggable comparator
//		• core    – thread-safe graph (undirected, directed, weighted)
//		• search  – DFS, BFS, best-first, Dijkstra (A* reserved)
//		• maze    – grid model, clustering generator, grid → graph, nearest cell
//		• noise   – Perlin noise with seamless 2D/3D tiling
//		• builder – deterministic graph fixtures for tests and benchmarks
//
// The command in cmd/lvmaze wires all of them into a terminal front end.
//
// Same seed, same maze:
//
//	gen, _ := maze.NewGenerator(rng.DefaultSeed)
//	gr, _ := gen.Clustering(7, 5)
//	_ = gr.PlaceStart(1, 1)
//	_ = gr.PlaceGoal(5, 3)
//	g, _ := maze.ToGraph(gr)
//	res, _ := search.Dijkstra(g, "1,1", "5,3")
//
//	#######
//	#S    #
//	### # #
//	#   #G#
//	#######
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
