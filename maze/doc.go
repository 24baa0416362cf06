// Package maze generates perfect mazes by randomized clustering and turns
// them into graphs for the search package.
//
// What:
//
//   - Grid is a width×height array of Cell codes (Passage, Wall, Start, Goal).
//   - Generator.Clustering carves a maze: every interior odd/odd cell starts
//     as its own cluster, and walls between cells of different clusters are
//     knocked down at random until one cluster spans the interior.
//   - ToGraph converts a Grid into a weighted undirected *core.Graph with
//     "x,y" vertex IDs and core.Point payloads.
//   - ConnectedComponents groups open cells into 4-connected regions.
//   - Index snaps arbitrary coordinates to the nearest open cell (R-tree).
//
// Determinism:
//
//   - A Generator owns its random sources; two generators built from the
//     same seed produce identical mazes for the same sequence of calls.
//
// Complexity:
//
//   - Clustering: each merge relabels the whole grid, O(W×H) per merge and
//     O((W×H)²) worst case overall.
//   - ToGraph, ConnectedComponents: O(W×H).
//   - Index.Nearest: O(log N) expected.
//
// Errors:
//
//   - ErrEvenDimension, ErrTooSmall: invalid Clustering sizes.
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell: invalid ParseGrid input.
//   - ErrOutOfBounds, ErrNotOpen: invalid coordinates for Set/PlaceStart/PlaceGoal.
package maze
