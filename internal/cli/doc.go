// SPDX-License-Identifier: MIT

// Package cli implements the lvmaze command-line interface.
//
// The CLI is the terminal front end for the maze, search and noise packages.
// It carves or loads grids, solves them, prints styled renderings, replays a
// search step by step and exports maze graphs as Graphviz documents.
//
// # Commands
//
//   - generate: carve a clustering maze and print it
//   - noise: threshold a seamless Perlin field into a grid
//   - solve: search a grid from start to goal and print the overlay
//   - play: replay a search interactively
//   - dot: export the maze graph as DOT or SVG
//
// # Configuration
//
// Defaults come from DefaultConfig. --config loads a TOML or YAML file
// (chosen by extension) and flags given on the command line override it.
// The merged Config is validated before any command runs.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli
