// Package algostep turns classic algorithms into replayable step logs.
//
// What is algostep?
//
//	Every algorithm here runs to completion on its input and records each
//	elementary action it takes as a typed step:
//		• Sorting: bubble, quick, merge, insertion, selection, heap
//		• Searching: binary, linear
//		• Graphs: BFS, DFS, Dijkstra, Prim, Kruskal
//		• Trees: BST insert/search, AVL insert, in/pre/post-order traversal
//
//	The resulting log is an append-only sequence that a player replays at
//	a chosen speed, with pause, resume, single-step in both directions and
//	reset. Equal input always yields an equal log.
//
// Packages:
//
//	step/         - the step vocabulary, Log and Recorder
//	core/         - edge-list Graph and the text input parsers
//	sorting/, search/, bfs/, dfs/, dijkstra/, prim_kruskal/, tree/
//	              - the algorithms, each emitting through a step.Recorder
//	unionfind/    - disjoint sets for Kruskal
//	algorithms/   - the registry of identifiers and the Run dispatcher
//	builder/      - seeded random arrays, graphs, trees and targets
//	player/       - cadence, playback state machine, metrics
//	render/       - Board state, lipgloss terminal renderer, ASCII plots
//	config/       - YAML settings file
//	cmd/algostep/ - the command line tool
//
// Quick example:
//
//	5,3,8,1  --bubble-->  compare [0 1], swap [0 1] [3 5 8 1], compare [1 2], ...
//
//	algostep steps bubble --array 5,3,8,1
//	algostep play dijkstra --graph "0,1,4;1,2,3;2,0,5"
package algostep
