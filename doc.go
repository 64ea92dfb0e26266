// Package protsim finds maximal common substructures of protein topology
// graphs.
//
// Two graphs whose vertices are secondary-structure elements and whose edges
// are spatial relations are combined into a product graph. Every maximal
// clique of that product graph is a common substructure, reported as a pair
// of original vertex ID lists.
//
// The module is organized in stages:
//
//	core/         - attributed undirected Graph, the shared data model
//	gml/          - GML reader and writer for core graphs
//	compat/       - edge-pair compatibility rules and alignments
//	productgraph/ - product graph construction and DOT export
//	clique/       - Bron–Kerbosch maximal clique enumeration
//	result/       - selection, projection, deduplication and alignment
//	similarity/   - one comparison run from two graphs to a Report
//	output/       - JSON lines, reports, mapping files, GML exports
//	config/       - defaults, HCL/YAML/legacy config files, validation
//	metrics/      - Prometheus collectors for comparison runs
//	builder/      - synthetic topology generators for tests and benchmarks
//	cmd/protsim/  - the command line
//
// Quick example, two triangles of helices:
//
//	1───2        11───12
//	 \ /           \ /
//	  3             13
//
// share one substructure of three vertices, found six times (once per
// automorphism) and reported once with permutation filtering:
//
//	{"first":[1,2,3],"second":[11,12,13]}
package protsim
