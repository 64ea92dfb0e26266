// Package gml reads and writes graphs in the subset of the Graph Modelling
// Language used by protein topology graph files.
//
// Accepted input:
//
//	# comment
//	graph [
//	  directed 0
//	  label "1abc-A"
//	  node [ id 1  sse_type "H"  num_residues 12 ]
//	  edge [ source 1  target 2  spatial "p" ]
//	]
//
// Node "id" becomes core.Vertex.ID; every other scalar becomes an attribute,
// with numbers kept in their literal spelling. Edge "source" and "target"
// name node ids; remaining scalars become edge attributes. Nested lists such
// as "graphics" are skipped. Edges are always undirected, whatever
// "directed" says. The graph "label" becomes the graph name.
//
// Errors carry the input line as *SyntaxError.
package gml
