// Package dimacs reads graphs in the DIMACS .col format used by the
// classic graph-coloring benchmark sets:
//
//	c   optional comment lines
//	p edge N M     exactly one problem line, N vertices and M edges
//	e u v          one line per edge, vertices numbered 1..N
//
// Parse maps vertex u of the file onto core.VertexID u−1 of the returned
// graph. Duplicate edge lines are tolerated; self-loops and out-of-range
// vertex numbers are not.
package dimacs
