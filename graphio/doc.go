// Package graphio reads and writes graphs in a small edge-list text format:
//
//	# comment until end of line
//	vertices 8
//	0-1 1-2 2-0
//	3-4-5-6, 7
//
// A run "a-b-c" adds the edges a—b and b—c; a bare label declares an
// isolated vertex. Runs may be separated by whitespace, commas or
// semicolons. The optional "vertices n" header fixes the order; without it
// the order is one more than the largest label.
//
// Labels are 0-based unless WithOneBased is given. Syntax errors wrap
// ErrSyntax, labels outside the declared range wrap ErrBadLabel and graph
// construction errors wrap the core sentinels.
package graphio
