// Package dsu provides a disjoint-set (union-find) forest over the integer
// universe 0..n-1 with path compression and union by rank.
//
// Operations
//
//	New(n)          – n singleton classes
//	Find(x)         – class representative of x
//	Unite(x, y)     – merge the classes of x and y; true iff they were distinct
//	Same(x, y)      – whether x and y share a class
//	Count(x)        – size of x's class
//	Sets()          – all classes, each ascending, ordered by smallest member
//
// There is no removal. Every operation runs in amortized O(α(n)).
//
// An index outside [0,n) is a programming error: the call panics with an
// error wrapping ErrOutOfRange.
package dsu
