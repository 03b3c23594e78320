// Package navtree filters expanded path sets and folds them into the
// hierarchical structures the renderer consumes: nested trees of Leaf and
// Branch nodes, and per-depth Level groups for navigation bars.
//
// Inputs are flat, sorted path sequences as produced by pathset.Expand;
// lexicographic order guarantees that a parent directory sorts immediately
// before its descendants, which is the precondition the tree builder relies
// on. Construction walks the sequence with an explicit cursor and never
// mutates its input.
package navtree
