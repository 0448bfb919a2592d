// Package cluster builds the overlap graph over candidate signals and
// extracts its connected components.
//
// Two candidates are linked when their grouping key matches (direction alone,
// or direction plus currency pair) and their half-open time intervals
// intersect. Components are found with a disjoint-set structure over the
// candidate indices; a signal with no overlapping partner forms a singleton
// component. A component is a transitive closure: its first and last members
// need not overlap directly, a chain of pairwise overlaps is enough.
package cluster
