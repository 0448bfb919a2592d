// Package resolver selects one representative signal per overlap cluster and
// assembles the final ordered output table.
//
// Inside a cluster the representative is the member with the highest
// practical score, then the most recent source date, then the lowest input
// index, so reruns on identical input produce identical output. Two
// cross-cluster strategies are supported: one winner per connected component,
// or a greedy global schedule that skips winners conflicting with already
// accepted ones.
package resolver
