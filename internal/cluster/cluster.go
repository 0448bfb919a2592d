package cluster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beru3/historycal-sub001/internal/model"
)

// Key selects the fields that must match before two candidates are even
// considered for overlap.
type Key int

const (
	// KeyDirection links candidates by direction alone, regardless of pair.
	KeyDirection Key = iota

	// KeyDirectionPair additionally requires the same currency pair.
	KeyDirectionPair
)

// ParseKey parses a config value into a Key.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direction":
		return KeyDirection, nil
	case "direction+pair":
		return KeyDirectionPair, nil
	}
	return 0, fmt.Errorf("unknown overlap key %q", s)
}

// Options configures component extraction.
type Options struct {
	Key Key

	// DropSingletons removes size-1 components from the result, leaving
	// only clusters with at least one duplicate.
	DropSingletons bool
}

// Overlaps is the edge predicate: key match plus interval intersection.
// Touching endpoints (a.Exit == b.Entry) do not connect.
func Overlaps(a, b model.Candidate, key Key) bool {
	if a.Direction != b.Direction {
		return false
	}
	if key == KeyDirectionPair && a.Pair != b.Pair {
		return false
	}
	return a.Overlaps(b)
}

// Components partitions the candidates into connected components of the
// overlap graph. Every candidate lands in exactly one component (unless
// singletons are dropped). Each component lists candidate indices in
// ascending order; components are ordered by their smallest index.
//
// Edge detection is the plain pairwise O(N²) test; input sizes are at most a
// few thousand rows.
func Components(cands []model.Candidate, opts Options) [][]int {
	n := len(cands)
	if n == 0 {
		return nil
	}

	u := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if Overlaps(cands[i], cands[j], opts.Key) {
				u.union(i, j)
			}
		}
	}

	byRoot := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		root := u.find(i)
		byRoot[root] = append(byRoot[root], i)
	}

	comps := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		if opts.DropSingletons && len(members) < 2 {
			continue
		}
		comps = append(comps, members)
	}
	sort.Slice(comps, func(a, b int) bool {
		return comps[a][0] < comps[b][0]
	})
	return comps
}
