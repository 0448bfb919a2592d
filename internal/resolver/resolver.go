package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beru3/historycal-sub001/internal/model"
)

// Strategy selects how cluster representatives become output rows.
type Strategy int

const (
	// PerComponent keeps exactly one winner per connected component.
	// This is the default: every cluster is represented in the output.
	PerComponent Strategy = iota

	// GreedyGlobal orders components by (size desc, best score desc) and
	// accepts a winner only if its interval conflicts with no winner
	// accepted so far. Produces a pairwise non-overlapping schedule,
	// possibly with fewer rows than components.
	GreedyGlobal
)

// ParseStrategy parses a config value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per_component":
		return PerComponent, nil
	case "greedy_global":
		return GreedyGlobal, nil
	}
	return 0, fmt.Errorf("unknown resolution strategy %q", s)
}

// Resolve picks a representative for each component and returns the final
// table: sorted by entry time, renumbered from 1, exit recomputed from the
// holding period where one is known. Empty input yields an empty table.
func Resolve(cands []model.Candidate, comps [][]int, strategy Strategy) []model.ResolvedEntry {
	if len(cands) == 0 || len(comps) == 0 {
		return nil
	}

	var winners []model.Candidate
	switch strategy {
	case GreedyGlobal:
		winners = resolveGreedy(cands, comps)
	default:
		winners = make([]model.Candidate, 0, len(comps))
		for _, comp := range comps {
			winners = append(winners, cands[best(cands, comp)])
		}
	}

	sort.Slice(winners, func(a, b int) bool {
		if winners[a].Entry != winners[b].Entry {
			return winners[a].Entry < winners[b].Entry
		}
		return winners[a].Index < winners[b].Index
	})

	out := make([]model.ResolvedEntry, len(winners))
	for i, w := range winners {
		if w.HoldingMin > 0 {
			w.Exit = w.Entry.AddMinutes(w.HoldingMin)
		}
		out[i] = model.ResolvedEntry{Seq: i + 1, Candidate: w}
	}
	return out
}

// best returns the index of the component's representative: highest practical
// score, then latest source date, then lowest input index.
func best(cands []model.Candidate, comp []int) int {
	winner := comp[0]
	for _, idx := range comp[1:] {
		if ranksAbove(cands[idx], cands[winner]) {
			winner = idx
		}
	}
	return winner
}

func ranksAbove(a, b model.Candidate) bool {
	if a.PracticalScore != b.PracticalScore {
		return a.PracticalScore > b.PracticalScore
	}
	if !a.SourceDate.Equal(b.SourceDate) {
		return a.SourceDate.After(b.SourceDate)
	}
	return a.Index < b.Index
}

// resolveGreedy implements the global schedule-packing pass. The conflict
// test is the bare interval overlap, ignoring the grouping key: two accepted
// entry points must never occupy the same wall-clock window.
func resolveGreedy(cands []model.Candidate, comps [][]int) []model.Candidate {
	type ranked struct {
		size int
		rep  model.Candidate
	}

	reps := make([]ranked, 0, len(comps))
	for _, comp := range comps {
		reps = append(reps, ranked{size: len(comp), rep: cands[best(cands, comp)]})
	}
	sort.Slice(reps, func(a, b int) bool {
		if reps[a].size != reps[b].size {
			return reps[a].size > reps[b].size
		}
		if reps[a].rep.PracticalScore != reps[b].rep.PracticalScore {
			return reps[a].rep.PracticalScore > reps[b].rep.PracticalScore
		}
		return reps[a].rep.Index < reps[b].rep.Index
	})

	var chosen []model.Candidate
	for _, r := range reps {
		conflict := false
		for _, c := range chosen {
			if r.rep.Overlaps(c) {
				conflict = true
				break
			}
		}
		if !conflict {
			chosen = append(chosen, r.rep)
		}
	}
	return chosen
}
