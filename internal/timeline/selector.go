package timeline

import (
	"math"
	"strings"
)

// introSkip is how many leading paragraphs are assumed to be
// introduction and character-listing boilerplate.
const introSkip = 4

// Keywords mark a paragraph as containing narrative action worth a
// timeline entry.
var Keywords = []string{
	"met", "arrived", "discovered", "realized", "confessed", "revealed",
	"ball", "dance", "party", "letter", "visit",
}

// IsCandidate reports whether a paragraph mentions one of the given
// character names or action keywords. Matching is case-insensitive
// substring matching; empty names are skipped.
func IsCandidate(paragraph string, names []string, keywords []string) bool {
	p := strings.ToLower(paragraph)
	for _, name := range names {
		if name != "" && strings.Contains(p, strings.ToLower(name)) {
			return true
		}
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(p, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// selectSignificant picks up to target paragraph indices to become
// timeline events. Candidate paragraphs (character mentions or keywords)
// are preferred; when too few exist, the selection falls back to the
// whole post-introduction range.
func (g *Generator) selectSignificant(paragraphs []string, target int) []int {
	if len(paragraphs) == 0 {
		return nil
	}
	startIdx := introSkip
	if startIdx > len(paragraphs)-1 {
		startIdx = len(paragraphs) - 1
	}

	names := make([]string, 0, len(g.characters))
	for _, c := range g.characters {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}

	var candidates []int
	for i := startIdx; i < len(paragraphs); i++ {
		if IsCandidate(paragraphs[i], names, Keywords) {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) >= target {
		return g.distribute(candidates, target, startIdx, len(paragraphs))
	}

	all := make([]int, 0, len(paragraphs)-startIdx)
	for i := startIdx; i < len(paragraphs); i++ {
		all = append(all, i)
	}
	return g.distribute(all, target, startIdx, len(paragraphs))
}

// distribute spreads the selection across target equal-width sections of
// [start, end) so events cover the whole story rather than clustering.
// A section with no candidate borrows the candidate closest to its
// midpoint.
func (g *Generator) distribute(candidates []int, target, start, end int) []int {
	if len(candidates) <= target {
		return candidates
	}

	sectionSize := float64(end-start) / float64(target)
	selected := make([]int, 0, target)
	for i := 0; i < target; i++ {
		lo := start + int(float64(i)*sectionSize)
		hi := start + int(float64(i+1)*sectionSize)

		var section []int
		for _, idx := range candidates {
			if idx >= lo && idx < hi {
				section = append(section, idx)
			}
		}
		if len(section) > 0 {
			selected = append(selected, section[g.rng.IntN(len(section))])
			continue
		}

		mid := float64(lo+hi) / 2
		best, bestDist := candidates[0], math.Abs(float64(candidates[0])-mid)
		for _, idx := range candidates[1:] {
			if d := math.Abs(float64(idx) - mid); d < bestDist {
				best, bestDist = idx, d
			}
		}
		selected = append(selected, best)
	}
	return selected
}
