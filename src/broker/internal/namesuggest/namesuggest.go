// Package namesuggest finds the closest existing name to a missing one, so
// validation errors can point at likely typos.
package namesuggest

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Suggestions further away than this fraction of the query length are noise.
const _maxDistanceRatio = 0.5

// Closest returns the candidate with the smallest edit distance to want,
// or "" when no candidate is close enough to be a plausible typo.
func Closest(want string, candidates []string) string {
	if want == "" || len(candidates) == 0 {
		return ""
	}

	dmp := diffmatchpatch.New()
	best := ""
	bestDist := -1
	for _, c := range candidates {
		if c == want {
			return c
		}
		diffs := dmp.DiffMain(strings.ToLower(want), strings.ToLower(c), false)
		dist := dmp.DiffLevenshtein(diffs)
		if bestDist == -1 || dist < bestDist {
			best = c
			bestDist = dist
		}
	}

	limit := int(float64(len(want)) * _maxDistanceRatio)
	if limit < 1 {
		limit = 1
	}
	if bestDist > limit {
		return ""
	}
	return best
}
