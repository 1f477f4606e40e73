package recommend

import (
	"sort"

	"github.com/samber/lo"

	"github.com/traction-team/korail-mate/backend/internal/model/recommend"
)

// SortKey selects the results screen's re-sort mode.
type SortKey string

const (
	SortRelevance SortKey = "RELEVANCE"
	SortPriceLow  SortKey = "PRICE_LOW"
)

// PurposeAll disables the results screen's purpose filter.
const PurposeAll = "ALL"

// Score computes the relevance of one package against the query:
// 3 for a region hit, 2 for a period hit, 1 per shared purpose.
func Score(query recommend.Input, p recommend.PackageItem) int {
	score := 0
	if p.Region == query.Region1 {
		score += 3
	}
	if p.Period == query.Period {
		score += 2
	}
	return score + len(lo.Intersect(p.Purposes, query.Purposes))
}

// Match scores the catalog against the query, drops non-matches (score 0)
// and orders the rest by descending score. The sort is stable: catalog order
// is preserved among equal scores, for reproducibility.
func Match(query recommend.Input, catalog []recommend.PackageItem) []recommend.PackageItem {
	type scored struct {
		item  recommend.PackageItem
		score int
	}

	ranked := lo.FilterMap(catalog, func(p recommend.PackageItem, _ int) (scored, bool) {
		s := Score(query, p)
		return scored{item: p, score: s}, s > 0
	})

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	return lo.Map(ranked, func(s scored, _ int) recommend.PackageItem { return s.item })
}

// Refine is the results screen's display-layer pass over an already-matched
// set: optional single-purpose filter and optional ascending price re-sort.
// It never re-runs the match.
func Refine(items []recommend.PackageItem, purpose string, key SortKey) []recommend.PackageItem {
	out := append([]recommend.PackageItem(nil), items...)

	if purpose != "" && purpose != PurposeAll {
		out = lo.Filter(out, func(p recommend.PackageItem, _ int) bool {
			return lo.Contains(p.Purposes, purpose)
		})
	}

	if key == SortPriceLow {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	}

	return out
}

// PurposeOptions lists the filter choices for a matched set: ALL first, then
// each distinct purpose in first-seen order.
func PurposeOptions(items []recommend.PackageItem) []string {
	all := lo.FlatMap(items, func(p recommend.PackageItem, _ int) []string { return p.Purposes })
	return append([]string{PurposeAll}, lo.Uniq(all)...)
}
