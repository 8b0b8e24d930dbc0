package cli

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/astrogator/internal/domain"
)

// sortAliases maps the names a user may type for --sort to sort keys
var sortAliases = map[string]domain.SortKey{
	"name":           domain.SortName,
	"destination":    domain.SortName,
	"transfer":       domain.SortName,
	"position":       domain.SortPosition,
	"order":          domain.SortPosition,
	"#":              domain.SortPosition,
	"time":           domain.SortTime,
	"time till burn": domain.SortTime,
	"burn":           domain.SortTime,
	"deltav":         domain.SortDeltaV,
	"delta-v":        domain.SortDeltaV,
	"dv":             domain.SortDeltaV,
	"δv":             domain.SortDeltaV,
}

// aliasNames is the sorted alias list, so ties between equally close
// matches resolve the same way every time
var aliasNames = func() []string {
	names := make([]string, 0, len(sortAliases))
	for name := range sortAliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}()

// ResolveSortKey turns a loosely typed column name into a sort key.
// Exact aliases win; otherwise the closest fuzzy match is used.
func ResolveSortKey(query string) (domain.SortKey, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, fmt.Errorf("%w: empty name", domain.ErrInvalidSortKey)
	}
	if k, ok := sortAliases[q]; ok {
		return k, nil
	}

	ranks := fuzzy.RankFindFold(q, aliasNames)
	if len(ranks) == 0 {
		return 0, fmt.Errorf("%w: %q (try name, position, time or deltav)", domain.ErrInvalidSortKey, query)
	}
	sort.Stable(ranks)
	return sortAliases[ranks[0].Target], nil
}
