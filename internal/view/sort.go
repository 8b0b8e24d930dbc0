package view

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/mmcdole/astrogator/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortTransfers returns a sorted copy of entries. The input slice is never
// modified. Sorting is stable; descending order reverses the ascending result
// as a whole, so ties come out reversed too.
//
// Absent destinations sort as the empty name and absent burns as zero, so
// transfers without a destination come first when sorting by name ascending.
// An unknown key leaves the model order untouched.
func SortTransfers(entries []*domain.Transfer, key domain.SortKey, descending bool) []*domain.Transfer {
	transfers := slices.Clone(entries)

	switch key {
	case domain.SortName:
		c := collate.New(language.English)
		slices.SortStableFunc(transfers, func(a, b *domain.Transfer) int {
			return c.CompareString(a.DestinationName(), b.DestinationName())
		})
	case domain.SortPosition:
		// Model order
	case domain.SortTime:
		slices.SortStableFunc(transfers, func(a, b *domain.Transfer) int {
			return cmp.Compare(a.BurnTime(), b.BurnTime())
		})
	case domain.SortDeltaV:
		slices.SortStableFunc(transfers, func(a, b *domain.Transfer) int {
			return cmp.Compare(a.DeltaV(), b.DeltaV())
		})
	default:
		slog.Warn("bad sort argument", "key", key.String())
	}

	if descending {
		slices.Reverse(transfers)
	}
	return transfers
}

// OnColumnClicked returns the sort state after the user picks a column.
// Picking the active column flips the direction; picking another one makes
// it active in ascending order.
func OnColumnClicked(state domain.SortState, clicked domain.SortKey) domain.SortState {
	if state.Key == clicked {
		state.Descending = !state.Descending
		return state
	}
	return domain.SortState{Key: clicked, Descending: false}
}
