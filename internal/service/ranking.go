package service

import (
	"sort"

	"tripcost/internal/domain"
)

// RankBy selects how driver options are ordered.
type RankBy string

const (
	RankNone   RankBy = ""
	RankCost   RankBy = "cost"   // lowest fully allocated cost first
	RankMargin RankBy = "margin" // highest margin first
)

// Valid reports whether r names a supported ranking.
func (r RankBy) Valid() bool {
	return r == RankCost || r == RankMargin
}

// RankOptions returns a sorted copy of options. Ties are broken by cost,
// then by driver type order, then by label.
func RankOptions(options []domain.DriverOption, by RankBy) []domain.DriverOption {
	ranked := make([]domain.DriverOption, len(options))
	copy(ranked, options)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if by == RankMargin {
			if ma, mb := a.Cost.Margin(), b.Cost.Margin(); ma != mb {
				return ma > mb
			}
		}
		if ca, cb := a.Cost.FullyAllocatedCost, b.Cost.FullyAllocatedCost; ca != cb {
			return ca < cb
		}
		if oa, ob := a.DriverType.Order(), b.DriverType.Order(); oa != ob {
			return oa < ob
		}
		return a.Label < b.Label
	})

	return ranked
}
