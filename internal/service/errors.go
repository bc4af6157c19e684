package service

import "errors"

var (
	// ErrUnknownRegion is returned when no rate table exists for a region.
	ErrUnknownRegion = errors.New("unknown rate region")

	// ErrInvalidRegion is returned when a region name is empty.
	ErrInvalidRegion = errors.New("invalid rate region")

	// ErrRateStoreDisabled is returned when writing rates without a configured store.
	ErrRateStoreDisabled = errors.New("rate table store is disabled")

	// ErrInvalidRankBy is returned when a comparison asks for an unknown ranking.
	ErrInvalidRankBy = errors.New("invalid rank_by")
)
