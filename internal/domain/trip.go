package domain

// TripEventCounts holds the billable discrete events on a trip.
// Counts are expected to be non-negative; no upper bound is enforced.
type TripEventCounts struct {
	BorderCrossings int `json:"border_crossings"`
	Pickups         int `json:"pickups"`
	Drops           int `json:"drops"`
	DropHooks       int `json:"drop_hooks"`
}

// DefaultTripEventCounts describes a simple point-to-point trip.
func DefaultTripEventCounts() TripEventCounts {
	return TripEventCounts{
		BorderCrossings: 0,
		Pickups:         1,
		Drops:           1,
		DropHooks:       0,
	}
}

// Stops returns the number of stops billed at the per-stop fee.
func (e TripEventCounts) Stops() int {
	return e.Pickups + e.Drops
}
