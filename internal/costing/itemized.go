package costing

import "tripcost/internal/domain"

const hoursPerDay = 24.0

// ItemizedOptions configures ComputeItemized. A nil count means "use the
// default": one pickup and one delivery.
type ItemizedOptions struct {
	Pickups         *int    `json:"pickups,omitempty"`
	Deliveries      *int    `json:"deliveries,omitempty"`
	DropHooks       int     `json:"drop_hooks"`
	IncludeOverhead bool    `json:"include_overhead"`
	TruckWeeklyCost float64 `json:"truck_weekly_cost"`
}

// DefaultItemizedOptions returns options for a simple point-to-point trip.
func DefaultItemizedOptions() ItemizedOptions {
	return ItemizedOptions{}
}

// Count returns a pointer to n, for filling ItemizedOptions literals.
func Count(n int) *int {
	return &n
}

func (o ItemizedOptions) pickups() int {
	if o.Pickups == nil {
		return 1
	}
	return *o.Pickups
}

func (o ItemizedOptions) deliveries() int {
	if o.Deliveries == nil {
		return 1
	}
	return *o.Deliveries
}

// DurationDays estimates trip length in days from distance alone.
func (c *Calculator) DurationDays(distanceMiles float64) float64 {
	if c.rates.AverageSpeedMPH <= 0 {
		return 0
	}
	return distanceMiles / c.rates.AverageSpeedMPH / hoursPerDay
}

// ComputeItemized re-expresses the core calculation as a line-item cost
// statement. It always delegates to Compute, so both views agree on the
// trip total.
func (c *Calculator) ComputeItemized(driverType domain.DriverType, distanceMiles float64, pickupLocation, deliveryLocation string, opts ItemizedOptions) domain.ItemizedTripCost {
	r := c.rates
	driverType = driverType.Normalize()

	crossBorder := c.border.IsCrossBorder(pickupLocation, deliveryLocation)
	events := domain.TripEventCounts{
		Pickups:   opts.pickups(),
		Drops:     opts.deliveries(),
		DropHooks: opts.DropHooks,
	}
	if crossBorder {
		events.BorderCrossings = 1
	}

	duration := c.DurationDays(distanceMiles)
	driver := domain.DriverProfile{
		Type:            driverType,
		WeeklyTruckCost: opts.TruckWeeklyCost,
	}
	core := c.Compute(driver, distanceMiles, duration, events)
	b := core.Breakdown

	mileage := domain.MileageCosts{
		Wage:            b.Labor,
		Fuel:            b.Fuel,
		BenefitsRate:    r.Loading.Benefits,
		PerformanceRate: r.Loading.Performance,
		SafetyRate:      r.Loading.Safety,
		StepRate:        r.Loading.Step,
		TruckMaint:      b.Maintenance,
	}
	mileage.Subtotal = mileage.Wage + mileage.Fuel +
		mileage.Benefits + mileage.Performance + mileage.Safety + mileage.Step +
		mileage.TruckMaint + mileage.TrailerMaint

	// Per-type amounts sum to the core events bucket.
	eventCosts := domain.EventCosts{
		Pickup:         float64(events.Pickups) * r.PerStopFee,
		Delivery:       float64(events.Drops) * r.PerStopFee,
		BorderCrossing: float64(events.BorderCrossings) * r.BorderCrossingFee,
		DropHook:       float64(events.DropHooks) * r.DropHookFee,
	}
	eventCosts.Subtotal = eventCosts.Pickup + eventCosts.Delivery +
		eventCosts.BorderCrossing + eventCosts.DropHook

	result := domain.ItemizedTripCost{
		DriverType:     driverType,
		DistanceMiles:  distanceMiles,
		DurationDays:   duration,
		CrossBorder:    crossBorder,
		MileageCosts:   mileage,
		EventCosts:     eventCosts,
		DirectTripCost: core.TotalCost - b.Fixed,
		TotalCPM:       perMile(core.TotalCost, distanceMiles),
	}

	if opts.IncludeOverhead {
		result.WeeklyOverhead = c.weeklyOverhead(opts.TruckWeeklyCost)
		result.FullyAllocatedCost = core.TotalCost
	} else {
		result.FullyAllocatedCost = result.DirectTripCost
	}
	result.RecommendedRevenue = result.FullyAllocatedCost * r.TargetMarkup

	return result
}

// weeklyOverhead spreads the weekly fixed costs over seven days.
// DailyTotal times the trip duration equals the core fixed bucket.
func (c *Calculator) weeklyOverhead(truckWeeklyCost float64) *domain.WeeklyOverhead {
	o := c.rates.WeeklyOverhead
	return &domain.WeeklyOverhead{
		Insurance:       o.Insurance / daysPerWeek,
		TrailerLease:    o.TrailerLease / daysPerWeek,
		SGA:             o.SGA / daysPerWeek,
		DispatchOps:     o.DispatchOps / daysPerWeek,
		TollTransponder: o.TollTransponder / daysPerWeek,
		ELDSubscription: o.ELDSubscription / daysPerWeek,
		Misc:            o.Misc / daysPerWeek,
		TruckCost:       truckWeeklyCost / daysPerWeek,
		DailyTotal:      (o.Total() + truckWeeklyCost) / daysPerWeek,
	}
}
