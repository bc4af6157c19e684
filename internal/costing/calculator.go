package costing

import "tripcost/internal/domain"

const daysPerWeek = 7.0

// Calculator computes trip costs from an immutable rate table.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rates  RateTable
	border BorderDetector
}

// NewCalculator creates a Calculator over a copy of rates.
func NewCalculator(rates RateTable) *Calculator {
	return &Calculator{
		rates:  rates.Clone(),
		border: DefaultBorderDetector(),
	}
}

// NewCalculatorWithDetector creates a Calculator using a custom border detector.
func NewCalculatorWithDetector(rates RateTable, border BorderDetector) *Calculator {
	return &Calculator{
		rates:  rates.Clone(),
		border: border,
	}
}

// Rates returns a copy of the calculator's rate table.
func (c *Calculator) Rates() RateTable {
	return c.rates.Clone()
}

// IsCrossBorder checks two locations with the calculator's detector.
func (c *Calculator) IsCrossBorder(pickup, delivery string) bool {
	return c.border.IsCrossBorder(pickup, delivery)
}

// Compute returns the five-bucket cost of a trip.
//
// Inputs are not validated: negative distance or duration propagate into
// the result. An unknown driver type is costed as the default type.
func (c *Calculator) Compute(driver domain.DriverProfile, distanceMiles, durationDays float64, events domain.TripEventCounts) domain.CostResult {
	driverType := driver.Type.Normalize()
	r := c.rates

	fixed := ((r.WeeklyFixedOverhead() + driver.WeeklyTruckCost) / daysPerWeek) * durationDays
	maintenance := distanceMiles * r.MaintenancePerMile()
	fuel := distanceMiles * r.FuelRatePerMile(driverType)

	wageRate := r.WageRatePerMile(driverType, distanceMiles)
	labor := distanceMiles * wageRate * r.LaborMultiplier()

	eventCost := c.eventCost(events)

	breakdown := domain.CostBreakdown{
		Fixed:       fixed,
		Labor:       labor,
		Fuel:        fuel,
		Maintenance: maintenance,
		Events:      eventCost,
	}
	total := breakdown.Total()

	cpm := perMile(total, distanceMiles)
	classification := domain.ClassificationStandard
	if cpm > r.HighCostCPMThreshold {
		classification = domain.ClassificationHighCost
	}

	zone := domain.ZoneNone
	if driverType == domain.DriverTypeOwnerOperator {
		zone = r.OwnerOperatorZone(distanceMiles)
	}

	return domain.CostResult{
		TotalCost: total,
		Breakdown: breakdown,
		Metadata: domain.CostMetadata{
			CostPerMile:     cpm,
			Classification:  classification,
			WageRatePerMile: wageRate,
			Zone:            zone,
			DurationDays:    durationDays,
		},
	}
}

// eventCost prices discrete events. Pickups and drops share one fee.
func (c *Calculator) eventCost(events domain.TripEventCounts) float64 {
	r := c.rates
	return float64(events.BorderCrossings)*r.BorderCrossingFee +
		float64(events.Stops())*r.PerStopFee +
		float64(events.DropHooks)*r.DropHookFee
}

// perMile divides amount by miles, returning 0 for a zero distance.
func perMile(amount, miles float64) float64 {
	if miles == 0 {
		return 0
	}
	return amount / miles
}
