package costing

import (
	"math"
	"testing"

	"tripcost/internal/domain"
)

func TestComputeItemized_AgreesWithCore(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())

	tests := []struct {
		name       string
		driverType domain.DriverType
		miles      float64
		pickup     string
		delivery   string
		opts       ItemizedOptions
	}{
		{"company domestic", domain.DriverTypeCompany, 500, "Dallas, Texas", "Atlanta, Georgia", DefaultItemizedOptions()},
		{"rental cross-border with overhead", domain.DriverTypeRental, 900, "Toronto, Ontario", "Chicago, Illinois", ItemizedOptions{IncludeOverhead: true, TruckWeeklyCost: 1200}},
		{"owner-operator multi-stop", domain.DriverTypeOwnerOperator, 2400, "Vancouver, British Columbia", "Seattle, Washington", ItemizedOptions{Pickups: Count(2), Deliveries: Count(3), DropHooks: 2, IncludeOverhead: true}},
		{"zero distance", domain.DriverTypeCompany, 0, "", "", ItemizedOptions{IncludeOverhead: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ComputeItemized(tt.driverType, tt.miles, tt.pickup, tt.delivery, tt.opts)

			events := domain.TripEventCounts{Pickups: tt.opts.pickups(), Drops: tt.opts.deliveries(), DropHooks: tt.opts.DropHooks}
			if got.CrossBorder {
				events.BorderCrossings = 1
			}
			core := calc.Compute(
				domain.DriverProfile{Type: tt.driverType, WeeklyTruckCost: tt.opts.TruckWeeklyCost},
				tt.miles, got.DurationDays, events,
			)

			overhead := 0.0
			if got.WeeklyOverhead != nil {
				overhead = got.WeeklyOverhead.DailyTotal * got.DurationDays
			}

			direct := got.MileageCosts.Subtotal + got.EventCosts.Subtotal
			if math.Abs(direct-got.DirectTripCost) > epsilon {
				t.Errorf("subtotals sum to %v, direct cost is %v", direct, got.DirectTripCost)
			}
			if math.Abs(got.DirectTripCost+core.Breakdown.Fixed-core.TotalCost) > epsilon {
				t.Errorf("direct %v + fixed %v != core total %v", got.DirectTripCost, core.Breakdown.Fixed, core.TotalCost)
			}
			if tt.opts.IncludeOverhead {
				if math.Abs(direct+overhead-core.TotalCost) > epsilon {
					t.Errorf("direct %v + overhead %v != core total %v", direct, overhead, core.TotalCost)
				}
				nearlyEqual(t, "fully allocated", got.FullyAllocatedCost, core.TotalCost)
			} else {
				nearlyEqual(t, "fully allocated", got.FullyAllocatedCost, got.DirectTripCost)
			}
		})
	}
}

func TestComputeItemized_CompanyScenario(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	got := calc.ComputeItemized(domain.DriverTypeCompany, 500, "Dallas, Texas", "Atlanta, Georgia", DefaultItemizedOptions())

	nearlyEqual(t, "duration", got.DurationDays, 500.0/55/24)
	nearlyEqual(t, "wage", got.MileageCosts.Wage, 500*0.59*1.29)
	nearlyEqual(t, "fuel", got.MileageCosts.Fuel, 500*0.70)
	nearlyEqual(t, "truck maint", got.MileageCosts.TruckMaint, 500*0.11)
	nearlyEqual(t, "pickup", got.EventCosts.Pickup, 30)
	nearlyEqual(t, "delivery", got.EventCosts.Delivery, 30)
	nearlyEqual(t, "border", got.EventCosts.BorderCrossing, 0)
	direct := 500*0.59*1.29 + 500*0.70 + 500*0.11 + 60
	nearlyEqual(t, "direct", got.DirectTripCost, direct)
	nearlyEqual(t, "revenue", got.RecommendedRevenue, direct*1.22)

	fixed := 1233.60 / 7 * got.DurationDays
	nearlyEqual(t, "total cpm", got.TotalCPM, (direct+fixed)/500)

	if got.CrossBorder {
		t.Error("expected domestic trip")
	}
	if got.WeeklyOverhead != nil {
		t.Error("expected no overhead block when not requested")
	}
}

func TestComputeItemized_LoadingFoldedIntoWage(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	got := calc.ComputeItemized(domain.DriverTypeRental, 800, "", "", DefaultItemizedOptions())

	m := got.MileageCosts
	if m.Benefits != 0 || m.Performance != 0 || m.Safety != 0 || m.Step != 0 {
		t.Errorf("expected zero loading amounts, got %+v", m)
	}
	if m.TrailerMaint != 0 {
		t.Errorf("expected trailer maintenance folded into truck maintenance, got %v", m.TrailerMaint)
	}
	nearlyEqual(t, "benefits rate", m.BenefitsRate, 0.12)
	nearlyEqual(t, "performance rate", m.PerformanceRate, 0.05)
	nearlyEqual(t, "safety rate", m.SafetyRate, 0.03)
	nearlyEqual(t, "step rate", m.StepRate, 0.02)
	nearlyEqual(t, "wage", m.Wage, 800*0.74*1.29)
}

func TestComputeItemized_CrossBorderAddsCrossing(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	got := calc.ComputeItemized(domain.DriverTypeCompany, 250, "Toronto, Ontario", "Detroit, Michigan", DefaultItemizedOptions())

	if !got.CrossBorder {
		t.Fatal("expected cross-border trip")
	}
	nearlyEqual(t, "border crossing", got.EventCosts.BorderCrossing, 15)
	nearlyEqual(t, "event subtotal", got.EventCosts.Subtotal, 15+30+30)
}

func TestComputeItemized_EventOptions(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	opts := ItemizedOptions{Pickups: Count(0), Deliveries: Count(4), DropHooks: 3}
	got := calc.ComputeItemized(domain.DriverTypeCompany, 300, "", "", opts)

	nearlyEqual(t, "pickup", got.EventCosts.Pickup, 0)
	nearlyEqual(t, "delivery", got.EventCosts.Delivery, 4*30)
	nearlyEqual(t, "drop hook", got.EventCosts.DropHook, 3*15)
}

func TestComputeItemized_Overhead(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	got := calc.ComputeItemized(domain.DriverTypeOwnerOperator, 1200, "", "", ItemizedOptions{IncludeOverhead: true, TruckWeeklyCost: 700})

	o := got.WeeklyOverhead
	if o == nil {
		t.Fatal("expected overhead block")
	}
	lines := o.Insurance + o.TrailerLease + o.SGA + o.DispatchOps + o.TollTransponder + o.ELDSubscription + o.Misc + o.TruckCost
	nearlyEqual(t, "line items", lines, o.DailyTotal)
	nearlyEqual(t, "daily total", o.DailyTotal, (1233.60+700.0)/7)
	nearlyEqual(t, "fully allocated", got.FullyAllocatedCost, got.DirectTripCost+o.DailyTotal*got.DurationDays)
	nearlyEqual(t, "revenue", got.RecommendedRevenue, got.FullyAllocatedCost*1.22)
	nearlyEqual(t, "total cpm", got.TotalCPM, got.FullyAllocatedCost/1200)
}

func TestComputeItemized_ZeroDistance(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	got := calc.ComputeItemized(domain.DriverTypeCompany, 0, "Toronto, Ontario", "Buffalo, New York", ItemizedOptions{IncludeOverhead: true})

	if got.TotalCPM != 0 {
		t.Errorf("expected total cpm 0, got %v", got.TotalCPM)
	}
	if got.DurationDays != 0 {
		t.Errorf("expected zero duration, got %v", got.DurationDays)
	}
}

func TestComputeItemized_UnknownTypeIsNormalized(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	got := calc.ComputeItemized("", 300, "", "", DefaultItemizedOptions())

	if got.DriverType != domain.DefaultDriverType {
		t.Errorf("expected driver type %s, got %s", domain.DefaultDriverType, got.DriverType)
	}
}
