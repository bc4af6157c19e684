package costing

import (
	"math"
	"sync"
	"testing"

	"tripcost/internal/domain"
)

const epsilon = 1e-9

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCompute_CompanyScenario(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	driver := domain.DriverProfile{ID: "drv-1", Type: domain.DriverTypeCompany}

	result := calc.Compute(driver, 500, 1, domain.DefaultTripEventCounts())

	nearlyEqual(t, "fuel", result.Breakdown.Fuel, 500*0.70)
	nearlyEqual(t, "maintenance", result.Breakdown.Maintenance, 500*0.11)
	nearlyEqual(t, "labor", result.Breakdown.Labor, 500*0.59*1.29)
	nearlyEqual(t, "events", result.Breakdown.Events, 30*2)
	nearlyEqual(t, "fixed", result.Breakdown.Fixed, 1233.60/7)
	nearlyEqual(t, "total", result.TotalCost, result.Breakdown.Total())
	nearlyEqual(t, "costPerMile", result.Metadata.CostPerMile, result.TotalCost/500)

	if result.Metadata.Classification != domain.ClassificationStandard {
		t.Errorf("expected classification %q, got %q", domain.ClassificationStandard, result.Metadata.Classification)
	}
	if result.Metadata.Zone != domain.ZoneNone {
		t.Errorf("expected no zone for company driver, got %q", result.Metadata.Zone)
	}
}

func TestCompute_Additivity(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())

	tests := []struct {
		name   string
		driver domain.DriverProfile
		miles  float64
		days   float64
		events domain.TripEventCounts
	}{
		{"company short", domain.DriverProfile{Type: domain.DriverTypeCompany}, 120, 0.5, domain.DefaultTripEventCounts()},
		{"rental with truck", domain.DriverProfile{Type: domain.DriverTypeRental, WeeklyTruckCost: 1400}, 950, 2, domain.DefaultTripEventCounts()},
		{"owner-operator long", domain.DriverProfile{Type: domain.DriverTypeOwnerOperator, WeeklyTruckCost: 900}, 2600, 3.5, domain.TripEventCounts{BorderCrossings: 2, Pickups: 2, Drops: 3, DropHooks: 1}},
		{"zero distance", domain.DriverProfile{Type: domain.DriverTypeCompany}, 0, 0, domain.TripEventCounts{}},
		{"unknown type", domain.DriverProfile{Type: "CONTRACTOR"}, 300, 1, domain.DefaultTripEventCounts()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(tt.driver, tt.miles, tt.days, tt.events)
			b := got.Breakdown
			sum := b.Fixed + b.Labor + b.Fuel + b.Maintenance + b.Events
			if math.Abs(sum-got.TotalCost) > epsilon {
				t.Errorf("breakdown sums to %v, total is %v", sum, got.TotalCost)
			}
		})
	}
}

func TestCompute_ZeroDistanceIsSafe(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	result := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeOwnerOperator}, 0, 1, domain.DefaultTripEventCounts())

	if result.Metadata.CostPerMile != 0 {
		t.Errorf("expected cost per mile 0, got %v", result.Metadata.CostPerMile)
	}
	if math.IsNaN(result.TotalCost) || math.IsInf(result.TotalCost, 0) {
		t.Errorf("expected finite total, got %v", result.TotalCost)
	}
}

func TestCompute_UnknownDriverTypeFallsBackToCompany(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	events := domain.DefaultTripEventCounts()

	unknown := calc.Compute(domain.DriverProfile{Type: "SPACESHIP"}, 400, 1, events)
	empty := calc.Compute(domain.DriverProfile{}, 400, 1, events)
	company := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeCompany}, 400, 1, events)

	nearlyEqual(t, "unknown total", unknown.TotalCost, company.TotalCost)
	nearlyEqual(t, "empty total", empty.TotalCost, company.TotalCost)
}

func TestCompute_OwnerOperatorZones(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	oo := domain.DriverProfile{Type: domain.DriverTypeOwnerOperator}
	events := domain.DefaultTripEventCounts()

	tests := []struct {
		miles    float64
		wantRate float64
		wantZone domain.Zone
	}{
		{699.99, 1.60, domain.ZoneShort},
		{700, 1.55, domain.ZoneMedium},
		{1500, 1.55, domain.ZoneMedium},
		{2200, 1.55, domain.ZoneMedium},
		{2200.01, 1.42, domain.ZoneLong},
	}

	for _, tt := range tests {
		got := calc.Compute(oo, tt.miles, 1, events)
		if got.Metadata.Zone != tt.wantZone {
			t.Errorf("miles=%v: expected zone %s, got %s", tt.miles, tt.wantZone, got.Metadata.Zone)
		}
		nearlyEqual(t, "wage rate", got.Metadata.WageRatePerMile, tt.wantRate)
		nearlyEqual(t, "labor", got.Breakdown.Labor, tt.miles*tt.wantRate*1.29)
	}
}

func TestCompute_OwnerOperatorWageDecreasesAcrossBoundaries(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	oo := domain.DriverProfile{Type: domain.DriverTypeOwnerOperator}
	events := domain.DefaultTripEventCounts()

	short := calc.Compute(oo, 690, 1, events)
	medium := calc.Compute(oo, 710, 1, events)
	long := calc.Compute(oo, 2300, 1, events)

	shortPerMile := short.Breakdown.Labor / 690
	mediumPerMile := medium.Breakdown.Labor / 710
	longPerMile := long.Breakdown.Labor / 2300

	if !(shortPerMile > mediumPerMile && mediumPerMile > longPerMile) {
		t.Errorf("expected short > medium > long wage per mile, got %v, %v, %v", shortPerMile, mediumPerMile, longPerMile)
	}
}

func TestCompute_OwnerOperatorFuelIsLower(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	events := domain.DefaultTripEventCounts()

	oo := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeOwnerOperator}, 1000, 1, events)
	company := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeCompany}, 1000, 1, events)

	if oo.Breakdown.Fuel >= company.Breakdown.Fuel {
		t.Errorf("expected owner-operator fuel below company fuel, got %v >= %v", oo.Breakdown.Fuel, company.Breakdown.Fuel)
	}
}

func TestCompute_FixedCostIncludesTruck(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	driver := domain.DriverProfile{Type: domain.DriverTypeRental, WeeklyTruckCost: 1050}

	result := calc.Compute(driver, 100, 1.5, domain.DefaultTripEventCounts())

	nearlyEqual(t, "fixed", result.Breakdown.Fixed, (1233.60+1050.0)/7*1.5)
}

func TestCompute_EventCosts(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	events := domain.TripEventCounts{BorderCrossings: 2, Pickups: 3, Drops: 1, DropHooks: 2}

	result := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeCompany}, 100, 0, events)

	nearlyEqual(t, "events", result.Breakdown.Events, 2*15.0+4*30.0+2*15.0)
}

func TestCompute_HighCostClassification(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())

	// Fixed cost and stop fees dominate a very short trip.
	result := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeCompany}, 20, 1, domain.DefaultTripEventCounts())

	if result.Metadata.Classification != domain.ClassificationHighCost {
		t.Errorf("expected %q, got %q (cpm %v)", domain.ClassificationHighCost, result.Metadata.Classification, result.Metadata.CostPerMile)
	}
}

func TestCompute_NegativeInputsPropagate(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	result := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeCompany}, -100, 0, domain.TripEventCounts{})

	if result.Breakdown.Fuel >= 0 {
		t.Errorf("expected negative fuel for negative distance, got %v", result.Breakdown.Fuel)
	}
}

func TestCompute_OverriddenRates(t *testing.T) {
	t.Parallel()

	rates := DefaultRateTable().Clone()
	rates.FuelPerMile[domain.DriverTypeCompany] = 1.00
	rates.PerStopFee = 0

	calc := NewCalculator(rates)
	result := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeCompany}, 100, 0, domain.DefaultTripEventCounts())

	nearlyEqual(t, "fuel", result.Breakdown.Fuel, 100)
	nearlyEqual(t, "events", result.Breakdown.Events, 0)

	// The default table is untouched.
	if DefaultRateTable().FuelPerMile[domain.DriverTypeCompany] != 0.70 {
		t.Error("default rate table was mutated")
	}
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	want := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeOwnerOperator}, 1234, 2, domain.DefaultTripEventCounts()).TotalCost

	var wg sync.WaitGroup
	errs := make(chan float64, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := calc.Compute(domain.DriverProfile{Type: domain.DriverTypeOwnerOperator}, 1234, 2, domain.DefaultTripEventCounts()).TotalCost
			if got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("expected %v, got %v", want, got)
	}
}
