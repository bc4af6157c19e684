package costing

import (
	"strings"
	"testing"

	"tripcost/internal/domain"
)

func TestCompareDriverTypes_AlwaysFiveOptions(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())

	for _, miles := range []float64{0, 1, 699, 700, 1500, 2200, 2201, 5000} {
		options := calc.CompareDriverTypes(miles, "Toronto, Ontario", "Detroit, Michigan", DefaultItemizedOptions())
		if len(options) != ComparisonSize {
			t.Fatalf("miles=%v: expected %d options, got %d", miles, ComparisonSize, len(options))
		}
	}
}

func TestCompareDriverTypes_OrderAndLabels(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	options := calc.CompareDriverTypes(1000, "", "", DefaultItemizedOptions())

	wantTypes := []domain.DriverType{
		domain.DriverTypeOwnerOperator,
		domain.DriverTypeOwnerOperator,
		domain.DriverTypeOwnerOperator,
		domain.DriverTypeCompany,
		domain.DriverTypeRental,
	}
	wantZones := []domain.Zone{domain.ZoneShort, domain.ZoneMedium, domain.ZoneLong, domain.ZoneNone, domain.ZoneNone}

	seen := make(map[string]bool)
	for i, opt := range options {
		if opt.DriverType != wantTypes[i] {
			t.Errorf("option %d: expected type %s, got %s", i, wantTypes[i], opt.DriverType)
		}
		if opt.Zone != wantZones[i] {
			t.Errorf("option %d: expected zone %q, got %q", i, wantZones[i], opt.Zone)
		}
		if opt.Label == "" || seen[opt.Label] {
			t.Errorf("option %d: expected a unique label, got %q", i, opt.Label)
		}
		seen[opt.Label] = true
	}

	if !strings.Contains(options[0].Label, "700") || !strings.Contains(options[2].Label, "2200") {
		t.Errorf("expected zone labels to name the boundaries, got %q and %q", options[0].Label, options[2].Label)
	}
}

func TestCompareDriverTypes_ZoneLabelsAreInformational(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	options := calc.CompareDriverTypes(1000, "", "", DefaultItemizedOptions())

	want := calc.ComputeItemized(domain.DriverTypeOwnerOperator, 1000, "", "", DefaultItemizedOptions())
	for i := 0; i < 3; i++ {
		if options[i].Cost != want {
			t.Errorf("option %d: expected owner-operator cost %+v, got %+v", i, want, options[i].Cost)
		}
	}
}

func TestCompareDriverTypes_MatchesItemized(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateTable())
	opts := ItemizedOptions{IncludeOverhead: true, TruckWeeklyCost: 1000}
	options := calc.CompareDriverTypes(850, "Windsor, Ontario", "Detroit, Michigan", opts)

	company := calc.ComputeItemized(domain.DriverTypeCompany, 850, "Windsor, Ontario", "Detroit, Michigan", opts)
	rental := calc.ComputeItemized(domain.DriverTypeRental, 850, "Windsor, Ontario", "Detroit, Michigan", opts)

	nearlyEqual(t, "company", options[3].Cost.FullyAllocatedCost, company.FullyAllocatedCost)
	nearlyEqual(t, "rental", options[4].Cost.FullyAllocatedCost, rental.FullyAllocatedCost)
}
