package costing

import (
	"fmt"

	"tripcost/internal/domain"
)

// ComparisonSize is the number of options CompareDriverTypes returns.
const ComparisonSize = 5

// CompareDriverTypes costs the same trip under every driver option:
// three labeled Owner-Operator zones, Company, and Rental, in that order.
//
// The zone labels are informational. Every Owner-Operator entry is costed
// with the zone rate selected by the actual distance, so the three entries
// carry the same numbers. Ranking is left to the caller.
func (c *Calculator) CompareDriverTypes(distanceMiles float64, pickupLocation, deliveryLocation string, opts ItemizedOptions) []domain.DriverOption {
	z := c.rates.OOZones

	options := []domain.DriverOption{
		{
			DriverType: domain.DriverTypeOwnerOperator,
			Label:      fmt.Sprintf("Owner-Operator Zone 1 (under %g mi)", z.ShortHaulLimit),
			Zone:       domain.ZoneShort,
		},
		{
			DriverType: domain.DriverTypeOwnerOperator,
			Label:      fmt.Sprintf("Owner-Operator Zone 2 (%g-%g mi)", z.ShortHaulLimit, z.MediumHaulLimit),
			Zone:       domain.ZoneMedium,
		},
		{
			DriverType: domain.DriverTypeOwnerOperator,
			Label:      fmt.Sprintf("Owner-Operator Zone 3 (over %g mi)", z.MediumHaulLimit),
			Zone:       domain.ZoneLong,
		},
		{
			DriverType: domain.DriverTypeCompany,
			Label:      "Company Driver",
		},
		{
			DriverType: domain.DriverTypeRental,
			Label:      "Rental Driver",
		},
	}

	for i := range options {
		options[i].Cost = c.ComputeItemized(options[i].DriverType, distanceMiles, pickupLocation, deliveryLocation, opts)
	}

	return options
}
