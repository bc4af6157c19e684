package costing

import (
	"errors"
	"fmt"

	"tripcost/internal/domain"
)

// ErrInvalidRateTable is returned by RateTable.Validate.
var ErrInvalidRateTable = errors.New("invalid rate table")

// DefaultRegion is the region of the built-in rate table.
const DefaultRegion = "default"

// WeeklyOverheadRates are the weekly fixed operating costs shared by every trip.
type WeeklyOverheadRates struct {
	Insurance       float64 `json:"insurance"`
	TrailerLease    float64 `json:"trailer_lease"`
	SGA             float64 `json:"sga"`
	DispatchOps     float64 `json:"dispatch_ops"`
	TollTransponder float64 `json:"toll_transponder"`
	ELDSubscription float64 `json:"eld_subscription"`
	Misc            float64 `json:"misc"`
}

// Total returns the sum of all weekly overhead line items.
func (o WeeklyOverheadRates) Total() float64 {
	return o.Insurance + o.TrailerLease + o.SGA + o.DispatchOps +
		o.TollTransponder + o.ELDSubscription + o.Misc
}

// OwnerOperatorZones is the distance-tiered wage schedule for owner-operators.
//
//	miles <  ShortHaulLimit                    -> ShortRate
//	ShortHaulLimit <= miles <= MediumHaulLimit -> MediumRate
//	miles >  MediumHaulLimit                   -> LongRate
type OwnerOperatorZones struct {
	ShortHaulLimit  float64 `json:"short_haul_limit"`
	MediumHaulLimit float64 `json:"medium_haul_limit"`
	ShortRate       float64 `json:"short_rate"`
	MediumRate      float64 `json:"medium_rate"`
	LongRate        float64 `json:"long_rate"`
}

// Zone returns the tier that applies to a trip of the given length.
func (z OwnerOperatorZones) Zone(miles float64) domain.Zone {
	switch {
	case miles < z.ShortHaulLimit:
		return domain.ZoneShort
	case miles <= z.MediumHaulLimit:
		return domain.ZoneMedium
	default:
		return domain.ZoneLong
	}
}

// Rate returns the per-mile wage for a zone.
func (z OwnerOperatorZones) Rate(zone domain.Zone) float64 {
	switch zone {
	case domain.ZoneShort:
		return z.ShortRate
	case domain.ZoneMedium:
		return z.MediumRate
	default:
		return z.LongRate
	}
}

// LaborLoading holds the percentage loadings applied on top of base wage.
// Expressed as fractions (0.12 = 12%). Administrative has no line of its
// own in the itemized statement.
type LaborLoading struct {
	Benefits       float64 `json:"benefits"`
	Performance    float64 `json:"performance"`
	Safety         float64 `json:"safety"`
	Step           float64 `json:"step"`
	Administrative float64 `json:"administrative"`
}

// Multiplier returns 1 plus the sum of all loadings.
func (l LaborLoading) Multiplier() float64 {
	return 1 + l.Benefits + l.Performance + l.Safety + l.Step + l.Administrative
}

// RateTable holds every constant used by the calculator. It is a plain value:
// copy it, override fields, and hand it to NewCalculator.
type RateTable struct {
	Region  string `json:"region"`
	Version int    `json:"version"`

	WeeklyOverhead WeeklyOverheadRates `json:"weekly_overhead"`

	TruckMaintPerMile   float64 `json:"truck_maint_per_mile"`
	TrailerMaintPerMile float64 `json:"trailer_maint_per_mile"`

	FuelPerMile map[domain.DriverType]float64 `json:"fuel_per_mile"`
	WagePerMile map[domain.DriverType]float64 `json:"wage_per_mile"` // Company and Rental
	OOZones     OwnerOperatorZones            `json:"owner_operator_zones"`
	Loading     LaborLoading                  `json:"labor_loading"`

	BorderCrossingFee float64 `json:"border_crossing_fee"`
	PerStopFee        float64 `json:"per_stop_fee"`
	DropHookFee       float64 `json:"drop_hook_fee"`

	AverageSpeedMPH      float64 `json:"average_speed_mph"`
	TargetMarkup         float64 `json:"target_markup"`
	HighCostCPMThreshold float64 `json:"high_cost_cpm_threshold"`
}

// DefaultRateTable returns the built-in rate table.
func DefaultRateTable() RateTable {
	return RateTable{
		Region:  DefaultRegion,
		Version: 1,
		WeeklyOverhead: WeeklyOverheadRates{
			Insurance:       450,
			TrailerLease:    250,
			SGA:             180,
			DispatchOps:     120,
			TollTransponder: 25,
			ELDSubscription: 35,
			Misc:            173.60, // misc plus tech subscriptions
		},
		TruckMaintPerMile:   0.08,
		TrailerMaintPerMile: 0.03,
		FuelPerMile: map[domain.DriverType]float64{
			domain.DriverTypeCompany:       0.70,
			domain.DriverTypeRental:        0.70,
			domain.DriverTypeOwnerOperator: 0.22,
		},
		WagePerMile: map[domain.DriverType]float64{
			domain.DriverTypeCompany: 0.59,
			domain.DriverTypeRental:  0.74,
		},
		OOZones: OwnerOperatorZones{
			ShortHaulLimit:  700,
			MediumHaulLimit: 2200,
			ShortRate:       1.60,
			MediumRate:      1.55,
			LongRate:        1.42,
		},
		Loading: LaborLoading{
			Benefits:       0.12,
			Performance:    0.05,
			Safety:         0.03,
			Step:           0.02,
			Administrative: 0.07,
		},
		BorderCrossingFee:    15,
		PerStopFee:           30,
		DropHookFee:          15,
		AverageSpeedMPH:      55,
		TargetMarkup:         1.22,
		HighCostCPMThreshold: 2.50,
	}
}

// Clone returns a deep copy so callers can override rates without
// touching a table that is already in use.
func (r RateTable) Clone() RateTable {
	out := r
	out.FuelPerMile = make(map[domain.DriverType]float64, len(r.FuelPerMile))
	for k, v := range r.FuelPerMile {
		out.FuelPerMile[k] = v
	}
	out.WagePerMile = make(map[domain.DriverType]float64, len(r.WagePerMile))
	for k, v := range r.WagePerMile {
		out.WagePerMile[k] = v
	}
	return out
}

// WeeklyFixedOverhead returns the weekly overhead shared by every trip,
// excluding the driver's own truck cost.
func (r RateTable) WeeklyFixedOverhead() float64 {
	return r.WeeklyOverhead.Total()
}

// MaintenancePerMile returns the blended truck and trailer maintenance rate.
func (r RateTable) MaintenancePerMile() float64 {
	return r.TruckMaintPerMile + r.TrailerMaintPerMile
}

// FuelRatePerMile returns the fuel rate for a driver type.
func (r RateTable) FuelRatePerMile(t domain.DriverType) float64 {
	return r.FuelPerMile[t.Normalize()]
}

// OwnerOperatorZone returns the zone for a trip length.
func (r RateTable) OwnerOperatorZone(miles float64) domain.Zone {
	return r.OOZones.Zone(miles)
}

// WageRatePerMile returns the base (unloaded) wage per mile.
// Owner-operators are paid by zone; other types use a flat rate.
func (r RateTable) WageRatePerMile(t domain.DriverType, miles float64) float64 {
	t = t.Normalize()
	if t == domain.DriverTypeOwnerOperator {
		return r.OOZones.Rate(r.OOZones.Zone(miles))
	}
	return r.WagePerMile[t]
}

// LaborMultiplier returns the blended labor loading multiplier.
func (r RateTable) LaborMultiplier() float64 {
	return r.Loading.Multiplier()
}

// Validate checks a table loaded from outside the process.
func (r RateTable) Validate() error {
	if r.Region == "" {
		return fmt.Errorf("%w: region is required", ErrInvalidRateTable)
	}
	if r.AverageSpeedMPH <= 0 {
		return fmt.Errorf("%w: average speed must be positive", ErrInvalidRateTable)
	}
	if r.OOZones.ShortHaulLimit > r.OOZones.MediumHaulLimit {
		return fmt.Errorf("%w: short-haul limit exceeds medium-haul limit", ErrInvalidRateTable)
	}
	for _, t := range domain.DriverTypes {
		if _, ok := r.FuelPerMile[t]; !ok {
			return fmt.Errorf("%w: missing fuel rate for %s", ErrInvalidRateTable, t)
		}
		if t == domain.DriverTypeOwnerOperator {
			continue
		}
		if _, ok := r.WagePerMile[t]; !ok {
			return fmt.Errorf("%w: missing wage rate for %s", ErrInvalidRateTable, t)
		}
	}
	for t, v := range r.FuelPerMile {
		if v < 0 {
			return fmt.Errorf("%w: fuel rate for %s must not be negative", ErrInvalidRateTable, t)
		}
	}
	for t, v := range r.WagePerMile {
		if v < 0 {
			return fmt.Errorf("%w: wage rate for %s must not be negative", ErrInvalidRateTable, t)
		}
	}
	if r.TargetMarkup <= 0 {
		return fmt.Errorf("%w: target markup must be positive", ErrInvalidRateTable)
	}

	amounts := map[string]float64{
		"insurance":           r.WeeklyOverhead.Insurance,
		"trailer lease":       r.WeeklyOverhead.TrailerLease,
		"sga":                 r.WeeklyOverhead.SGA,
		"dispatch ops":        r.WeeklyOverhead.DispatchOps,
		"toll transponder":    r.WeeklyOverhead.TollTransponder,
		"eld subscription":    r.WeeklyOverhead.ELDSubscription,
		"misc overhead":       r.WeeklyOverhead.Misc,
		"truck maintenance":   r.TruckMaintPerMile,
		"trailer maintenance": r.TrailerMaintPerMile,
		"border crossing fee": r.BorderCrossingFee,
		"per-stop fee":        r.PerStopFee,
		"drop-hook fee":       r.DropHookFee,
		"high cost threshold": r.HighCostCPMThreshold,
		"short-haul rate":     r.OOZones.ShortRate,
		"medium-haul rate":    r.OOZones.MediumRate,
		"long-haul rate":      r.OOZones.LongRate,
		"benefits loading":    r.Loading.Benefits,
		"performance loading": r.Loading.Performance,
		"safety loading":      r.Loading.Safety,
		"step loading":        r.Loading.Step,
		"admin loading":       r.Loading.Administrative,
	}
	for name, v := range amounts {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidRateTable, name)
		}
	}
	return nil
}
