package domain

// Cost classifications reported in CostMetadata. Advisory only.
const (
	ClassificationHighCost = "High Cost"
	ClassificationStandard = "Standard"
)

// Zone identifies an Owner-Operator distance tier.
type Zone string

const (
	ZoneNone   Zone = ""
	ZoneShort  Zone = "SHORT_HAUL"
	ZoneMedium Zone = "MEDIUM_HAUL"
	ZoneLong   Zone = "LONG_HAUL"
)

// CostBreakdown is the five-bucket output of the core calculator.
// The buckets are mutually exclusive and sum to the trip total.
type CostBreakdown struct {
	Fixed       float64 `json:"fixed"`
	Labor       float64 `json:"labor"`
	Fuel        float64 `json:"fuel"`
	Maintenance float64 `json:"maintenance"`
	Events      float64 `json:"events"`
}

// Total returns the sum of all buckets.
func (b CostBreakdown) Total() float64 {
	return b.Fixed + b.Labor + b.Fuel + b.Maintenance + b.Events
}

// CostMetadata carries derived, advisory figures.
type CostMetadata struct {
	CostPerMile     float64 `json:"cost_per_mile"`
	Classification  string  `json:"classification"`
	WageRatePerMile float64 `json:"wage_rate_per_mile"`
	Zone            Zone    `json:"zone,omitempty"`
	DurationDays    float64 `json:"duration_days"`
}

// CostResult is the core calculator output.
type CostResult struct {
	TotalCost float64       `json:"total_cost"`
	Breakdown CostBreakdown `json:"breakdown"`
	Metadata  CostMetadata  `json:"metadata"`
}

// MileageCosts groups distance-driven line items.
//
// The core calculator applies labor loading as a single blended multiplier,
// so the four loading amounts cannot be recovered from its labor figure.
// They are reported as zero with the full loaded labor amount in Wage; the
// *Rate fields still show the configured percentages.
type MileageCosts struct {
	Wage            float64 `json:"wage"`
	Fuel            float64 `json:"fuel"`
	BenefitsRate    float64 `json:"benefits_rate"`
	Benefits        float64 `json:"benefits"`
	PerformanceRate float64 `json:"performance_rate"`
	Performance     float64 `json:"performance"`
	SafetyRate      float64 `json:"safety_rate"`
	Safety          float64 `json:"safety"`
	StepRate        float64 `json:"step_rate"`
	Step            float64 `json:"step"`
	TruckMaint      float64 `json:"truck_maint"`
	TrailerMaint    float64 `json:"trailer_maint"` // folded into TruckMaint
	Subtotal        float64 `json:"subtotal"`
}

// EventCosts groups per-event line items.
type EventCosts struct {
	Pickup         float64 `json:"pickup"`
	Delivery       float64 `json:"delivery"`
	BorderCrossing float64 `json:"border_crossing"`
	DropHook       float64 `json:"drop_hook"`
	Subtotal       float64 `json:"subtotal"`
}

// WeeklyOverhead is the fixed-cost allocation expressed per day.
// The line items sum to DailyTotal.
type WeeklyOverhead struct {
	Insurance       float64 `json:"insurance"`
	TrailerLease    float64 `json:"trailer_lease"`
	SGA             float64 `json:"sga"`
	DispatchOps     float64 `json:"dispatch_ops"`
	TollTransponder float64 `json:"toll_transponder"`
	ELDSubscription float64 `json:"eld_subscription"`
	Misc            float64 `json:"misc"`
	TruckCost       float64 `json:"truck_cost"`
	DailyTotal      float64 `json:"daily_total"`
}

// ItemizedTripCost is the line-by-line view of a trip's cost.
type ItemizedTripCost struct {
	DriverType         DriverType      `json:"driver_type"`
	DistanceMiles      float64         `json:"distance_miles"`
	DurationDays       float64         `json:"duration_days"`
	CrossBorder        bool            `json:"cross_border"`
	MileageCosts       MileageCosts    `json:"mileage_costs"`
	EventCosts         EventCosts      `json:"event_costs"`
	WeeklyOverhead     *WeeklyOverhead `json:"weekly_overhead,omitempty"`
	DirectTripCost     float64         `json:"direct_trip_cost"`
	FullyAllocatedCost float64         `json:"fully_allocated_cost"`
	RecommendedRevenue float64         `json:"recommended_revenue"`
	TotalCPM           float64         `json:"total_cpm"`
}

// Margin returns recommended revenue less fully allocated cost.
func (c ItemizedTripCost) Margin() float64 {
	return c.RecommendedRevenue - c.FullyAllocatedCost
}

// DriverOption is one entry of a driver-type comparison.
type DriverOption struct {
	DriverType DriverType       `json:"driver_type"`
	Label      string           `json:"label"`
	Zone       Zone             `json:"zone,omitempty"`
	Cost       ItemizedTripCost `json:"cost"`
}
