package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"

	"tripcost/internal/costing"
	"tripcost/internal/domain"
	"tripcost/internal/metrics"
)

// EstimateService runs the costing engine against the rate table resolved
// for each request.
type EstimateService struct {
	rateService *RateService
	border      costing.BorderDetector
}

// NewEstimateService creates a new EstimateService.
func NewEstimateService(rateService *RateService) *EstimateService {
	return &EstimateService{
		rateService: rateService,
		border:      costing.DefaultBorderDetector(),
	}
}

// CoreEstimateRequest contains the parameters for a core cost estimate.
type CoreEstimateRequest struct {
	Region        string
	Driver        domain.DriverProfile
	DistanceMiles float64
	DurationDays  float64
	Events        *domain.TripEventCounts // nil means one pickup and one drop
}

// CoreEstimate is the result of a core cost estimate.
type CoreEstimate struct {
	EstimateID  string
	Region      string
	RateVersion int
	Result      domain.CostResult
}

// EstimateCore computes the five-bucket cost of a trip.
func (s *EstimateService) EstimateCore(ctx context.Context, req CoreEstimateRequest) (*CoreEstimate, error) {
	rates, err := s.rateService.Resolve(ctx, req.Region)
	if err != nil {
		return nil, err
	}

	events := domain.DefaultTripEventCounts()
	if req.Events != nil {
		events = *req.Events
	}

	segment := newrelic.FromContext(ctx).StartSegment("costing/core")
	result := costing.NewCalculator(rates).Compute(req.Driver, req.DistanceMiles, req.DurationDays, events)
	segment.End()

	driverType := req.Driver.Type.Normalize()
	metrics.IncEstimate(metrics.KindCore, driverType)
	metrics.ObserveCostPerMile(driverType, result.Metadata.CostPerMile)

	return &CoreEstimate{
		EstimateID:  uuid.New().String(),
		Region:      rates.Region,
		RateVersion: rates.Version,
		Result:      result,
	}, nil
}

// ItemizedEstimateRequest contains the parameters for an itemized estimate.
type ItemizedEstimateRequest struct {
	Region           string
	DriverType       domain.DriverType
	DistanceMiles    float64
	PickupLocation   string
	DeliveryLocation string
	Options          costing.ItemizedOptions
}

// ItemizedEstimate is the result of an itemized estimate.
type ItemizedEstimate struct {
	EstimateID  string
	Region      string
	RateVersion int
	Cost        domain.ItemizedTripCost
}

// EstimateItemized computes the line-item cost statement for a trip.
func (s *EstimateService) EstimateItemized(ctx context.Context, req ItemizedEstimateRequest) (*ItemizedEstimate, error) {
	rates, err := s.rateService.Resolve(ctx, req.Region)
	if err != nil {
		return nil, err
	}

	segment := newrelic.FromContext(ctx).StartSegment("costing/itemized")
	cost := costing.NewCalculator(rates).ComputeItemized(
		req.DriverType, req.DistanceMiles, req.PickupLocation, req.DeliveryLocation, req.Options,
	)
	segment.End()

	metrics.IncEstimate(metrics.KindItemized, cost.DriverType)
	metrics.ObserveCostPerMile(cost.DriverType, cost.TotalCPM)

	return &ItemizedEstimate{
		EstimateID:  uuid.New().String(),
		Region:      rates.Region,
		RateVersion: rates.Version,
		Cost:        cost,
	}, nil
}

// CompareRequest contains the parameters for a driver-type comparison.
type CompareRequest struct {
	Region           string
	DistanceMiles    float64
	PickupLocation   string
	DeliveryLocation string
	Options          costing.ItemizedOptions
	RankBy           RankBy // empty keeps the fixed option order
}

// Comparison is the result of a driver-type comparison.
type Comparison struct {
	EstimateID  string
	Region      string
	RateVersion int
	Options     []domain.DriverOption
	Recommended *domain.DriverOption
}

// CompareDriverTypes costs a trip under every driver option and, when
// asked, ranks the options and names the best one.
func (s *EstimateService) CompareDriverTypes(ctx context.Context, req CompareRequest) (*Comparison, error) {
	if req.RankBy != RankNone && !req.RankBy.Valid() {
		return nil, ErrInvalidRankBy
	}

	rates, err := s.rateService.Resolve(ctx, req.Region)
	if err != nil {
		return nil, err
	}

	segment := newrelic.FromContext(ctx).StartSegment("costing/compare")
	options := costing.NewCalculator(rates).CompareDriverTypes(
		req.DistanceMiles, req.PickupLocation, req.DeliveryLocation, req.Options,
	)
	segment.End()

	for _, opt := range options {
		metrics.IncEstimate(metrics.KindCompare, opt.DriverType)
	}

	comparison := &Comparison{
		EstimateID:  uuid.New().String(),
		Region:      rates.Region,
		RateVersion: rates.Version,
		Options:     options,
	}

	if req.RankBy != RankNone {
		comparison.Options = RankOptions(options, req.RankBy)
		best := comparison.Options[0]
		comparison.Recommended = &best
	}

	return comparison, nil
}

// CheckBorder reports whether a trip between two locations crosses the border.
func (s *EstimateService) CheckBorder(pickupLocation, deliveryLocation string) bool {
	crossBorder := s.border.IsCrossBorder(pickupLocation, deliveryLocation)
	metrics.IncCrossBorderCheck(crossBorder)
	return crossBorder
}
