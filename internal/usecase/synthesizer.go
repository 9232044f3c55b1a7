package usecase

import (
	"sort"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// Base value per mile range, in dollars. One base is drawn per synthesis call.
const (
	baseValueMin  = 0.01
	baseValueSpan = 0.02
)

// Archetype is a fixed redemption template. Miles and value per mile are
// derived from it at synthesis time; everything else is copied as-is.
type Archetype struct {
	ID              int
	Type            domain.OptionType
	Hubs            []string
	MilesFraction   float64
	CashPrice       float64
	ValueMultiplier float64
	Fees            float64
	Airline         string
	DurationMinutes int
	Savings         float64
	Rating          int
}

// archetypes in their fixed, pre-sort order.
var archetypes = []Archetype{
	{
		ID:              1,
		Type:            domain.OptionTypeDirect,
		MilesFraction:   0.8,
		CashPrice:       650,
		ValueMultiplier: 1.2,
		Fees:            25,
		Airline:         "Delta",
		DurationMinutes: 330,
		Savings:         520,
		Rating:          5,
	},
	{
		ID:              2,
		Type:            domain.OptionTypeSynthetic,
		Hubs:            []string{"DXB"},
		MilesFraction:   0.6,
		CashPrice:       750,
		ValueMultiplier: 1.5,
		Fees:            45,
		Airline:         "Emirates",
		DurationMinutes: 735,
		Savings:         705,
		Rating:          4,
	},
	{
		ID:              3,
		Type:            domain.OptionTypeDirect,
		MilesFraction:   0.9,
		CashPrice:       580,
		ValueMultiplier: 0.9,
		Fees:            35,
		Airline:         "United",
		DurationMinutes: 345,
		Savings:         545,
		Rating:          4,
	},
	{
		ID:              4,
		Type:            domain.OptionTypeSynthetic,
		Hubs:            []string{"CDG"},
		MilesFraction:   0.7,
		CashPrice:       680,
		ValueMultiplier: 1.3,
		Fees:            55,
		Airline:         "Air France",
		DurationMinutes: 620,
		Savings:         625,
		Rating:          4,
	},
}

// Archetypes returns a copy of the option templates in their pre-sort order.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypes))
	copy(out, archetypes)
	return out
}

// Synthesizer fabricates redemption options for a route from the fixed archetypes.
// It is safe for concurrent use when its RandomSource is.
type Synthesizer struct {
	rng domain.RandomSource
}

// NewSynthesizer creates a Synthesizer drawing base values from rng.
func NewSynthesizer(rng domain.RandomSource) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// BaseValue draws one base value per mile in [0.01, 0.03).
func (s *Synthesizer) BaseValue() float64 {
	return baseValueMin + baseValueSpan*s.rng.Float64()
}

// Synthesize returns one option per archetype, sorted by value per mile descending.
// Inputs are not validated; callers pass a checked SearchQuery.
func (s *Synthesizer) Synthesize(origin, destination string, miles int) []domain.RedemptionOption {
	return Build(origin, destination, miles, s.BaseValue())
}

// Build materializes the archetypes for a route with the given base value.
func Build(origin, destination string, miles int, base float64) []domain.RedemptionOption {
	options := make([]domain.RedemptionOption, 0, len(archetypes))
	for _, a := range archetypes {
		route := domain.BuildRoute(origin, destination, a.Hubs...)
		options = append(options, domain.RedemptionOption{
			ID:            a.ID,
			Type:          a.Type,
			Route:         route,
			RouteDisplay:  domain.FormatRoute(route),
			MilesRequired: float64(miles) * a.MilesFraction,
			CashPrice:     a.CashPrice,
			ValuePerMile:  base * a.ValueMultiplier,
			Fees:          a.Fees,
			Currency:      domain.DefaultCurrency,
			Airline:       a.Airline,
			Duration:      domain.NewDurationInfo(a.DurationMinutes),
			Savings:       a.Savings,
			Rating:        a.Rating,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].ValuePerMile > options[j].ValuePerMile
	})
	return options
}
