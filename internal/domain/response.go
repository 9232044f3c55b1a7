package domain

// RedemptionResponse is the results view for one search.
type RedemptionResponse struct {
	// Search echoes the query parameters the results were built from
	Search SearchEcho `json:"search"`

	// Criterion is the ordering applied to Options
	Criterion Criterion `json:"criterion"`

	// Summary contains the headline figures shown above the list
	Summary ResultsSummary `json:"summary"`

	// Options is the ranked list of redemption options
	Options []RankedOption `json:"options"`
}

// SearchEcho is the query as shown back to the user.
type SearchEcho struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate"`
	Miles       int    `json:"miles"`
}

// ResultsSummary contains aggregate information about a result list.
type ResultsSummary struct {
	// OptionsFound is the number of redemption options in the list
	OptionsFound int `json:"optionsFound"`

	// BestValuePerMile is the highest value per mile in the list, in dollars
	BestValuePerMile float64 `json:"bestValuePerMile"`

	// BestValueCents is BestValuePerMile in cents
	BestValueCents float64 `json:"bestValueCents"`
}

// RankedOption is a redemption option with its position in the current ordering.
type RankedOption struct {
	RedemptionOption

	// Rank is the 1-based position
	Rank int `json:"rank"`

	// Badge is "Best Value" for the first option and "#n" for the rest
	Badge string `json:"badge"`
}

// BestValueBadge labels the first option of a ranked list.
const BestValueBadge = "Best Value"

// RankOptions attaches 1-based positions and badges to an ordered list.
func RankOptions(options []RedemptionOption) []RankedOption {
	ranked := make([]RankedOption, len(options))
	for i, o := range options {
		badge := BestValueBadge
		if i > 0 {
			badge = "#" + intToString(i+1)
		}
		ranked[i] = RankedOption{
			RedemptionOption: o,
			Rank:             i + 1,
			Badge:            badge,
		}
	}
	return ranked
}

// NewSearchEcho builds the echoed query from a SearchQuery.
func NewSearchEcho(q SearchQuery) SearchEcho {
	return SearchEcho{
		Origin:      q.Origin,
		Destination: q.Destination,
		DepartDate:  q.DepartDateString(),
		ReturnDate:  q.ReturnDateString(),
		Miles:       q.Miles,
	}
}

// EmptyRedemptionResponse is the placeholder state shown before a complete query arrives.
func EmptyRedemptionResponse(echo SearchEcho, criterion Criterion) *RedemptionResponse {
	return &RedemptionResponse{
		Search:    echo,
		Criterion: criterion,
		Options:   []RankedOption{},
	}
}
