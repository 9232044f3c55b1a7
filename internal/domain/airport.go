package domain

// Airport is an entry in the origin and destination pickers.
type Airport struct {
	// Code is the IATA airport code (e.g., "BOS")
	Code string `json:"code"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country name
	Country string `json:"country"`
}

// popularAirports backs the search pickers, in display order.
var popularAirports = []Airport{
	{Code: "BOS", City: "Boston", Country: "USA"},
	{Code: "SFO", City: "San Francisco", Country: "USA"},
	{Code: "JFK", City: "New York", Country: "USA"},
	{Code: "LHR", City: "London", Country: "UK"},
	{Code: "LAX", City: "Los Angeles", Country: "USA"},
	{Code: "HND", City: "Tokyo", Country: "Japan"},
	{Code: "CDG", City: "Paris", Country: "France"},
	{Code: "DXB", City: "Dubai", Country: "UAE"},
}

// PopularAirports returns a copy of the airports offered by the search pickers.
func PopularAirports() []Airport {
	out := make([]Airport, len(popularAirports))
	copy(out, popularAirports)
	return out
}

// LookupAirport finds a popular airport by code.
func LookupAirport(code string) (Airport, bool) {
	for _, a := range popularAirports {
		if a.Code == code {
			return a, true
		}
	}
	return Airport{}, false
}
