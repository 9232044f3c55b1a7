package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDurationInfo(t *testing.T) {
	tests := []struct {
		name          string
		totalMinutes  int
		wantFormatted string
	}{
		{
			name:          "direct transcontinental",
			totalMinutes:  330, // 5h 30m
			wantFormatted: "5h 30m",
		},
		{
			name:          "long layover route",
			totalMinutes:  735, // 12h 15m
			wantFormatted: "12h 15m",
		},
		{
			name:          "only hours",
			totalMinutes:  120,
			wantFormatted: "2h",
		},
		{
			name:          "only minutes",
			totalMinutes:  45,
			wantFormatted: "45m",
		},
		{
			name:          "zero minutes",
			totalMinutes:  0,
			wantFormatted: "0m",
		},
		{
			name:          "single digit minutes",
			totalMinutes:  65,
			wantFormatted: "1h 5m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewDurationInfo(tt.totalMinutes)
			assert.Equal(t, tt.totalMinutes, result.TotalMinutes)
			assert.Equal(t, tt.wantFormatted, result.Formatted)
		})
	}
}

func TestIntToString(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{name: "zero", input: 0, want: "0"},
		{name: "single digit", input: 5, want: "5"},
		{name: "two digits", input: 12, want: "12"},
		{name: "large number", input: 50000, want: "50000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intToString(tt.input))
		})
	}
}

func TestBuildRoute(t *testing.T) {
	t.Run("direct route has only endpoints", func(t *testing.T) {
		route := BuildRoute("BOS", "SFO")
		assert.Equal(t, []string{"BOS", "SFO"}, route)
		assert.Equal(t, "BOS → SFO", FormatRoute(route))
	})

	t.Run("hubs are placed between endpoints in order", func(t *testing.T) {
		route := BuildRoute("BOS", "SFO", "DXB")
		assert.Equal(t, []string{"BOS", "DXB", "SFO"}, route)
		assert.Equal(t, "BOS → DXB → SFO", FormatRoute(route))
	})
}

func TestRedemptionOption_Helpers(t *testing.T) {
	direct := RedemptionOption{
		Type:         OptionTypeDirect,
		Route:        BuildRoute("JFK", "LHR"),
		ValuePerMile: 0.0156,
	}
	synthetic := RedemptionOption{
		Type:  OptionTypeSynthetic,
		Route: BuildRoute("JFK", "LHR", "CDG"),
	}

	assert.True(t, direct.IsDirect())
	assert.False(t, synthetic.IsDirect())
	assert.Equal(t, 0, direct.Stops())
	assert.Equal(t, 1, synthetic.Stops())
	assert.Equal(t, 0, RedemptionOption{}.Stops())
	assert.InDelta(t, 1.56, direct.ValueCentsPerMile(), 1e-9)
}
