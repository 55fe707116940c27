package response_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCongestionLevel(t *testing.T) {
	cases := []struct {
		input string
		want  CongestionLevel
		ok    bool
	}{
		{"low", CongestionLow, true},
		{"moderate", CongestionModerate, true},
		{"high", CongestionHigh, true},
		{"  High ", CongestionHigh, true},
		{"MODERATE", CongestionModerate, true},
		{"unknown", CongestionUnknown, false},
		{"busy", CongestionUnknown, false},
		{"", CongestionUnknown, false},
	}

	for _, c := range cases {
		got, ok := ParseCongestionLevel(c.input)
		assert.Equal(t, c.want, got, "input %q", c.input)
		assert.Equal(t, c.ok, ok, "input %q", c.input)
	}
}

func TestAllowsAlternatives(t *testing.T) {
	assert.False(t, CongestionLow.AllowsAlternatives())
	assert.True(t, CongestionModerate.AllowsAlternatives())
	assert.True(t, CongestionHigh.AllowsAlternatives())
	assert.False(t, CongestionUnknown.AllowsAlternatives())
}

func TestDisplayCoversEveryLevel(t *testing.T) {
	cases := map[CongestionLevel]CongestionDisplay{
		CongestionLow:      {Label: "Low", Color: "green"},
		CongestionModerate: {Label: "Moderate", Color: "amber"},
		CongestionHigh:     {Label: "High", Color: "red"},
		CongestionUnknown:  {Label: "Unknown", Color: "gray"},
	}

	for level, want := range cases {
		assert.Equal(t, want, level.Display())
	}

	// Anything outside the enum renders as the degraded badge.
	assert.Equal(t, CongestionDisplay{Label: "Unknown", Color: "gray"}, CongestionLevel("busy").Display())
}
