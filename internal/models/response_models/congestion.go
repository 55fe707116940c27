package response_models

import "strings"

// CongestionLevel is the ordinal crowd-density classification. The model only
// ever returns low/moderate/high; unknown is the degraded fallback written by
// callers when a prediction fails.
type CongestionLevel string

const (
	CongestionLow      CongestionLevel = "low"
	CongestionModerate CongestionLevel = "moderate"
	CongestionHigh     CongestionLevel = "high"
	CongestionUnknown  CongestionLevel = "unknown"
)

// ParseCongestionLevel normalizes a model-returned level string. The second
// return value is false when the string is not one of the three model levels.
func ParseCongestionLevel(s string) (CongestionLevel, bool) {
	switch CongestionLevel(strings.ToLower(strings.TrimSpace(s))) {
	case CongestionLow:
		return CongestionLow, true
	case CongestionModerate:
		return CongestionModerate, true
	case CongestionHigh:
		return CongestionHigh, true
	default:
		return CongestionUnknown, false
	}
}

// AllowsAlternatives reports whether the alternatives flow is reachable for
// this level.
func (l CongestionLevel) AllowsAlternatives() bool {
	return l == CongestionModerate || l == CongestionHigh
}

type CongestionDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Display maps every level to its badge attributes so the rendering side
// never branches on raw strings.
func (l CongestionLevel) Display() CongestionDisplay {
	switch l {
	case CongestionLow:
		return CongestionDisplay{Label: "Low", Color: "green"}
	case CongestionModerate:
		return CongestionDisplay{Label: "Moderate", Color: "amber"}
	case CongestionHigh:
		return CongestionDisplay{Label: "High", Color: "red"}
	default:
		return CongestionDisplay{Label: "Unknown", Color: "gray"}
	}
}

// CongestionInfo is the per-spot prediction result.
type CongestionInfo struct {
	Level       CongestionLevel `json:"level"`
	Explanation string          `json:"explanation,omitempty"`
}

// CongestionPrediction mirrors the wire shape of the model response.
type CongestionPrediction struct {
	CongestionLevel CongestionLevel `json:"congestionLevel"`
	Explanation     string          `json:"explanation"`
}
