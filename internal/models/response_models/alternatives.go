package response_models

// AlternativeSpot is one model-generated suggestion. ReviewScore is whatever
// number the model produced; no range is enforced.
type AlternativeSpot struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Distance    string  `json:"distance"`
	TravelTime  string  `json:"travelTime"`
	ReviewScore float64 `json:"reviewScore"`
	Image       string  `json:"image,omitempty"`
}

// AlternativeSpotsResult mirrors the wire shape of the model response.
type AlternativeSpotsResult struct {
	AlternativeSpots []AlternativeSpot `json:"alternativeSpots"`
}
