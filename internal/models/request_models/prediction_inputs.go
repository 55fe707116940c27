package request_models

// CongestionInput carries the spot name plus the four free-text context
// fields fed to the congestion prompt. Each context field is expected to stay
// under roughly 300 words; the bound is documented, not enforced.
type CongestionInput struct {
	SpotName               string `json:"spotName"`
	RecentSocialMediaPosts string `json:"recentSocialMediaPosts"`
	LocationData           string `json:"locationData"`
	OfficialAnnouncements  string `json:"officialAnnouncements"`
	HistoricalData         string `json:"historicalData"`
}

// AlternativesInput carries everything the recommendation prompt needs.
// CurrentLocation is a base64 data URI standing in for real geolocation.
// CandidateSpots are catalog spot summaries folded into the prompt so the
// model grounds its suggestions locally; the list may be empty.
type AlternativesInput struct {
	UserPreferences    string   `json:"userPreferences"`
	CurrentLocation    string   `json:"currentLocation"`
	CongestionLevel    string   `json:"congestionLevel"`
	DesiredSpotDetails string   `json:"desiredSpotDetails"`
	CandidateSpots     []string `json:"-"`
}
