package dto

type RecommendFilters struct {
	TestType           string `json:"test_type"`
	RemoteAvailable    bool   `json:"remote_available"`
	AdaptiveTesting    bool   `json:"adaptive_testing"`
	MaxDurationMinutes *int   `json:"max_duration_minutes"`
}

type RecommendRequest struct {
	JobDescription string           `json:"job_description"`
	Filters        RecommendFilters `json:"filters"`
	TopK           int              `json:"top_k"`
}

type RecommendationItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	DurationMinutes int      `json:"duration_minutes"`
	RemoteAvailable bool     `json:"remote_available"`
	AdaptiveSupport bool     `json:"adaptive_support"`
	Link            string   `json:"link,omitempty"`
	Score           float64  `json:"score"`
}

type RecommendResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	Count           int                  `json:"count"`
}
