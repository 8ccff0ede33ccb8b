package dto

type AssessmentResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	DurationMinutes int      `json:"duration_minutes"`
	RemoteAvailable bool     `json:"remote_available"`
	AdaptiveSupport bool     `json:"adaptive_support"`
	Link            string   `json:"link,omitempty"`
}

type AssessmentListResponse struct {
	Assessments []AssessmentResponse `json:"assessments"`
	Count       int                  `json:"count"`
}

type AssessmentTypesResponse struct {
	Types []string `json:"types"`
}

type ReloadResponse struct {
	Loaded int    `json:"loaded"`
	Source string `json:"source"`
}
