package dto

// The /api/v1 shapes mirror the wire format the service has always
// documented, envelope-free, so existing clients keep working.

type V1RecommendRequest struct {
	JobDescription string `json:"job_description"`
	Query          string `json:"query"`
}

type V1Assessment struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	MatchScore      float64  `json:"match_score"`
	Skills          []string `json:"skills"`
	RemoteAvailable bool     `json:"remote_available"`
	DurationMinutes int      `json:"duration_minutes"`
}

type V1RecommendData struct {
	Assessments []V1Assessment `json:"assessments"`
	Count       int            `json:"count"`
}

type V1RecommendResponse struct {
	Success bool            `json:"success"`
	Data    V1RecommendData `json:"data"`
}

type V1Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
