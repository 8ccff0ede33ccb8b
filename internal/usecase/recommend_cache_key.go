package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"assessment-recommender/internal/domain/assessment"
)

type recommendCacheKeyInput struct {
	Query        string `json:"query"`
	TestType     string `json:"test_type"`
	RemoteOnly   bool   `json:"remote_only"`
	AdaptiveOnly bool   `json:"adaptive_only"`
	MaxDuration  int    `json:"max_duration"`
	TopK         int    `json:"top_k"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// RecommendCacheKey derives a stable key from the effective request
// parameters. A test_type that does not parse keys the same as no
// test_type at all, matching how the engine treats it.
func RecommendCacheKey(params RecommendParams) string {
	testType := ""
	if t, err := assessment.ParseType(params.TestType); err == nil {
		testType = string(t)
	}

	maxDur := -1
	if params.MaxDurationMinutes != nil && *params.MaxDurationMinutes >= 0 {
		maxDur = *params.MaxDurationMinutes
	}

	in := recommendCacheKeyInput{
		Query:        normalizeCacheValue(params.Query),
		TestType:     testType,
		RemoteOnly:   params.RemoteOnly,
		AdaptiveOnly: params.AdaptiveOnly,
		MaxDuration:  maxDur,
		TopK:         params.TopK,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recommend:" + hex.EncodeToString(sum[:])
}
