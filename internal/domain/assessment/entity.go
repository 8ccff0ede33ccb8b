package assessment

import (
	"fmt"
	"strings"
)

// Type buckets assessments by what they measure.
type Type string

const (
	TypeCognitive    Type = "Cognitive"
	TypeTechnical    Type = "Technical"
	TypeBehavioral   Type = "Behavioral"
	TypeProfessional Type = "Professional"
)

// ParseType maps a free-form label onto a canonical Type. Matching is
// case-insensitive and tolerant of surrounding whitespace.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cognitive":
		return TypeCognitive, nil
	case "technical":
		return TypeTechnical, nil
	case "behavioral", "behavioural":
		return TypeBehavioral, nil
	case "professional":
		return TypeProfessional, nil
	}
	return "", fmt.Errorf("unknown assessment type %q", s)
}

type Assessment struct {
	ID              string
	Name            string
	Type            Type
	Description     string
	Skills          []string
	DurationMinutes int
	RemoteAvailable bool
	AdaptiveSupport bool
	Link            string
}

// Document returns the text a vectorizer indexes for this assessment:
// name, description, skills and type concatenated in that order.
func (a Assessment) Document() string {
	parts := make([]string, 0, 4)
	if a.Name != "" {
		parts = append(parts, a.Name)
	}
	if a.Description != "" {
		parts = append(parts, a.Description)
	}
	if len(a.Skills) > 0 {
		parts = append(parts, strings.Join(a.Skills, " "))
	}
	if a.Type != "" {
		parts = append(parts, string(a.Type))
	}
	return strings.Join(parts, " ")
}

// Validate reports the first structural problem with the record, if any.
func (a Assessment) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("assessment: missing id")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("assessment %s: missing name", a.ID)
	}
	if _, err := ParseType(string(a.Type)); err != nil {
		return fmt.Errorf("assessment %s: %w", a.ID, err)
	}
	if a.DurationMinutes < 0 {
		return fmt.Errorf("assessment %s: negative duration", a.ID)
	}
	return nil
}

// Filters narrows a result set. Zero values mean "no constraint";
// RemoteOnly and AdaptiveOnly only ever exclude when set to true.
type Filters struct {
	TestType           *Type
	RemoteOnly         bool
	AdaptiveOnly       bool
	MaxDurationMinutes *int
}

// Matches reports whether the assessment satisfies every set constraint.
func (f Filters) Matches(a Assessment) bool {
	if f.TestType != nil && a.Type != *f.TestType {
		return false
	}
	if f.RemoteOnly && !a.RemoteAvailable {
		return false
	}
	if f.AdaptiveOnly && !a.AdaptiveSupport {
		return false
	}
	if f.MaxDurationMinutes != nil && a.DurationMinutes > *f.MaxDurationMinutes {
		return false
	}
	return true
}

// Query is one recommendation request after normalization at the boundary.
type Query struct {
	Text    string
	Filters Filters
	TopK    int
}
