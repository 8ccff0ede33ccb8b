package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"assessment-recommender/internal/domain/assessment"
)

// DefaultPath is where the catalog file is looked up when the operator
// does not configure one.
const DefaultPath = "data/shl_assessments.json"

// record is the on-disk catalog entry. Two vintages are accepted: the
// current shape with duration_minutes and a skills array, and the legacy
// shape with a "25 minutes" duration string and comma-joined skills.
type record struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	DurationMinutes *int            `json:"duration_minutes"`
	Duration        string          `json:"duration"`
	Skills          json.RawMessage `json:"skills"`
	Link            string          `json:"link"`
	RemoteAvailable bool            `json:"remote_available"`
	AdaptiveTesting bool            `json:"adaptive_testing"`
}

// Load reads the assessment catalog from path. A missing file falls back
// to the embedded sample catalog so the service can start on a fresh
// checkout; a file that exists but cannot be read or decoded is an error,
// because serving sample data in place of an operator-provided catalog
// would hide the corruption.
func Load(path string) ([]assessment.Assessment, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Catalog] file not found, using embedded sample path=%s", path)
			return Sample(), nil
		}
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	items, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	log.Printf("[Catalog] loaded assessments path=%s count=%d", path, len(items))
	return items, nil
}

// Decode parses a JSON catalog document into validated assessments.
func Decode(raw []byte) ([]assessment.Assessment, error) {
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("no assessments in catalog")
	}

	items := make([]assessment.Assessment, 0, len(records))
	for i, r := range records {
		a, err := r.toAssessment()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, a)
	}
	return items, nil
}

// saveRecord is the write-side shape; Save always emits the current
// vintage, never the legacy duration-string form.
type saveRecord struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	DurationMinutes int      `json:"duration_minutes"`
	RemoteAvailable bool     `json:"remote_available"`
	AdaptiveTesting bool     `json:"adaptive_testing"`
	Link            string   `json:"link,omitempty"`
}

// Save writes the catalog to path, staging through a temp file in the
// same directory and renaming, so a concurrent Load never observes a
// half-written file. Every record is validated first; an empty catalog
// is refused because Load would reject it anyway.
func Save(path string, items []assessment.Assessment) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	if len(items) == 0 {
		return errors.New("catalog: refusing to write empty catalog")
	}

	records := make([]saveRecord, 0, len(items))
	for i, a := range items {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("catalog: record %d: %w", i, err)
		}
		skills := a.Skills
		if skills == nil {
			skills = []string{}
		}
		records = append(records, saveRecord{
			ID:              a.ID,
			Name:            a.Name,
			Type:            string(a.Type),
			Description:     a.Description,
			Skills:          skills,
			DurationMinutes: a.DurationMinutes,
			RemoteAvailable: a.RemoteAvailable,
			AdaptiveTesting: a.AdaptiveSupport,
			Link:            a.Link,
		})
	}

	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("catalog: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("catalog: %w", err)
	}

	log.Printf("[Catalog] wrote assessments path=%s count=%d", path, len(records))
	return nil
}

func (r record) toAssessment() (assessment.Assessment, error) {
	typ, err := assessment.ParseType(r.Type)
	if err != nil {
		return assessment.Assessment{}, err
	}

	duration := 0
	if r.DurationMinutes != nil {
		duration = *r.DurationMinutes
	} else if r.Duration != "" {
		duration = parseDurationMinutes(r.Duration)
	}

	skills, err := parseSkills(r.Skills)
	if err != nil {
		return assessment.Assessment{}, err
	}

	return assessment.Assessment{
		ID:              r.ID,
		Name:            r.Name,
		Type:            typ,
		Description:     r.Description,
		Skills:          skills,
		DurationMinutes: duration,
		RemoteAvailable: r.RemoteAvailable,
		AdaptiveSupport: r.AdaptiveTesting,
		Link:            r.Link,
	}, nil
}

// parseDurationMinutes extracts the first integer from strings like
// "25 minutes". Anything without digits maps to 0.
func parseDurationMinutes(s string) int {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}

func parseSkills(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimSkills(list), nil
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		return trimSkills(strings.Split(joined, ",")), nil
	}

	return nil, errors.New("skills: expected array or string")
}

func trimSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
