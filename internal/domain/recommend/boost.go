package recommend

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"assessment-recommender/internal/domain/assessment"
	"assessment-recommender/internal/search"
)

// Category ties trigger keywords to additive score adjustments per
// assessment type. A category is detected when any of its keywords
// appears in the query.
type Category struct {
	Name        string             `yaml:"name"`
	Keywords    []string           `yaml:"keywords"`
	Adjustments map[string]float64 `yaml:"adjustments"`
}

// BoostConfig is the keyword boost table applied on top of raw
// similarity scores.
type BoostConfig struct {
	PerTermBoost float64    `yaml:"per_term_boost"`
	PerTermCap   float64    `yaml:"per_term_cap"`
	Categories   []Category `yaml:"categories"`
}

const (
	defaultPerTermBoost = 0.05
	defaultPerTermCap   = 0.25
)

// DefaultBoostConfig returns the built-in boost table used when no
// config file is provided.
func DefaultBoostConfig() BoostConfig {
	return BoostConfig{
		PerTermBoost: defaultPerTermBoost,
		PerTermCap:   defaultPerTermCap,
		Categories: []Category{
			{
				Name: "technical",
				Keywords: []string{
					"java", "python", "developer", "engineer", "programming",
					"coding", "software", "technical", "sql", "backend",
					"frontend", "devops", "code",
				},
				Adjustments: map[string]float64{
					"Technical":  0.15,
					"Cognitive":  0.05,
					"Behavioral": -0.05,
				},
			},
			{
				Name: "sales",
				Keywords: []string{
					"sales", "selling", "negotiation", "revenue", "quota",
					"business development",
				},
				Adjustments: map[string]float64{
					"Behavioral":   0.12,
					"Professional": 0.08,
					"Technical":    -0.10,
				},
			},
			{
				Name: "administrative",
				Keywords: []string{
					"admin", "administrative", "clerk", "clerical", "office",
					"data entry", "secretary",
				},
				Adjustments: map[string]float64{
					"Professional": 0.12,
					"Cognitive":    0.05,
					"Technical":    -0.10,
				},
			},
			{
				Name: "leadership",
				Keywords: []string{
					"leadership", "management", "manager", "executive",
					"supervisor", "director",
				},
				Adjustments: map[string]float64{
					"Behavioral":   0.15,
					"Professional": 0.05,
				},
			},
			{
				Name: "analytical",
				Keywords: []string{
					"analysis", "analyst", "analytical", "reasoning",
					"numerical", "statistics", "data",
				},
				Adjustments: map[string]float64{
					"Cognitive": 0.15,
					"Technical": 0.03,
				},
			},
			{
				Name: "customer_service",
				Keywords: []string{
					"customer", "support", "service", "helpdesk",
					"call center",
				},
				Adjustments: map[string]float64{
					"Behavioral":   0.10,
					"Professional": 0.08,
					"Technical":    -0.05,
				},
			},
			{
				Name: "marketing",
				Keywords: []string{
					"marketing", "seo", "content", "copywriter",
					"social media",
				},
				Adjustments: map[string]float64{
					"Professional": 0.10,
					"Behavioral":   0.05,
					"Technical":    -0.08,
				},
			},
		},
	}
}

// LoadBoostConfig reads the boost table from a YAML file. A missing file
// falls back to the built-in defaults; a file that exists but cannot be
// parsed or validated is an error.
func LoadBoostConfig(path string) (BoostConfig, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultBoostConfig(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultBoostConfig(), nil
		}
		return BoostConfig{}, fmt.Errorf("boost config %s: %w", path, err)
	}

	var cfg BoostConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return BoostConfig{}, fmt.Errorf("boost config %s: %w", path, err)
	}

	cfg, err = cfg.normalize()
	if err != nil {
		return BoostConfig{}, fmt.Errorf("boost config %s: %w", path, err)
	}
	return cfg, nil
}

// normalize canonicalizes keywords and adjustment keys, applies defaults
// for unset per-term values and validates the result.
func (c BoostConfig) normalize() (BoostConfig, error) {
	out := BoostConfig{
		PerTermBoost: c.PerTermBoost,
		PerTermCap:   c.PerTermCap,
	}
	if out.PerTermBoost <= 0 {
		out.PerTermBoost = defaultPerTermBoost
	}
	if out.PerTermCap <= 0 {
		out.PerTermCap = defaultPerTermCap
	}
	if out.PerTermCap < out.PerTermBoost {
		return BoostConfig{}, fmt.Errorf("per_term_cap %v is below per_term_boost %v", out.PerTermCap, out.PerTermBoost)
	}

	out.Categories = make([]Category, 0, len(c.Categories))
	for i, cat := range c.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return BoostConfig{}, fmt.Errorf("category %d: missing name", i)
		}

		keywords := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			kw = search.Normalize(kw)
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			return BoostConfig{}, fmt.Errorf("category %s: needs at least one keyword", name)
		}

		adjustments := make(map[string]float64, len(cat.Adjustments))
		hasAligned := false
		for key, delta := range cat.Adjustments {
			typ, err := assessment.ParseType(key)
			if err != nil {
				return BoostConfig{}, fmt.Errorf("category %s: %w", name, err)
			}
			if math.Abs(delta) > 1 {
				return BoostConfig{}, fmt.Errorf("category %s: adjustment for %s out of range: %v", name, typ, delta)
			}
			adjustments[string(typ)] = delta
			if delta >= 0 {
				hasAligned = true
			}
		}
		if !hasAligned {
			return BoostConfig{}, fmt.Errorf("category %s: needs a non-negative adjustment for its aligned type", name)
		}

		out.Categories = append(out.Categories, Category{
			Name:        name,
			Keywords:    keywords,
			Adjustments: adjustments,
		})
	}
	return out, nil
}

// Detect returns the categories triggered by the query, in config order.
// Single-word keywords match whole words; multi-word keywords match as
// normalized phrases. Adding words to a query never un-detects a category.
func (c BoostConfig) Detect(queryText string) []Category {
	normalized := search.Normalize(queryText)
	if normalized == "" {
		return nil
	}

	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		words[w] = struct{}{}
	}
	padded := " " + normalized + " "

	detected := make([]Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(kw, " ") {
				if strings.Contains(padded, " "+kw+" ") {
					detected = append(detected, cat)
					break
				}
				continue
			}
			if _, ok := words[kw]; ok {
				detected = append(detected, cat)
				break
			}
		}
	}
	return detected
}

// TypeAdjustment sums the adjustment the detected categories apply to
// assessments of type t.
func TypeAdjustment(detected []Category, t assessment.Type) float64 {
	sum := 0.0
	for _, cat := range detected {
		sum += cat.Adjustments[string(t)]
	}
	return sum
}

// termBoost rewards direct overlap between query terms and an
// assessment's name and skills, capped so dense queries cannot dominate
// the similarity signal.
func termBoost(queryTokens []string, haystack string, perTerm, limit float64) float64 {
	if len(queryTokens) == 0 || haystack == "" {
		return 0
	}
	boost := 0.0
	for _, tok := range queryTokens {
		if strings.Contains(haystack, tok) {
			boost += perTerm
		}
		if boost >= limit {
			return limit
		}
	}
	return boost
}
