package recommend

import (
	"testing"

	"assessment-recommender/internal/domain/assessment"
)

func testCatalog() []assessment.Assessment {
	return []assessment.Assessment{
		{
			ID: "A-001", Name: "Verbal Reasoning Assessment", Type: assessment.TypeCognitive,
			Description:     "Evaluates comprehension and reasoning with written information",
			Skills:          []string{"Verbal Reasoning", "Comprehension"},
			DurationMinutes: 25, RemoteAvailable: true, AdaptiveSupport: true,
		},
		{
			ID: "A-002", Name: "Numerical Reasoning Assessment", Type: assessment.TypeCognitive,
			Description:     "Measures numerical analysis and interpretation of tables and charts",
			Skills:          []string{"Numerical Analysis", "Interpretation"},
			DurationMinutes: 30, RemoteAvailable: true, AdaptiveSupport: true,
		},
		{
			ID: "A-003", Name: "Coding Assessment for Java", Type: assessment.TypeTechnical,
			Description:     "Hands-on Java programming and debugging exercises for developer roles",
			Skills:          []string{"Java", "Programming", "Debugging"},
			DurationMinutes: 60, RemoteAvailable: true, AdaptiveSupport: false,
		},
		{
			ID: "A-004", Name: "Coding Assessment for Python", Type: assessment.TypeTechnical,
			Description:     "Python programming problems covering algorithms and structures",
			Skills:          []string{"Python", "Programming", "Algorithms"},
			DurationMinutes: 60, RemoteAvailable: true, AdaptiveSupport: false,
		},
		{
			ID: "A-005", Name: "Sales Aptitude Assessment", Type: assessment.TypeBehavioral,
			Description:     "Scenario based evaluation of persuasion and customer focus for sales roles",
			Skills:          []string{"Sales", "Negotiation", "Persuasion"},
			DurationMinutes: 35, RemoteAvailable: false, AdaptiveSupport: false,
		},
		{
			ID: "A-006", Name: "Leadership Competency Assessment", Type: assessment.TypeBehavioral,
			Description:     "Assesses people management and decision making in leadership scenarios",
			Skills:          []string{"Leadership", "Management", "Decision Making"},
			DurationMinutes: 45, RemoteAvailable: true, AdaptiveSupport: false,
		},
		{
			ID: "A-007", Name: "Office Administration Assessment", Type: assessment.TypeProfessional,
			Description:     "Clerical accuracy scheduling and office workflow tasks",
			Skills:          []string{"Administration", "Scheduling", "Accuracy"},
			DurationMinutes: 30, RemoteAvailable: true, AdaptiveSupport: false,
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testCatalog(), DefaultBoostConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineRejectsBadInput(t *testing.T) {
	if _, err := NewEngine(nil, DefaultBoostConfig()); err == nil {
		t.Fatalf("expected error for empty catalog")
	}

	bad := testCatalog()
	bad[0].Type = "Quiz"
	if _, err := NewEngine(bad, DefaultBoostConfig()); err == nil {
		t.Fatalf("expected error for invalid record")
	}

	badCfg := BoostConfig{Categories: []Category{{Name: "x", Keywords: []string{"y"}, Adjustments: map[string]float64{"Technical": -0.2}}}}
	if _, err := NewEngine(testCatalog(), badCfg); err == nil {
		t.Fatalf("expected error for invalid boost config")
	}
}

func TestRecommendRanksAlignedTypeFirst(t *testing.T) {
	e := newTestEngine(t)

	got := e.Recommend(assessment.Query{Text: "Hiring a Java developer with strong programming skills"})
	if len(got) == 0 {
		t.Fatalf("expected recommendations")
	}
	if got[0].Assessment.ID != "A-003" {
		t.Fatalf("top result = %s, want the Java coding assessment", got[0].Assessment.ID)
	}
	if got[0].Assessment.Type != assessment.TypeTechnical || got[1].Assessment.Type != assessment.TypeTechnical {
		t.Fatalf("technical assessments must lead for a developer query, got %s then %s",
			got[0].Assessment.Type, got[1].Assessment.Type)
	}
	for _, s := range got {
		if s.Score < 0 || s.Score > 1 {
			t.Fatalf("score %v for %s outside [0,1]", s.Score, s.Assessment.ID)
		}
	}
}

func TestRecommendAppliesFilters(t *testing.T) {
	e := newTestEngine(t)
	tech := assessment.TypeTechnical

	got := e.Recommend(assessment.Query{
		Text:    "software engineer",
		Filters: assessment.Filters{TestType: &tech},
	})
	if len(got) != 2 {
		t.Fatalf("expected both technical assessments, got %d", len(got))
	}
	for _, s := range got {
		if s.Assessment.Type != assessment.TypeTechnical {
			t.Fatalf("filter leak: %s is %s", s.Assessment.ID, s.Assessment.Type)
		}
	}

	got = e.Recommend(assessment.Query{
		Text:    "sales representative",
		Filters: assessment.Filters{RemoteOnly: true},
	})
	for _, s := range got {
		if !s.Assessment.RemoteAvailable {
			t.Fatalf("remote-only filter leak: %s", s.Assessment.ID)
		}
	}

	maxDur := 30
	got = e.Recommend(assessment.Query{
		Text:    "quick cognitive screen",
		Filters: assessment.Filters{MaxDurationMinutes: &maxDur},
	})
	if len(got) == 0 {
		t.Fatalf("expected short assessments")
	}
	for _, s := range got {
		if s.Assessment.DurationMinutes > maxDur {
			t.Fatalf("duration filter leak: %s runs %d minutes", s.Assessment.ID, s.Assessment.DurationMinutes)
		}
	}
}

func TestRecommendFallsBackToBestOverall(t *testing.T) {
	e := newTestEngine(t)

	tech := assessment.TypeTechnical
	maxDur := 10
	got := e.Recommend(assessment.Query{
		Text:    "Hiring a Java developer",
		Filters: assessment.Filters{TestType: &tech, MaxDurationMinutes: &maxDur},
	})
	if len(got) != 1 {
		t.Fatalf("fallback must return exactly one result, got %d", len(got))
	}
	if got[0].Assessment.ID != "A-003" {
		t.Fatalf("fallback = %s, want the overall best match A-003", got[0].Assessment.ID)
	}
}

func TestRecommendEmptyQueryKeepsCatalogOrder(t *testing.T) {
	e := newTestEngine(t)

	got := e.Recommend(assessment.Query{Text: "   "})
	if len(got) != len(testCatalog()) {
		t.Fatalf("expected the whole catalog under default top-k, got %d", len(got))
	}
	for i, s := range got {
		if s.Score != 0 {
			t.Fatalf("empty query must score zero, got %v for %s", s.Score, s.Assessment.ID)
		}
		if want := testCatalog()[i].ID; s.Assessment.ID != want {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, s.Assessment.ID, want)
		}
	}
}

func TestRecommendHonorsTopK(t *testing.T) {
	e := newTestEngine(t)

	got := e.Recommend(assessment.Query{Text: "assessment", TopK: 3})
	if len(got) != 3 {
		t.Fatalf("top-k = %d, want 3", len(got))
	}

	got = e.Recommend(assessment.Query{Text: "assessment"})
	if len(got) != len(testCatalog()) {
		t.Fatalf("default top-k should cover the whole small catalog, got %d", len(got))
	}
}

func TestRecommendClipsAdversarialBoosts(t *testing.T) {
	cfg := BoostConfig{Categories: []Category{
		{Name: "max", Keywords: []string{"java"}, Adjustments: map[string]float64{"Technical": 1.0}},
		{Name: "min", Keywords: []string{"java"}, Adjustments: map[string]float64{"Behavioral": -1.0, "Cognitive": 0}},
	}}
	e, err := NewEngine(testCatalog(), cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	got := e.Recommend(assessment.Query{Text: "java"})
	for _, s := range got {
		if s.Score < 0 || s.Score > 1 {
			t.Fatalf("score %v for %s escaped [0,1]", s.Score, s.Assessment.ID)
		}
		if s.Assessment.Type == assessment.TypeTechnical && s.Score != 1 {
			t.Fatalf("technical score should clip to 1, got %v", s.Score)
		}
		if s.Assessment.Type == assessment.TypeBehavioral && s.Score != 0 {
			t.Fatalf("behavioral score should clip to 0, got %v", s.Score)
		}
	}
}

func TestRecommendIsDeterministicAcrossRebuilds(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)

	q := assessment.Query{Text: "numerical analysis for data teams"}
	ra := a.Recommend(q)
	rb := b.Recommend(q)
	if len(ra) != len(rb) {
		t.Fatalf("result sizes diverge: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i].Assessment.ID != rb[i].Assessment.ID || ra[i].Score != rb[i].Score {
			t.Fatalf("rebuild diverges at %d: %s/%v vs %s/%v",
				i, ra[i].Assessment.ID, ra[i].Score, rb[i].Assessment.ID, rb[i].Score)
		}
	}
}

func TestRecommendDoesNotMutateCatalog(t *testing.T) {
	items := testCatalog()
	e, err := NewEngine(items, DefaultBoostConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	_ = e.Recommend(assessment.Query{Text: "java developer"})

	want := testCatalog()
	for i := range items {
		if items[i].ID != want[i].ID || items[i].Name != want[i].Name {
			t.Fatalf("input catalog mutated at %d", i)
		}
	}

	snapshot := e.Assessments()
	snapshot[0].Name = "tampered"
	if e.Assessments()[0].Name == "tampered" {
		t.Fatalf("Assessments() must return a copy")
	}
}
