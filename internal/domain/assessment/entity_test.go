package assessment

import "testing"

func TestParseType(t *testing.T) {
	cases := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"Cognitive", TypeCognitive, false},
		{"cognitive", TypeCognitive, false},
		{" TECHNICAL ", TypeTechnical, false},
		{"behavioural", TypeBehavioral, false},
		{"Professional", TypeProfessional, false},
		{"aptitude", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseType(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseType(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseType(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDocumentConcatenatesSearchableFields(t *testing.T) {
	a := Assessment{
		Name:        "Coding Assessment for Python",
		Type:        TypeTechnical,
		Description: "Hands-on programming test",
		Skills:      []string{"Python", "Algorithms"},
	}

	got := a.Document()
	want := "Coding Assessment for Python Hands-on programming test Python Algorithms Technical"
	if got != want {
		t.Fatalf("Document() = %q, want %q", got, want)
	}

	empty := Assessment{Name: "Solo"}
	if empty.Document() != "Solo" {
		t.Fatalf("Document() with sparse fields = %q, want %q", empty.Document(), "Solo")
	}
}

func TestValidate(t *testing.T) {
	valid := Assessment{ID: "SHL-001", Name: "Verbal Reasoning", Type: TypeCognitive, DurationMinutes: 25}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate(valid): unexpected error: %v", err)
	}

	cases := []struct {
		name string
		a    Assessment
	}{
		{"missing id", Assessment{Name: "X", Type: TypeCognitive}},
		{"missing name", Assessment{ID: "SHL-002", Type: TypeCognitive}},
		{"bad type", Assessment{ID: "SHL-003", Name: "X", Type: "Quiz"}},
		{"negative duration", Assessment{ID: "SHL-004", Name: "X", Type: TypeCognitive, DurationMinutes: -5}},
	}
	for _, tc := range cases {
		if err := tc.a.Validate(); err == nil {
			t.Fatalf("Validate(%s): expected error", tc.name)
		}
	}
}

func TestFiltersMatches(t *testing.T) {
	a := Assessment{
		ID:              "SHL-001",
		Name:            "Coding Assessment for Python",
		Type:            TypeTechnical,
		DurationMinutes: 60,
		RemoteAvailable: true,
		AdaptiveSupport: false,
	}

	tech := TypeTechnical
	cog := TypeCognitive
	maxLow := 30
	maxHigh := 90

	cases := []struct {
		name string
		f    Filters
		want bool
	}{
		{"empty filters match everything", Filters{}, true},
		{"matching type", Filters{TestType: &tech}, true},
		{"mismatching type", Filters{TestType: &cog}, false},
		{"remote only on remote assessment", Filters{RemoteOnly: true}, true},
		{"adaptive only on non-adaptive assessment", Filters{AdaptiveOnly: true}, false},
		{"duration ceiling below", Filters{MaxDurationMinutes: &maxLow}, false},
		{"duration ceiling above", Filters{MaxDurationMinutes: &maxHigh}, true},
	}
	for _, tc := range cases {
		if got := tc.f.Matches(a); got != tc.want {
			t.Fatalf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}
