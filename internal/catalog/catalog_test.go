package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"assessment-recommender/internal/domain/assessment"
)

func TestLoadMissingFileFallsBackToSample(t *testing.T) {
	items, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file must fall back to the sample: %v", err)
	}
	if len(items) != len(Sample()) {
		t.Fatalf("got %d items, want the %d sample entries", len(items), len(Sample()))
	}
}

func TestLoadCorruptExistingFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("corrupt existing file must fail, not fall back")
	}
}

func TestLoadValidFile(t *testing.T) {
	body := `[
  {
    "id": "SHL-100",
    "name": "Coding Assessment for Java",
    "description": "Java programming exercises",
    "type": "Technical",
    "duration_minutes": 60,
    "skills": ["Java", "Debugging"],
    "link": "https://www.shl.com/assessments/coding-java/",
    "remote_available": true,
    "adaptive_testing": false
  }
]`
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	a := items[0]
	if a.ID != "SHL-100" || a.Type != assessment.TypeTechnical || a.DurationMinutes != 60 {
		t.Fatalf("unexpected record: %+v", a)
	}
	if !reflect.DeepEqual(a.Skills, []string{"Java", "Debugging"}) {
		t.Fatalf("skills = %v", a.Skills)
	}
}

func TestDecodeLegacyShape(t *testing.T) {
	body := `[
  {
    "id": "SHL-001",
    "name": "Verbal Reasoning Assessment",
    "description": "Measures written comprehension",
    "type": "cognitive",
    "duration": "25 minutes",
    "skills": "Critical thinking, language comprehension, analytical reasoning",
    "link": "https://www.shl.com/assessments/verbal-reasoning/",
    "remote_available": true,
    "adaptive_testing": false
  }
]`
	items, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	a := items[0]
	if a.Type != assessment.TypeCognitive {
		t.Fatalf("type = %q, want Cognitive", a.Type)
	}
	if a.DurationMinutes != 25 {
		t.Fatalf("duration = %d, want 25", a.DurationMinutes)
	}
	want := []string{"Critical thinking", "language comprehension", "analytical reasoning"}
	if !reflect.DeepEqual(a.Skills, want) {
		t.Fatalf("skills = %v, want %v", a.Skills, want)
	}
}

func TestDecodeRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"unknown type", `[{"id":"X-1","name":"Thing","type":"Quiz"}]`},
		{"missing name", `[{"id":"X-1","type":"Technical"}]`},
		{"skills wrong shape", `[{"id":"X-1","name":"Thing","type":"Technical","skills":42}]`},
	}
	for _, tc := range cases {
		if _, err := Decode([]byte(tc.body)); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"25 minutes", 25},
		{"about 40 min", 40},
		{"60", 60},
		{"N/A", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := parseDurationMinutes(tc.in); got != tc.want {
			t.Fatalf("parseDurationMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSampleIsValidAndCoversAllTypes(t *testing.T) {
	seen := map[assessment.Type]bool{}
	for _, a := range Sample() {
		if err := a.Validate(); err != nil {
			t.Fatalf("sample entry %s invalid: %v", a.ID, err)
		}
		seen[a.Type] = true
	}
	for _, typ := range []assessment.Type{
		assessment.TypeCognitive,
		assessment.TypeTechnical,
		assessment.TypeBehavioral,
		assessment.TypeProfessional,
	} {
		if !seen[typ] {
			t.Fatalf("sample catalog missing type %s", typ)
		}
	}
}
