package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"assessment-recommender/internal/catalog"
	"assessment-recommender/internal/config"
	"assessment-recommender/internal/delivery/http/middleware"
	"assessment-recommender/internal/delivery/http/routes"
	"assessment-recommender/internal/domain/assessment"
	"assessment-recommender/internal/domain/recommend"
	"assessment-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const testInternalToken = "test-internal-token"

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type recommendItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Skills          []string `json:"skills"`
	DurationMinutes int      `json:"duration_minutes"`
	Score           float64  `json:"score"`
}

type recommendData struct {
	Recommendations []recommendItem `json:"recommendations"`
	Count           int             `json:"count"`
}

type v1AssessmentItem struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	MatchScore      float64  `json:"match_score"`
	Skills          []string `json:"skills"`
	RemoteAvailable bool     `json:"remote_available"`
	DurationMinutes int      `json:"duration_minutes"`
}

type v1RecommendResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Assessments []v1AssessmentItem `json:"assessments"`
		Count       int                `json:"count"`
	} `json:"data"`
}

type v1ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type assessmentListData struct {
	Assessments []recommendItem `json:"assessments"`
	Count       int             `json:"count"`
}

func fixtureAssessments() []assessment.Assessment {
	return []assessment.Assessment{
		{ID: "A-100", Name: "Verbal Reasoning Test", Type: assessment.TypeCognitive, Description: "Verbal comprehension and reasoning", Skills: []string{"Verbal Reasoning"}, DurationMinutes: 20, RemoteAvailable: true, AdaptiveSupport: true},
		{ID: "A-200", Name: "Java Coding Assessment", Type: assessment.TypeTechnical, Description: "Core java coding exercises", Skills: []string{"Java", "Coding"}, DurationMinutes: 45, RemoteAvailable: true},
		{ID: "A-300", Name: "Python Data Test", Type: assessment.TypeTechnical, Description: "Python data manipulation", Skills: []string{"Python"}, DurationMinutes: 35},
		{ID: "A-400", Name: "Leadership Judgement", Type: assessment.TypeBehavioral, Description: "Leadership situational judgement", Skills: []string{"Leadership"}, DurationMinutes: 30, RemoteAvailable: true},
		{ID: "A-500", Name: "Office Administration Test", Type: assessment.TypeProfessional, Description: "Scheduling and office administration", Skills: []string{"Organization"}, DurationMinutes: 25, RemoteAvailable: true},
	}
}

func writeCatalogFile(t *testing.T, items []assessment.Assessment) string {
	t.Helper()

	type record struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		Type            string   `json:"type"`
		Description     string   `json:"description"`
		Skills          []string `json:"skills"`
		DurationMinutes int      `json:"duration_minutes"`
		RemoteAvailable bool     `json:"remote_available"`
		AdaptiveTesting bool     `json:"adaptive_testing"`
	}
	records := make([]record, 0, len(items))
	for _, a := range items {
		records = append(records, record{
			ID:              a.ID,
			Name:            a.Name,
			Type:            string(a.Type),
			Description:     a.Description,
			Skills:          a.Skills,
			DurationMinutes: a.DurationMinutes,
			RemoteAvailable: a.RemoteAvailable,
			AdaptiveTesting: a.AdaptiveSupport,
		})
	}
	b, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func newTestApp(t *testing.T, provider *recommend.Provider, source catalog.Source, internalToken string) *fiber.App {
	t.Helper()

	recommendUC := usecase.NewRecommendationUsecase(provider, nil, 0, nil)
	catalogUC := usecase.NewCatalogUsecase(source, recommend.DefaultBoostConfig(), provider, nil, nil, nil)

	cfg := config.Config{InternalToken: internalToken}

	app := fiber.New(fiber.Config{})
	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	routes.NewRegistry(cfg, recommendUC, catalogUC, nil, nil).Register(app)
	return app
}

func readyApp(t *testing.T) *fiber.App {
	t.Helper()

	eng, err := recommend.NewEngine(fixtureAssessments(), recommend.DefaultBoostConfig())
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return newTestApp(t, recommend.NewProvider(eng), nil, testInternalToken)
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload any, header map[string]string) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%s %s: marshal payload: %v", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: request error: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("%s %s: read body: %v", method, path, err)
	}
	return resp.StatusCode, raw
}

func decodeEnvelope(t *testing.T, raw []byte) semanticResponse {
	t.Helper()

	var sr semanticResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, raw)
	}
	return sr
}

func TestAPI_Recommend(t *testing.T) {
	app := readyApp(t)

	status, raw := doRequest(t, app, "POST", "/api/recommend", map[string]any{"job_description": "java developer"}, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d (body=%s)", status, raw)
	}

	sr := decodeEnvelope(t, raw)
	if sr.Status != 200 {
		t.Fatalf("expected envelope status=200, got %d (message=%s)", sr.Status, sr.Message)
	}
	if sr.Message != "success" {
		t.Fatalf("expected message=success, got %s", sr.Message)
	}

	var data recommendData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Count != 5 || len(data.Recommendations) != 5 {
		t.Fatalf("expected all 5 assessments, got count=%d len=%d", data.Count, len(data.Recommendations))
	}
	if data.Recommendations[0].ID != "A-200" {
		t.Fatalf("expected A-200 first for a java query, got %s", data.Recommendations[0].ID)
	}
	for i, it := range data.Recommendations {
		if it.Score < 0 || it.Score > 1 {
			t.Fatalf("score out of range at idx=%d: %f", i, it.Score)
		}
		if i > 0 && it.Score > data.Recommendations[i-1].Score {
			t.Fatalf("expected scores descending at idx=%d: prev=%f cur=%f", i, data.Recommendations[i-1].Score, it.Score)
		}
	}
}

func TestAPI_Recommend_EmptyDescription(t *testing.T) {
	app := readyApp(t)

	status, raw := doRequest(t, app, "POST", "/api/recommend", map[string]any{"job_description": "  "}, nil)
	if status != 400 {
		t.Fatalf("expected 400, got %d", status)
	}

	sr := decodeEnvelope(t, raw)
	if sr.Message != "Job description is required" {
		t.Fatalf("unexpected message %q", sr.Message)
	}
}

func TestAPI_Recommend_TypeFilter(t *testing.T) {
	app := readyApp(t)

	body := map[string]any{
		"job_description": "reasoning ability",
		"filters":         map[string]any{"test_type": "cognitive"},
	}
	status, raw := doRequest(t, app, "POST", "/api/recommend", body, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d (body=%s)", status, raw)
	}

	var data recommendData
	if err := json.Unmarshal(decodeEnvelope(t, raw).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Count != 1 || data.Recommendations[0].ID != "A-100" {
		t.Fatalf("expected only A-100, got %+v", data.Recommendations)
	}
}

func TestAPI_Recommend_FallbackWhenFiltersExcludeAll(t *testing.T) {
	app := readyApp(t)

	body := map[string]any{
		"job_description": "java developer",
		"filters":         map[string]any{"max_duration_minutes": 1},
	}
	status, raw := doRequest(t, app, "POST", "/api/recommend", body, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d (body=%s)", status, raw)
	}

	var data recommendData
	if err := json.Unmarshal(decodeEnvelope(t, raw).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Count != 1 {
		t.Fatalf("expected exactly one fallback result, got %d", data.Count)
	}
	if data.Recommendations[0].ID != "A-200" {
		t.Fatalf("expected the best overall match as fallback, got %s", data.Recommendations[0].ID)
	}
}

func TestAPI_V1Recommend_QueryAlias(t *testing.T) {
	app := readyApp(t)

	status, raw := doRequest(t, app, "POST", "/api/v1/recommend", map[string]any{"query": "leadership team management"}, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d (body=%s)", status, raw)
	}

	var out v1RecommendResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode v1 response: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success=true")
	}
	if out.Data.Count == 0 || out.Data.Count != len(out.Data.Assessments) {
		t.Fatalf("bad count=%d len=%d", out.Data.Count, len(out.Data.Assessments))
	}
	if out.Data.Assessments[0].Name != "Leadership Judgement" {
		t.Fatalf("expected Leadership Judgement first, got %s", out.Data.Assessments[0].Name)
	}
	if out.Data.Assessments[0].MatchScore <= 0 {
		t.Fatalf("expected positive match_score, got %f", out.Data.Assessments[0].MatchScore)
	}
}

func TestAPI_V1Recommend_MissingQuery(t *testing.T) {
	app := readyApp(t)

	status, raw := doRequest(t, app, "POST", "/api/v1/recommend", map[string]any{}, nil)
	if status != 400 {
		t.Fatalf("expected 400, got %d", status)
	}

	var out v1ErrorResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if out.Error != "Bad request" || out.Message != "Job description or query is required" {
		t.Fatalf("unexpected error body %+v", out)
	}
}

func TestAPI_V1Recommend_EngineNotReady(t *testing.T) {
	app := newTestApp(t, recommend.NewProvider(nil), nil, testInternalToken)

	status, raw := doRequest(t, app, "POST", "/api/v1/recommend", map[string]any{"query": "java"}, nil)
	if status != 503 {
		t.Fatalf("expected 503, got %d", status)
	}

	var out v1ErrorResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if out.Error != "Service unavailable" {
		t.Fatalf("unexpected error %q", out.Error)
	}

	status, _ = doRequest(t, app, "GET", "/api/v1/assessments", nil, nil)
	if status != 503 {
		t.Fatalf("expected 503 from listing, got %d", status)
	}
}

func TestAPI_Health(t *testing.T) {
	app := readyApp(t)

	status, raw := doRequest(t, app, "GET", "/health", nil, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}

	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if out["status"] != "ok" || out["message"] != "API is operational" {
		t.Fatalf("unexpected health body %v", out)
	}
	if len(out) != 2 {
		t.Fatalf("expected exactly two fields, got %v", out)
	}
}

func TestAPI_AssessmentsListAndTypes(t *testing.T) {
	app := readyApp(t)

	status, raw := doRequest(t, app, "GET", "/api/v1/assessments", nil, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var list assessmentListData
	if err := json.Unmarshal(decodeEnvelope(t, raw).Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 5 {
		t.Fatalf("expected 5 assessments, got %d", list.Count)
	}

	status, raw = doRequest(t, app, "GET", "/api/v1/assessments?type=technical", nil, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var filtered assessmentListData
	if err := json.Unmarshal(decodeEnvelope(t, raw).Data, &filtered); err != nil {
		t.Fatalf("decode filtered list: %v", err)
	}
	if filtered.Count != 2 {
		t.Fatalf("expected 2 technical assessments, got %d", filtered.Count)
	}
	for _, a := range filtered.Assessments {
		if a.Type != "Technical" {
			t.Fatalf("unexpected type %s in filtered list", a.Type)
		}
	}

	status, _ = doRequest(t, app, "GET", "/api/v1/assessments?type=bogus", nil, nil)
	if status != 400 {
		t.Fatalf("expected 400 for unknown type, got %d", status)
	}

	status, raw = doRequest(t, app, "GET", "/api/v1/assessments/types", nil, nil)
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var types struct {
		Types []string `json:"types"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, raw).Data, &types); err != nil {
		t.Fatalf("decode types: %v", err)
	}
	want := []string{"Behavioral", "Cognitive", "Professional", "Technical"}
	if len(types.Types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types.Types)
	}
	for i := range want {
		if types.Types[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, types.Types)
		}
	}
}

func TestAPI_CatalogReload(t *testing.T) {
	path := writeCatalogFile(t, fixtureAssessments()[:3])

	eng, err := recommend.NewEngine(fixtureAssessments(), recommend.DefaultBoostConfig())
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	app := newTestApp(t, recommend.NewProvider(eng), catalog.FileSource{Path: path}, testInternalToken)

	status, _ := doRequest(t, app, "POST", "/internal/catalog/reload", nil, nil)
	if status != 401 {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	status, _ = doRequest(t, app, "POST", "/internal/catalog/reload", nil, map[string]string{"X-Internal-Token": "wrong"})
	if status != 401 {
		t.Fatalf("expected 401 with wrong token, got %d", status)
	}

	status, raw := doRequest(t, app, "POST", "/internal/catalog/reload", nil, map[string]string{"X-Internal-Token": testInternalToken})
	if status != 200 {
		t.Fatalf("expected 200, got %d (body=%s)", status, raw)
	}
	var reload struct {
		Loaded int    `json:"loaded"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, raw).Data, &reload); err != nil {
		t.Fatalf("decode reload data: %v", err)
	}
	if reload.Loaded != 3 || reload.Source != "file" {
		t.Fatalf("unexpected reload result %+v", reload)
	}

	status, raw = doRequest(t, app, "GET", "/api/v1/assessments", nil, nil)
	if status != 200 {
		t.Fatalf("expected 200 after reload, got %d", status)
	}
	var list assessmentListData
	if err := json.Unmarshal(decodeEnvelope(t, raw).Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 3 {
		t.Fatalf("expected the reloaded catalog of 3, got %d", list.Count)
	}
}

func TestAPI_CatalogReload_DisabledWithoutConfiguredToken(t *testing.T) {
	eng, err := recommend.NewEngine(fixtureAssessments(), recommend.DefaultBoostConfig())
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	app := newTestApp(t, recommend.NewProvider(eng), nil, "")

	status, _ := doRequest(t, app, "POST", "/internal/catalog/reload", nil, map[string]string{"X-Internal-Token": "anything"})
	if status != 401 {
		t.Fatalf("expected 401 when no token is configured, got %d", status)
	}
}
