package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type upstreamReply struct {
	status int
	text   string
}

// fakeGemini serves scripted generateContent replies in order and
// counts how many calls were made.
type fakeGemini struct {
	mu      sync.Mutex
	replies []upstreamReply
	calls   int
}

func (f *fakeGemini) handler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	i := f.calls
	f.calls++
	f.mu.Unlock()

	if i >= len(f.replies) {
		http.Error(w, "unexpected extra call", http.StatusInternalServerError)
		return
	}
	reply := f.replies[i]
	if reply.status != 0 && reply.status != http.StatusOK {
		http.Error(w, "upstream error", reply.status)
		return
	}
	fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%s}]}}]}`, mustJSON(reply.text))
}

func (f *fakeGemini) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newRelayRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", Health)
	r.POST("/analyze", AnalyzeDishImage)
	r.POST("/analyze-nutrition", AnalyzeNutrition)
	r.POST("/generate-meal-plan", GenerateMealPlan)
	return r
}

// setupRelay wires the handlers against a scripted upstream and an
// isolated upload dir.
func setupRelay(t *testing.T, replies ...upstreamReply) (*gin.Engine, *fakeGemini, string) {
	t.Helper()

	fake := &fakeGemini{replies: replies}
	srv := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(srv.Close)

	uploadDir := t.TempDir()
	t.Setenv("GEMINI_API_URL", srv.URL)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("UPLOAD_DIR", uploadDir)

	return newRelayRouter(), fake, uploadDir
}

func dishImageRequest(t *testing.T) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("dishImage", "dish.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte("not-a-real-jpeg")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/analyze", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func assertNoStagedFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	if len(entries) != 0 {
		t.Errorf("staged files leaked: %d left in %s", len(entries), dir)
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestHealth(t *testing.T) {
	r, _, _ := setupRelay(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "Hello from backend" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestAnalyzeImageGateRejects(t *testing.T) {
	r, fake, uploadDir := setupRelay(t, upstreamReply{text: "no"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, dishImageRequest(t))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (soft domain error)", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "This image does not contain food. Please upload a valid dish image." {
		t.Errorf("error = %v", body["error"])
	}
	if fake.callCount() != 1 {
		t.Errorf("upstream called %d times, want 1 (nutrition call must be skipped)", fake.callCount())
	}
	assertNoStagedFiles(t, uploadDir)
}

func TestAnalyzeImageSuccess(t *testing.T) {
	r, fake, uploadDir := setupRelay(t,
		upstreamReply{text: "Yes, it is food."},
		upstreamReply{text: `Sure! {"dish":"Apple","calories_per_100g":"52 kcal","protein_per_100g":"0.3 g"}`},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, dishImageRequest(t))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["dish"] != "Apple" {
		t.Errorf("dish = %v", body["dish"])
	}
	if body["calories_per_100g"] != "52 kcal" {
		t.Errorf("calories_per_100g = %v", body["calories_per_100g"])
	}
	if fake.callCount() != 2 {
		t.Errorf("upstream called %d times, want 2", fake.callCount())
	}
	assertNoStagedFiles(t, uploadDir)
}

func TestAnalyzeImageUnknownDish(t *testing.T) {
	r, _, uploadDir := setupRelay(t,
		upstreamReply{text: "yes"},
		upstreamReply{text: `{"dish":"Unknown Food","calories_per_100g":"0 kcal"}`},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, dishImageRequest(t))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (soft domain error)", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Could not identify the dish. Please upload a clearer food image." {
		t.Errorf("error = %v", body["error"])
	}
	assertNoStagedFiles(t, uploadDir)
}

func TestAnalyzeImageUpstreamFailure(t *testing.T) {
	r, _, uploadDir := setupRelay(t, upstreamReply{status: http.StatusServiceUnavailable})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, dishImageRequest(t))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Failed to analyze image" {
		t.Errorf("error = %v", body["error"])
	}
	// Upstream detail must not leak to the client.
	if strings.Contains(rec.Body.String(), "upstream error") {
		t.Errorf("upstream body leaked: %s", rec.Body.String())
	}
	assertNoStagedFiles(t, uploadDir)
}

func TestAnalyzeImageMalformedReply(t *testing.T) {
	r, _, uploadDir := setupRelay(t,
		upstreamReply{text: "yes"},
		upstreamReply{text: `{"dish": "Apple", "calories":}`},
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, dishImageRequest(t))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	assertNoStagedFiles(t, uploadDir)
}

func TestAnalyzeImageMissingFile(t *testing.T) {
	r, fake, _ := setupRelay(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fake.callCount() != 0 {
		t.Errorf("upstream called %d times, want 0", fake.callCount())
	}
}

func TestAnalyzeNutrition(t *testing.T) {
	reply := `{"dish":"Paneer Tikka","portion":"1 plate","calories":300,"protein_g":18,"carbs_g":10,"fat_g":20}`
	r, fake, _ := setupRelay(t, upstreamReply{text: reply})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze-nutrition",
		strings.NewReader(`{"dish":"Paneer Tikka","portion":"1 plate"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	want := map[string]interface{}{
		"dish":      "Paneer Tikka",
		"portion":   "1 plate",
		"calories":  float64(300),
		"protein_g": float64(18),
		"carbs_g":   float64(10),
		"fat_g":     float64(20),
	}
	if got := decodeBody(t, rec); !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
	if fake.callCount() != 1 {
		t.Errorf("upstream called %d times, want 1", fake.callCount())
	}
}

func TestAnalyzeNutritionValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing portion", `{"dish":"Paneer Tikka"}`},
		{"missing dish", `{"portion":"1 plate"}`},
		{"empty body", `{}`},
		{"not JSON", `dish=paneer`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, fake, _ := setupRelay(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/analyze-nutrition", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decodeBody(t, rec)
			if body["error"] != "Dish name and portion size are required." {
				t.Errorf("error = %v", body["error"])
			}
			if fake.callCount() != 0 {
				t.Errorf("upstream called %d times, want 0", fake.callCount())
			}
		})
	}
}

func TestGenerateMealPlan(t *testing.T) {
	reply := `Here you go: {"meals":[
		{"name":"Palak Paneer","calories":380,"description":"Paneer in spinach gravy"},
		{"name":"Jeera Rice","calories":250,"description":"Cumin rice"},
		{"name":"Kheer","calories":200,"description":"Rice pudding"}
	]}`
	r, _, _ := setupRelay(t, upstreamReply{text: reply})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-meal-plan",
		strings.NewReader(`{"ingredients":"paneer, spinach, rice","cuisine":"Indian","mealType":"Dinner","targetCalories":800}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var plan struct {
		Meals []struct {
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
		} `json:"meals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plan.Meals) != 3 {
		t.Fatalf("got %d meals, want 3", len(plan.Meals))
	}
	if plan.Meals[0].Name != "Palak Paneer" {
		t.Errorf("first meal = %q", plan.Meals[0].Name)
	}
}

func TestGenerateMealPlanValidation(t *testing.T) {
	r, fake, _ := setupRelay(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-meal-plan",
		strings.NewReader(`{"ingredients":"paneer","cuisine":"Indian","mealType":"Dinner"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "All fields are required." {
		t.Errorf("error = %v", body["error"])
	}
	if fake.callCount() != 0 {
		t.Errorf("upstream called %d times, want 0", fake.callCount())
	}
}
