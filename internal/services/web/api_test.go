package web

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type calculatePayload struct {
	Success      bool    `json:"success"`
	SetEquity    float64 `json:"set_equity"`
	AvgScore     float64 `json:"avg_score"`
	AvgRatio     float64 `json:"avg_ratio"`
	VestingDays  int     `json:"vesting_days"`
	VestingYears float64 `json:"vesting_years"`
	CliffDays    int     `json:"cliff_days"`
	CliffYears   float64 `json:"cliff_years"`
}

func postCalculate(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAPICalculateReturnsSchedule(t *testing.T) {
	handler := newTestHandler(t)

	w := postCalculate(t, handler, `{"set_equity": 0.3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}

	var payload calculatePayload
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success {
		t.Fatalf("success = false, want true")
	}
	if payload.SetEquity != 0.3 {
		t.Fatalf("set_equity = %v, want 0.3", payload.SetEquity)
	}
	if math.Abs(payload.AvgScore-1.2) > 1e-9 {
		t.Fatalf("avg_score = %v, want 1.2", payload.AvgScore)
	}
	if math.Abs(payload.AvgRatio-1/2.2) > 1e-9 {
		t.Fatalf("avg_ratio = %v, want %v", payload.AvgRatio, 1/2.2)
	}
	if payload.VestingDays != 1196 {
		t.Fatalf("vesting_days = %d, want 1196", payload.VestingDays)
	}
	if payload.CliffDays != 299 {
		t.Fatalf("cliff_days = %d, want 299", payload.CliffDays)
	}
	if payload.VestingYears != float64(payload.VestingDays)/365 {
		t.Fatalf("vesting_years = %v, want %v", payload.VestingYears, float64(payload.VestingDays)/365)
	}
	if payload.CliffYears != float64(payload.CliffDays)/365 {
		t.Fatalf("cliff_years = %v, want %v", payload.CliffYears, float64(payload.CliffDays)/365)
	}
}

func TestAPICalculateIncludesAllScheduleKeys(t *testing.T) {
	handler := newTestHandler(t)

	w := postCalculate(t, handler, `{"set_equity": 0.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	keys := []string{"success", "set_equity", "avg_score", "avg_ratio", "vesting_days", "vesting_years", "cliff_days", "cliff_years"}
	for _, key := range keys {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing key %q in %v", key, payload)
		}
	}
}

func TestAPICalculateAcceptsBoundaryEquities(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name        string
		body        string
		vestingDays int
		cliffDays   int
	}{
		{"full equity", `{"set_equity": 1}`, 732, 183},
		{"tiny equity", `{"set_equity": 0.0001}`, 2188, 547},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postCalculate(t, handler, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
			}

			var payload calculatePayload
			if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if payload.VestingDays != tt.vestingDays {
				t.Fatalf("vesting_days = %d, want %d", payload.VestingDays, tt.vestingDays)
			}
			if payload.CliffDays != tt.cliffDays {
				t.Fatalf("cliff_days = %d, want %d", payload.CliffDays, tt.cliffDays)
			}
		})
	}
}

func TestAPICalculateRejectsInvalidInput(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"zero equity", `{"set_equity": 0}`, "set_equity must be greater than 0"},
		{"negative equity", `{"set_equity": -0.2}`, "set_equity must be greater than 0"},
		{"equity above one", `{"set_equity": 1.5}`, "set_equity must be at most 1"},
		{"string equity", `{"set_equity": "0.3"}`, "set_equity must be a number"},
		{"missing equity", `{}`, "set_equity is required"},
		{"null equity", `{"set_equity": null}`, "set_equity is required"},
		{"malformed body", `{"set_equity":`, "invalid json body"},
		{"empty body", ``, "invalid json body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postCalculate(t, handler, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusBadRequest, w.Body.String())
			}

			var payload struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if payload.Error != tt.message {
				t.Fatalf("error = %q, want %q", payload.Error, tt.message)
			}
		})
	}
}

func TestAPICalculateIsDeterministic(t *testing.T) {
	handler := newTestHandler(t)

	first := postCalculate(t, handler, `{"set_equity": 0.42}`)
	second := postCalculate(t, handler, `{"set_equity": 0.42}`)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status = %d/%d, want %d", first.Code, second.Code, http.StatusOK)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("responses differ:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestAPICalculateRejectsGet(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/calculate", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if got := w.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("allow = %q, want %q", got, http.MethodPost)
	}
}

func TestAPICalculateAnswersPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/calculate", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q, want %q", got, "*")
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Fatalf("allow methods = %q, want POST", got)
	}
}

func TestAPICalculateEchoesListedOrigin(t *testing.T) {
	handler, err := NewHandler(Config{AllowedOrigins: []string{"https://app.example.com"}})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{"set_equity": 0.3}`))
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestAPIHealthReportsOK(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var payload map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("status = %q, want %q", payload["status"], "ok")
	}
}

func TestAPIHealthRejectsPost(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
