package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/webhook-event-logger/internal/events"
	"github.com/PratikDhanave/webhook-event-logger/internal/logger"
	"github.com/PratikDhanave/webhook-event-logger/internal/models"
)

// countingProcessor records calls and otherwise defers to the real processor.
type countingProcessor struct {
	calls int
	next  BatchProcessor
}

func (p *countingProcessor) Process(log logger.Logger, payload any) (int, error) {
	p.calls++
	return p.next.Process(log, payload)
}

type failingProcessor struct{}

func (failingProcessor) Process(logger.Logger, any) (int, error) {
	return 0, errors.New("boom")
}

func newWebhookEngine(proc BatchProcessor, maxBody int64) *gin.Engine {
	return newWebhookEngineWithLog(proc, maxBody, logger.NewRecorder())
}

func newWebhookEngineWithLog(proc BatchProcessor, maxBody int64, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterWebhookRoutes(r, proc, log, maxBody)
	return r
}

func post(r *gin.Engine, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error JSON %q: %v", w.Body.String(), err)
	}
	return body.Error
}

func realProcessor() *countingProcessor {
	return &countingProcessor{next: events.NewProcessor(events.NewDispatcher(time.UTC))}
}

func TestWebhookProcessedEqualsBatchLength(t *testing.T) {
	rec := logger.NewRecorder()
	r := newWebhookEngineWithLog(realProcessor(), 1<<20, rec)

	body := `[
		{"event":"client_created","data":{"client":{"firstName":"Ewa"}}},
		{"event":"payment_status","data":{"orderStatus":0}},
		{"event":"client_visit_status","data":[{"status":2}],"firedAt":"2026-10-17T09:30:00Z"},
		{"event":"something_else","data":{}}
	]`
	w := post(r, "application/json; charset=utf-8", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp models.WebhookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "success" || resp.Processed != 4 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Fatalf("timestamp %q is not ISO-8601: %v", resp.Timestamp, err)
	}

	var firedAt, visit bool
	for _, m := range rec.Messages() {
		if m == "Fired at: 2026-10-17 09:30:00 UTC" {
			firedAt = true
		}
		if m == "Visit Completed: Unknown User - Unknown Service" {
			visit = true
		}
	}
	if !firedAt || !visit {
		t.Fatalf("visit event with firedAt not logged: %q", rec.Messages())
	}
}

func TestWebhookMalformedEventsStillCounted(t *testing.T) {
	r := newWebhookEngine(realProcessor(), 1<<20)

	w := post(r, "application/json", `[{"event":"client_created"},{"data":{}},42]`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.WebhookResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Processed != 3 {
		t.Fatalf("processed = %d, want 3", resp.Processed)
	}
}

func TestWebhookBadRequests(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		wantErr     string
		wantCalls   int
	}{
		{"missing content type", "", `[]`, "Content-Type must be application/json", 0},
		{"wrong content type", "text/plain", `[]`, "Content-Type must be application/json", 0},
		{"empty body", "application/json", ``, "Request body is required", 0},
		{"whitespace body", "application/json", "  \n", "Request body is required", 0},
		{"null body", "application/json", `null`, "Request body is required", 0},
		{"malformed json", "application/json", `[{"event":`, "Invalid webhook data format", 0},
		{"invalid token", "application/json", `[{"event":"x"}, 0 0]`, "Invalid webhook data format", 0},
		{"object body", "application/json", `{"event":"client_created","data":{}}`, "Invalid webhook data format", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proc := realProcessor()
			r := newWebhookEngine(proc, 1<<20)

			w := post(r, tc.contentType, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if got := errorOf(t, w); got != tc.wantErr {
				t.Fatalf("error = %q, want %q", got, tc.wantErr)
			}
			if proc.calls != tc.wantCalls {
				t.Fatalf("processor calls = %d, want %d", proc.calls, tc.wantCalls)
			}
		})
	}
}

func TestWebhookBodyTooLarge(t *testing.T) {
	r := newWebhookEngine(realProcessor(), 16)

	w := post(r, "application/json", `[{"event":"client_created","data":{}}]`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
	if got := errorOf(t, w); got != "Request body too large" {
		t.Fatalf("error = %q", got)
	}
}

func TestWebhookProcessorError(t *testing.T) {
	r := newWebhookEngine(failingProcessor{}, 1<<20)

	w := post(r, "application/json", `[]`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := errorOf(t, w); got != "Internal server error" {
		t.Fatalf("error = %q", got)
	}
}

func TestHealthUptimeNonDecreasing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHealthRoutes(r, time.Now())

	var last float64
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp models.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if resp.Status != "healthy" || resp.Timestamp == "" {
			t.Fatalf("unexpected response %+v", resp)
		}
		if resp.Uptime < last {
			t.Fatalf("uptime decreased: %f < %f", resp.Uptime, last)
		}
		last = resp.Uptime
	}
}
