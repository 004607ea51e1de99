package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/executor"
	"github.com/answersheet/gradebot/internal/models"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(ctx context.Context, imagePath string) (string, error) {
	return f.text, f.err
}

type fakeEvaluator struct {
	result models.EvaluationResult
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, answerText string) models.EvaluationResult {
	return f.result
}

func newTestContainer(extractor executor.Extractor, evaluator executor.Evaluator) *restful.Container {
	logger := zerolog.Nop()
	pipeline := executor.NewPipeline(extractor, evaluator, &logger)
	container := restful.NewContainer()
	RegisterRoutes(container, NewHandler(pipeline, &logger))
	return container
}

func TestGradeEndpoint(t *testing.T) {
	container := newTestContainer(&fakeExtractor{}, &fakeEvaluator{
		result: models.EvaluationResult{Score: 4, Reason: "Covers the main points"},
	})

	body := `{"event_id": "evt-1", "answer_text": "photosynthesis converts light energy into glucose"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/grade", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response GradeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if response.EventID != "evt-1" {
		t.Errorf("expected event id echoed, got %q", response.EventID)
	}
	if response.Score != 4 || response.Reason != "Covers the main points" {
		t.Errorf("unexpected response %+v", response)
	}
}

func TestGradeEndpointBadBody(t *testing.T) {
	container := newTestContainer(&fakeExtractor{}, &fakeEvaluator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/grade", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestExtractEndpointRequiresPath(t *testing.T) {
	container := newTestContainer(&fakeExtractor{}, &fakeEvaluator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"image_path": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestExtractEndpointBackendFailure(t *testing.T) {
	container := newTestContainer(&fakeExtractor{err: errors.New("vision backend unreachable")}, &fakeEvaluator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"image_path": "/tmp/answer.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}

func TestExtractEndpoint(t *testing.T) {
	container := newTestContainer(&fakeExtractor{text: "extracted answer text from the sheet"}, &fakeEvaluator{
		result: models.EvaluationResult{Score: 3, Reason: "Adequate"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"image_path": "/tmp/answer.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response ExtractResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if response.Text != "extracted answer text from the sheet" {
		t.Errorf("unexpected text %q", response.Text)
	}
}

func TestHealthEndpoint(t *testing.T) {
	container := newTestContainer(&fakeExtractor{}, &fakeEvaluator{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("unexpected status %q", response.Status)
	}
}
