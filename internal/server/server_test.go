package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vidnote/audiofetch/internal/model"
)

// fakeRunner returns a canned result and records the request it saw.
type fakeRunner struct {
	result model.PipelineResult
	calls  int
	last   model.SourceRequest
}

func (f *fakeRunner) Run(_ context.Context, req model.SourceRequest) model.PipelineResult {
	f.calls++
	f.last = req
	return f.result
}

func postProcess(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/process/video", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestHealth(t *testing.T) {
	srv := New(&fakeRunner{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestProcessVideoRejectsMissingURL(t *testing.T) {
	runner := &fakeRunner{}
	srv := New(runner, zap.NewNop())

	for _, body := range []string{`{}`, `{"url": ""}`, `{"url": "short"}`} {
		rec := postProcess(t, srv, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
		payload := decode(t, rec)
		if payload["success"] != false {
			t.Errorf("body %s: expected success=false", body)
		}
	}
	if runner.calls != 0 {
		t.Errorf("pipeline must not be invoked for invalid input, got %d calls", runner.calls)
	}
}

func TestProcessVideoMapsFailure(t *testing.T) {
	runner := &fakeRunner{
		result: model.Fail(model.NewError(model.ErrUnsupportedPlatform, "host not allowed")),
	}
	srv := New(runner, zap.NewNop())

	rec := postProcess(t, srv, `{"url": "https://example.com/not-supported"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}

	payload := decode(t, rec)
	if payload["success"] != false {
		t.Error("expected success=false")
	}
	errMsg, _ := payload["error"].(string)
	if !strings.Contains(errMsg, model.ErrUnsupportedPlatform.String()) {
		t.Errorf("expected error kind in message, got %q", errMsg)
	}
	if !strings.Contains(errMsg, "host not allowed") {
		t.Errorf("expected diagnostic message surfaced, got %q", errMsg)
	}
}

func TestProcessVideoMapsSuccess(t *testing.T) {
	runner := &fakeRunner{
		result: model.Ok(
			[]model.MediaAsset{{Path: "temp/Demo Video/Demo Video.mp3", SizeBytes: 1024}},
			"temp/Demo Video",
			"Demo Video",
		),
	}
	srv := New(runner, zap.NewNop())

	rec := postProcess(t, srv, `{"url": "https://www.bilibili.com/video/BV1xx411c7mD", "page_number": 2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	payload := decode(t, rec)
	if payload["success"] != true {
		t.Error("expected success=true")
	}
	if payload["video_title"] != "Demo Video" {
		t.Errorf("expected video_title 'Demo Video', got %v", payload["video_title"])
	}
	if payload["session_folder"] != "temp/Demo Video" {
		t.Errorf("expected session_folder 'temp/Demo Video', got %v", payload["session_folder"])
	}
	files, ok := payload["files"].([]any)
	if !ok || len(files) != 1 {
		t.Fatalf("expected 1 file in manifest, got %v", payload["files"])
	}

	if runner.last.PartSelector == nil || *runner.last.PartSelector != 2 {
		t.Errorf("expected page_number forwarded as part selector, got %v", runner.last.PartSelector)
	}
}
