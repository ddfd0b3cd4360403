package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/quizsmith/backend/internal/models"
)

type stubProber struct {
	reachable bool
	calls     int
}

func (p *stubProber) ProbeHealth(ctx context.Context) bool {
	p.calls++
	return p.reachable
}

func (p *stubProber) ProbeBase(ctx context.Context) models.ServiceHealth {
	return models.ServiceHealth{Reachable: p.reachable}
}

type stubExecutor struct {
	items []json.RawMessage
	err   error
	calls int
}

func (e *stubExecutor) Execute(ctx context.Context, req models.GenerationRequest) ([]json.RawMessage, error) {
	e.calls++
	return e.items, e.err
}

func TestGenerateQuestions_EmptyTopicNeverTouchesNetwork(t *testing.T) {
	prober := &stubProber{reachable: true}
	executor := &stubExecutor{}
	svc := &Service{prober: prober, executor: executor}

	req := testRequest()
	req.Topic = "   "

	_, _, err := svc.GenerateQuestions(context.Background(), req)
	if KindOf(err) != KindValidation {
		t.Fatalf("kind = %s, want validation_error", KindOf(err))
	}
	if prober.calls != 0 || executor.calls != 0 {
		t.Errorf("network calls observed: probe=%d execute=%d, want none", prober.calls, executor.calls)
	}
}

func TestGenerateQuestions_ProbeFailureSkipsExecutor(t *testing.T) {
	prober := &stubProber{reachable: false}
	executor := &stubExecutor{}
	svc := &Service{prober: prober, executor: executor}

	_, _, err := svc.GenerateQuestions(context.Background(), testRequest())
	if KindOf(err) != KindNetworkUnreachable {
		t.Fatalf("kind = %s, want network_unreachable", KindOf(err))
	}
	if executor.calls != 0 {
		t.Error("executor must not run after a failed probe")
	}
}

func TestGenerateQuestions_ExecutorErrorPropagatesKind(t *testing.T) {
	prober := &stubProber{reachable: true}
	executor := &stubExecutor{err: &Error{Kind: KindTimeout, Message: "request timed out"}}
	svc := &Service{prober: prober, executor: executor}

	records, _, err := svc.GenerateQuestions(context.Background(), testRequest())
	if KindOf(err) != KindTimeout {
		t.Fatalf("kind = %s, want timeout", KindOf(err))
	}
	if records != nil {
		t.Error("no records expected on executor failure")
	}
}

func TestGenerateQuestions_EmptyNormalizationIsAnError(t *testing.T) {
	prober := &stubProber{reachable: true}
	executor := &stubExecutor{items: []json.RawMessage{}}
	svc := &Service{prober: prober, executor: executor}

	_, _, err := svc.GenerateQuestions(context.Background(), testRequest())
	if KindOf(err) != KindNoUsableQuestions {
		t.Fatalf("kind = %s, want no_usable_questions", KindOf(err))
	}
}

func TestGenerateQuestions_AllItemsDroppedIsAnError(t *testing.T) {
	prober := &stubProber{reachable: true}
	executor := &stubExecutor{items: []json.RawMessage{
		json.RawMessage(`{"no":"title"}`),
		json.RawMessage(`null`),
	}}
	svc := &Service{prober: prober, executor: executor}

	_, report, err := svc.GenerateQuestions(context.Background(), testRequest())
	if KindOf(err) != KindNoUsableQuestions {
		t.Fatalf("kind = %s, want no_usable_questions", KindOf(err))
	}
	if report.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", report.Dropped)
	}
}

// ── End-to-end against a fake model service ─────────────

func fakeModelService(t *testing.T, generateStatus int, generateBody string) (*Service, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/generate-and-refine":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(generateStatus)
			w.Write([]byte(generateBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return NewService(NewClient(srv.URL)), &requests
}

func TestEndToEnd_GenerateAndNormalize(t *testing.T) {
	svc, _ := fakeModelService(t, http.StatusOK,
		`[{"final_question":{"title":"What is light?","options":["Wave","Particle","Both","Energy"]}}]`)

	records, report, err := svc.GenerateQuestions(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Dropped != 0 {
		t.Errorf("dropped = %d", report.Dropped)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.ClassName != "10" || rec.Subject != "Science" || !rec.IsGenerated {
		t.Errorf("unexpected record: %+v", rec)
	}
	if want := []string{"Wave", "Particle", "Both", "Energy"}; !reflect.DeepEqual(rec.Options, want) {
		t.Errorf("options = %v, want %v", rec.Options, want)
	}
}

func TestEndToEnd_EmptyArrayIsNoUsableQuestions(t *testing.T) {
	svc, _ := fakeModelService(t, http.StatusOK, `[]`)

	_, _, err := svc.GenerateQuestions(context.Background(), testRequest())
	if KindOf(err) != KindNoUsableQuestions {
		t.Fatalf("kind = %s, want no_usable_questions even though HTTP succeeded", KindOf(err))
	}
}

func TestEndToEnd_ServiceError500(t *testing.T) {
	svc, _ := fakeModelService(t, http.StatusInternalServerError, `model unavailable`)

	_, _, err := svc.GenerateQuestions(context.Background(), testRequest())
	ge := generateKind(t, err)
	if ge.Kind != KindServiceError || ge.Status != 500 {
		t.Fatalf("kind=%s status=%d, want service_error 500", ge.Kind, ge.Status)
	}
	if ge.BodyExcerpt == "" {
		t.Error("expected a body excerpt")
	}
}

func TestEndToEnd_EmptyTopicMakesZeroRequests(t *testing.T) {
	svc, requests := fakeModelService(t, http.StatusOK, `[]`)

	req := testRequest()
	req.Topic = ""

	_, _, err := svc.GenerateQuestions(context.Background(), req)
	if KindOf(err) != KindValidation {
		t.Fatalf("kind = %s, want validation_error", KindOf(err))
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("observed %d network calls, want 0", n)
	}
}
