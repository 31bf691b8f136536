package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"impostor-sim/internal/gameclient"
	"impostor-sim/internal/playback"
	"impostor-sim/internal/scenario"
)

type stubAPI struct {
	mu          sync.Mutex
	createCalls int
}

func (s *stubAPI) CreateSession(context.Context, int) (*gameclient.Session, error) {
	s.mu.Lock()
	s.createCalls++
	s.mu.Unlock()
	return &gameclient.Session{
		GameID:   "game-http",
		Agents:   []gameclient.Agent{{ID: 0, Name: "Red", IsAlive: true}},
		MaxSteps: 30,
	}, nil
}

func (s *stubAPI) AdvanceSession(context.Context, string) (*gameclient.StepResult, error) {
	return nil, errors.New("not used")
}

type stubProbe struct{ err error }

func (p stubProbe) Health(context.Context) error { return p.err }

func newTestController() *playback.Controller {
	return playback.New(&stubAPI{}, playback.Config{
		TickPeriod:       time.Hour,
		HandoffThreshold: scenario.HandoffThreshold(),
	})
}

func doJSON(t *testing.T, r http.Handler, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var body map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s %s: bad json: %v", method, path, err)
		}
	}
	return rec, body
}

func TestPlaybackLifecycleEndpoints(t *testing.T) {
	r := NewRouter(newTestController(), stubProbe{})

	rec, body := doJSON(t, r, http.MethodGet, "/api/playback/state")
	if rec.Code != http.StatusOK {
		t.Fatalf("state status = %d", rec.Code)
	}
	if body["phase"] != "scripted" || body["playing"] != false {
		t.Fatalf("initial state = %v", body)
	}

	_, body = doJSON(t, r, http.MethodPost, "/api/playback/play")
	if body["playing"] != true {
		t.Fatalf("after play: %v", body)
	}
	_, body = doJSON(t, r, http.MethodPost, "/api/playback/pause")
	if body["playing"] != false {
		t.Fatalf("after pause: %v", body)
	}
	_, body = doJSON(t, r, http.MethodPost, "/api/playback/reset")
	if body["step"] != float64(0) || body["playing"] != false {
		t.Fatalf("after reset: %v", body)
	}
}

func TestTranscriptBeforeHandoff(t *testing.T) {
	r := NewRouter(newTestController(), stubProbe{})
	rec, body := doJSON(t, r, http.MethodGet, "/api/playback/transcript")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body["error"] != "no_live_session" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestScenarioEndpoints(t *testing.T) {
	r := NewRouter(newTestController(), stubProbe{})

	_, body := doJSON(t, r, http.MethodGet, "/api/scenario")
	if body["steps"] != float64(scenario.Steps()) {
		t.Fatalf("scenario overview = %v", body)
	}

	rec, body := doJSON(t, r, http.MethodGet, "/api/scenario/steps/0")
	if rec.Code != http.StatusOK || body["step"] != float64(0) {
		t.Fatalf("step 0: %d %v", rec.Code, body)
	}

	rec, body = doJSON(t, r, http.MethodGet, "/api/scenario/steps/999")
	if rec.Code != http.StatusNotFound || body["error"] != "step_out_of_range" {
		t.Fatalf("step 999: %d %v", rec.Code, body)
	}

	rec, _ = doJSON(t, r, http.MethodGet, "/api/scenario/steps/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric step: %d", rec.Code)
	}

	rec, body = doJSON(t, r, http.MethodGet, "/api/scenario/agents/red/memories?upto=9")
	if rec.Code != http.StatusOK {
		t.Fatalf("memories status = %d", rec.Code)
	}
	if body["agent_id"] != "red" || body["upto"] != float64(9) {
		t.Fatalf("memories = %v", body)
	}

	rec, body = doJSON(t, r, http.MethodGet, "/api/scenario/agents/purple/memories")
	if rec.Code != http.StatusNotFound || body["error"] != "agent_not_found" {
		t.Fatalf("unknown agent: %d %v", rec.Code, body)
	}
}

func TestHealthReportsEngineProbe(t *testing.T) {
	r := NewRouter(newTestController(), stubProbe{err: errors.New("down")})
	rec, body := doJSON(t, r, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
	if body["ok"] != true || body["engine"] != "unreachable" {
		t.Fatalf("healthz body = %v", body)
	}
}

func TestEventsSSEReplaysBacklog(t *testing.T) {
	ctrl := newTestController()
	ctrl.Play()
	ctrl.Pause()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/playback/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		EventsHandler(ctrl)(rec, req)
		close(done)
	}()

	// The backlog is flushed before the handler blocks on new events.
	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	out := rec.Body.String()
	if rec.Header().Get("Content-Type") != "text/event-stream" {
		t.Fatalf("content type = %q", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(out, "event: playback_resumed") || !strings.Contains(out, "event: playback_paused") {
		t.Fatalf("backlog missing from stream:\n%s", out)
	}
	if !strings.Contains(out, "id: 1") {
		t.Fatalf("event ids missing from stream:\n%s", out)
	}
}

func TestDebugVarsExposed(t *testing.T) {
	r := NewRouter(newTestController(), stubProbe{})
	rec, _ := doJSON(t, r, http.MethodGet, "/api/debug/vars")
	if rec.Code != http.StatusOK {
		t.Fatalf("debug vars status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "playback_scripted_ticks_total") {
		t.Fatal("playback metrics not exported")
	}
}
