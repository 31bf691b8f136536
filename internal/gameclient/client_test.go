package gameclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCreateSessionNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/impostor-game/init" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]int
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["num_players"] != 4 {
			t.Fatalf("num_players = %d", body["num_players"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"game_id": "g1",
			"message": "EMERGENCY MEETING! Red found a body",
			"agents": []map[string]any{
				{"id": 0, "name": "Red", "color": "red", "is_impostor": false, "is_alive": true},
				{"id": 1, "name": "Blue", "color": "blue", "is_impostor": true, "is_alive": true},
			},
			"reporter_name":  "Red",
			"meeting_reason": "Red found a body",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	sess, err := c.CreateSession(context.Background(), 4)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.GameID != "g1" || sess.Step != 0 || sess.MaxSteps != 30 {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if len(sess.Agents) != 2 || !sess.Agents[1].IsImpostor {
		t.Fatalf("unexpected roster: %+v", sess.Agents)
	}
}

func TestCreateSessionRejectsSmallCount(t *testing.T) {
	c := New("http://localhost:0", time.Second)
	if _, err := c.CreateSession(context.Background(), 1); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestCreateSessionNon2xxIsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.CreateSession(context.Background(), 4); !errors.Is(err, ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
}

func TestCreateSessionUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := c.CreateSession(context.Background(), 4); !errors.Is(err, ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
}

func TestAdvanceSessionParsesTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/impostor-game/step/g1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"game_id":     "g1",
			"step_number": 3,
			"max_steps":   30,
			"conversation_history": []map[string]any{
				{"agent_id": 0, "action_type": "speak", "content": "I was in Electrical"},
				{"agent_id": 1, "action_type": "vote", "content": "I vote to eliminate Agent0", "target_agent_id": 0},
			},
			"game_over": false,
			"message":   "Step 3 completed.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	res, err := c.AdvanceSession(context.Background(), "g1")
	if err != nil {
		t.Fatalf("AdvanceSession: %v", err)
	}
	if res.Step != 3 || res.GameOver {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Transcript) != 2 {
		t.Fatalf("transcript len = %d", len(res.Transcript))
	}
	if res.Transcript[0].Kind != KindSpeak {
		t.Fatalf("first entry kind = %q", res.Transcript[0].Kind)
	}
	vote := res.Transcript[1]
	if vote.Kind != KindVote || vote.TargetAgentID == nil || *vote.TargetAgentID != 0 {
		t.Fatalf("unexpected vote entry: %+v", vote)
	}
}

func TestAdvanceSessionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "game not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.AdvanceSession(context.Background(), "gone"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestGameStateRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/impostor-game/game/g1" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"game_id":               "g1",
			"step_number":           5,
			"max_steps":             30,
			"agents":                []map[string]any{},
			"public_action_history": []map[string]any{},
			"alive_count":           3,
			"impostor_alive":        true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	snap, err := c.GameState(context.Background(), "g1")
	if err != nil {
		t.Fatalf("GameState: %v", err)
	}
	if snap.Step != 5 || snap.AliveCount != 3 || !snap.ImpostorAlive {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/impostor-game/health" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}))
	defer srv.Close()

	if err := New(srv.URL, time.Second).Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
}
