package httptransport

import (
	"context"
	"net/http"
	"strconv"

	"impostor-sim/internal/scenario"

	"github.com/go-chi/chi/v5"
)

// HealthProber checks the remote game engine. A failing probe is reported but
// does not fail the health endpoint; the scripted phase works offline.
type HealthProber interface {
	Health(ctx context.Context) error
}

func HealthHandler(probe HealthProber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine := "ok"
		if probe != nil {
			if err := probe.Health(r.Context()); err != nil {
				engine = "unreachable"
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "engine": engine})
	}
}

func ScenarioHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"agents":            scenario.AgentIDs(),
			"steps":             scenario.Steps(),
			"handoff_threshold": scenario.HandoffThreshold(),
		})
	}
}

func ScenarioStepHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k, err := strconv.Atoi(chi.URLParam(r, "step"))
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		snap, err := scenario.Step(k)
		if err != nil {
			WriteHTTPError(w, http.StatusNotFound, "step_out_of_range")
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// ScenarioMemoriesHandler returns what an agent witnessed up to a step. The
// upto query parameter defaults to the final scripted step.
func ScenarioMemoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentID := chi.URLParam(r, "agent_id")
		upto := scenario.Steps() - 1
		if v := r.URL.Query().Get("upto"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
				return
			}
			upto = n
		}
		memories, err := scenario.Memories(agentID, upto)
		if err != nil {
			WriteHTTPError(w, http.StatusNotFound, "agent_not_found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"agent_id": agentID,
			"upto":     upto,
			"memories": memories,
		})
	}
}
