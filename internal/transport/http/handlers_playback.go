package httptransport

import (
	"net/http"

	"impostor-sim/internal/playback"
	"impostor-sim/internal/transcript"
)

// PlaybackHandlers exposes the controller over the REST surface the frontend
// polls between stream events.
type PlaybackHandlers struct {
	ctrl *playback.Controller
}

func NewPlaybackHandlers(ctrl *playback.Controller) *PlaybackHandlers {
	return &PlaybackHandlers{ctrl: ctrl}
}

func (h *PlaybackHandlers) State() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
	}
}

func (h *PlaybackHandlers) Play() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, h.ctrl.Play())
	}
}

func (h *PlaybackHandlers) Pause() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, h.ctrl.Pause())
	}
}

func (h *PlaybackHandlers) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, h.ctrl.Reset())
	}
}

// Transcript returns the live conversation grouped into speeches and votes,
// plus the running vote tally. Empty before the handoff.
func (h *PlaybackHandlers) Transcript() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		st := h.ctrl.Snapshot()
		if st.Session == nil {
			WriteHTTPError(w, http.StatusNotFound, "no_live_session")
			return
		}
		grouped := transcript.Partition(st.Session.Transcript)
		writeJSON(w, http.StatusOK, map[string]any{
			"game_id":    st.Session.GameID,
			"step":       st.Session.Step,
			"speeches":   grouped.Speeches,
			"votes":      grouped.Votes,
			"other":      grouped.Other,
			"vote_tally": transcript.VoteTally(st.Session.Transcript),
		})
	}
}
