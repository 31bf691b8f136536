package playback

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"impostor-sim/internal/gameclient"
)

type Phase string

const (
	PhaseScripted Phase = "scripted"
	PhaseLive     Phase = "live"
)

// ErrorInfo is the user-visible descriptor of the last failed remote call.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SessionState is the controller-owned snapshot of one remote game.
type SessionState struct {
	GameID        string                       `json:"game_id"`
	Agents        []gameclient.Agent           `json:"agents"`
	Transcript    []gameclient.TranscriptEntry `json:"transcript"`
	Step          int                          `json:"step"`
	MaxSteps      int                          `json:"max_steps"`
	GameOver      bool                         `json:"game_over"`
	Winner        string                       `json:"winner,omitempty"`
	Eliminated    string                       `json:"eliminated,omitempty"`
	MeetingReason string                       `json:"meeting_reason,omitempty"`
	ReporterName  string                       `json:"reporter_name,omitempty"`
	Message       string                       `json:"message,omitempty"`
}

// State is the read-only view the presentation layer polls or streams.
type State struct {
	Epoch            string        `json:"epoch"`
	Phase            Phase         `json:"phase"`
	Step             int           `json:"step"`
	HandoffThreshold int           `json:"handoff_threshold"`
	Playing          bool          `json:"playing"`
	Loading          bool          `json:"loading"`
	LastError        *ErrorInfo    `json:"last_error,omitempty"`
	Session          *SessionState `json:"session,omitempty"`
}

var (
	epochEntropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	epochEntropyMu sync.Mutex
)

// newEpochID mints the token that scopes scheduled work and in-flight
// responses to one controller lifetime between resets.
func newEpochID() string {
	epochEntropyMu.Lock()
	defer epochEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), epochEntropy).String()
}

func sessionFromInit(src *gameclient.Session) *SessionState {
	agents := make([]gameclient.Agent, len(src.Agents))
	copy(agents, src.Agents)
	return &SessionState{
		GameID:        src.GameID,
		Agents:        agents,
		Transcript:    []gameclient.TranscriptEntry{},
		Step:          src.Step,
		MaxSteps:      src.MaxSteps,
		MeetingReason: src.MeetingReason,
		ReporterName:  src.ReporterName,
		Message:       src.Message,
	}
}

func (s *SessionState) clone() *SessionState {
	if s == nil {
		return nil
	}
	out := *s
	out.Agents = make([]gameclient.Agent, len(s.Agents))
	copy(out.Agents, s.Agents)
	out.Transcript = make([]gameclient.TranscriptEntry, len(s.Transcript))
	copy(out.Transcript, s.Transcript)
	return &out
}
