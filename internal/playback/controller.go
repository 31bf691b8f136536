// Package playback owns the handoff between the scripted opening timeline
// and a live remote game session. A single mutex guards all controller
// state; scheduled work runs on short-lived goroutines scoped to an epoch
// token so a reset can orphan them safely.
package playback

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"impostor-sim/internal/gameclient"
)

// SessionAPI is the slice of the remote engine the controller needs.
type SessionAPI interface {
	CreateSession(ctx context.Context, playerCount int) (*gameclient.Session, error)
	AdvanceSession(ctx context.Context, gameID string) (*gameclient.StepResult, error)
}

type Config struct {
	TickPeriod       time.Duration
	StepDelay        time.Duration
	CallTimeout      time.Duration
	PlayerCount      int
	HandoffThreshold int
}

func (cfg Config) withDefaults() Config {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = 2 * time.Second
	}
	if cfg.StepDelay <= 0 {
		cfg.StepDelay = 1500 * time.Millisecond
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 10 * time.Second
	}
	if cfg.PlayerCount < 2 {
		cfg.PlayerCount = 4
	}
	if cfg.HandoffThreshold <= 0 {
		cfg.HandoffThreshold = 30
	}
	return cfg
}

type Controller struct {
	api    SessionAPI
	cfg    Config
	events *EventBuffer

	mu             sync.Mutex
	epoch          string
	phase          Phase
	step           int
	playing        bool
	creating       bool
	advancing      bool
	scriptedActive bool
	liveActive     bool
	session        *SessionState
	lastErr        *ErrorInfo
}

func New(api SessionAPI, cfg Config) *Controller {
	return &Controller{
		api:    api,
		cfg:    cfg.withDefaults(),
		events: NewEventBuffer(500),
		epoch:  newEpochID(),
		phase:  PhaseScripted,
	}
}

// Events exposes the feed consumed by the SSE handler and MCP tools.
func (c *Controller) Events() *EventBuffer {
	return c.events
}

// Snapshot returns a deep copy of the observable state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Play starts (or resumes) automatic advancement. Resuming clears the last
// error; a finished game refuses to resume.
func (c *Controller) Play() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		return c.snapshotLocked()
	}
	if c.phase == PhaseLive && c.terminalLocked() {
		return c.snapshotLocked()
	}
	c.playing = true
	c.lastErr = nil
	c.events.Append(EventResumed, c.epoch, map[string]any{"phase": c.phase, "step": c.step})

	switch c.phase {
	case PhaseScripted:
		if c.step >= c.cfg.HandoffThreshold {
			c.beginHandoffLocked()
		} else if !c.scriptedActive {
			c.scriptedActive = true
			go c.runScripted(c.epoch)
		}
	case PhaseLive:
		c.startLiveLocked()
	}
	return c.snapshotLocked()
}

// Pause halts future scheduling. A remote call already in flight completes
// and its result is still applied.
func (c *Controller) Pause() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return c.snapshotLocked()
	}
	c.playing = false
	c.events.Append(EventPaused, c.epoch, map[string]any{"phase": c.phase, "step": c.step})
	return c.snapshotLocked()
}

// Reset returns to the scripted origin under a fresh epoch. Responses from
// the previous epoch are dropped when they land.
func (c *Controller) Reset() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch = newEpochID()
	c.phase = PhaseScripted
	c.step = 0
	c.playing = false
	c.creating = false
	c.advancing = false
	c.scriptedActive = false
	c.liveActive = false
	c.session = nil
	c.lastErr = nil
	c.events.Append(EventReset, c.epoch, nil)
	return c.snapshotLocked()
}

func (c *Controller) runScripted(epoch string) {
	ticker := time.NewTicker(c.cfg.TickPeriod)
	defer ticker.Stop()
	for range ticker.C {
		if !c.scriptedTick(epoch) {
			return
		}
	}
}

// scriptedTick advances the local timeline one step and reports whether the
// ticker should keep running.
func (c *Controller) scriptedTick(epoch string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return false
	}
	if c.phase != PhaseScripted || !c.playing {
		c.scriptedActive = false
		return false
	}
	if c.step < c.cfg.HandoffThreshold {
		c.step++
		metricScriptedTicks.Add(1)
		c.events.Append(EventStepAdvanced, c.epoch, map[string]any{"phase": c.phase, "step": c.step})
	}
	if c.step >= c.cfg.HandoffThreshold {
		c.scriptedActive = false
		c.beginHandoffLocked()
		return false
	}
	return true
}

// beginHandoffLocked fires the one-shot transition to the live phase. The
// creating flag plus the absent-session check make repeated triggers safe.
func (c *Controller) beginHandoffLocked() {
	if c.session != nil || c.creating {
		return
	}
	c.creating = true
	go c.createSession(c.epoch)
}

func (c *Controller) createSession(epoch string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.CallTimeout)
	sess, err := c.api.CreateSession(ctx, c.cfg.PlayerCount)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		metricStaleDropped.Add(1)
		return
	}
	c.creating = false
	if err != nil {
		metricHandoffErrors.Add(1)
		c.playing = false
		c.failLocked(err)
		return
	}

	metricHandoffs.Add(1)
	c.phase = PhaseLive
	c.session = sessionFromInit(sess)
	// Handoff step policy: the counter adopts the session's own step.
	c.step = c.session.Step
	log.Info().Str("game_id", c.session.GameID).Int("agents", len(c.session.Agents)).Msg("live session created")
	c.events.Append(EventSessionCreated, c.epoch, map[string]any{
		"game_id":        c.session.GameID,
		"agents":         len(c.session.Agents),
		"meeting_reason": c.session.MeetingReason,
	})
	c.events.Append(EventPhaseChanged, c.epoch, map[string]any{"phase": c.phase, "step": c.step})
	if c.playing {
		c.startLiveLocked()
	}
}

func (c *Controller) startLiveLocked() {
	if c.liveActive {
		return
	}
	c.liveActive = true
	go c.runLive(c.epoch)
}

// runLive drives the advance chain: wait, call, apply, repeat. At most one
// such loop exists per controller, so advances never overlap.
func (c *Controller) runLive(epoch string) {
	for {
		time.Sleep(c.cfg.StepDelay)

		c.mu.Lock()
		if c.epoch != epoch {
			c.mu.Unlock()
			return
		}
		if c.phase != PhaseLive || !c.playing || c.session == nil || c.terminalLocked() {
			c.liveActive = false
			c.mu.Unlock()
			return
		}
		gameID := c.session.GameID
		c.advancing = true
		c.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.CallTimeout)
		res, err := c.api.AdvanceSession(ctx, gameID)
		cancel()

		c.mu.Lock()
		if c.epoch != epoch {
			metricStaleDropped.Add(1)
			c.mu.Unlock()
			return
		}
		c.advancing = false
		if err != nil {
			metricAdvanceErrors.Add(1)
			c.playing = false
			c.liveActive = false
			c.failLocked(err)
			c.mu.Unlock()
			return
		}
		c.applyStepLocked(res)
		if c.terminalLocked() {
			c.playing = false
			c.liveActive = false
			c.events.Append(EventGameOver, c.epoch, map[string]any{
				"winner": c.session.Winner,
				"step":   c.session.Step,
			})
			c.mu.Unlock()
			return
		}
		if !c.playing {
			c.liveActive = false
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
}

// applyStepLocked replaces the remote-derived fields with the response
// values. The transcript is swapped wholesale, which makes duplicate
// delivery of the same response harmless.
func (c *Controller) applyStepLocked(res *gameclient.StepResult) {
	metricAdvances.Add(1)
	s := c.session
	transcript := make([]gameclient.TranscriptEntry, len(res.Transcript))
	copy(transcript, res.Transcript)
	s.Transcript = transcript
	s.Step = res.Step
	if res.MaxSteps > 0 {
		s.MaxSteps = res.MaxSteps
	}
	s.GameOver = res.GameOver
	s.Winner = res.Winner
	s.Eliminated = res.Eliminated
	s.Message = res.Message
	if res.Eliminated != "" {
		for i := range s.Agents {
			if s.Agents[i].Name == res.Eliminated {
				s.Agents[i].IsAlive = false
			}
		}
	}
	c.step = s.Step
	c.events.Append(EventStepAdvanced, c.epoch, map[string]any{
		"phase":      c.phase,
		"step":       c.step,
		"transcript": len(s.Transcript),
		"game_over":  s.GameOver,
	})
}

func (c *Controller) terminalLocked() bool {
	return c.session != nil && (c.session.GameOver || c.session.Step >= c.session.MaxSteps)
}

func (c *Controller) failLocked(err error) {
	code := "network_failure"
	if errors.Is(err, gameclient.ErrSessionNotFound) {
		code = "session_not_found"
	}
	c.lastErr = &ErrorInfo{Code: code, Message: err.Error()}
	log.Warn().Str("code", code).Err(err).Msg("remote call failed; auto-advance halted")
	c.events.Append(EventError, c.epoch, c.lastErr)
}

func (c *Controller) snapshotLocked() State {
	return State{
		Epoch:            c.epoch,
		Phase:            c.phase,
		Step:             c.step,
		HandoffThreshold: c.cfg.HandoffThreshold,
		Playing:          c.playing,
		Loading:          c.creating || c.advancing,
		LastError:        c.lastErr,
		Session:          c.session.clone(),
	}
}
