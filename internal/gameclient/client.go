// Package gameclient adapts the remote impostor-game HTTP API into the
// controller's shape. It performs no retries and keeps no session state;
// serializing calls is the caller's job.
package gameclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// The engine caps every session at this many steps; the init endpoint does
// not echo the bound, so the client fills it in.
const defaultMaxSteps = 30

type Client struct {
	baseURL string
	inner   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		inner:   &http.Client{Timeout: timeout},
	}
}

// CreateSession starts a new remote game with playerCount agents.
func (c *Client) CreateSession(ctx context.Context, playerCount int) (*Session, error) {
	if playerCount < 2 {
		return nil, fmt.Errorf("%w: player count %d below minimum 2", ErrInvalidRequest, playerCount)
	}
	body := map[string]int{"num_players": playerCount}
	raw, status, err := c.send(ctx, http.MethodPost, "/impostor-game/init", body)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: init returned status %d", ErrNetwork, status)
	}
	var wire initWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: decode init response: %v", ErrNetwork, err)
	}
	if wire.GameID == "" {
		return nil, fmt.Errorf("%w: init response missing game_id", ErrNetwork)
	}
	return &Session{
		GameID:        wire.GameID,
		Agents:        wire.Agents,
		Message:       wire.Message,
		MeetingReason: wire.MeetingReason,
		ReporterName:  wire.ReporterName,
		Step:          0,
		MaxSteps:      defaultMaxSteps,
	}, nil
}

// AdvanceSession runs exactly one further step of an existing session and
// returns the full transcript to date. Callers must not overlap calls for
// the same session.
func (c *Client) AdvanceSession(ctx context.Context, gameID string) (*StepResult, error) {
	if gameID == "" {
		return nil, fmt.Errorf("%w: empty game id", ErrInvalidRequest)
	}
	raw, status, err := c.send(ctx, http.MethodPost, "/impostor-game/step/"+gameID, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: game %s", ErrSessionNotFound, gameID)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: step returned status %d", ErrNetwork, status)
	}
	var wire stepWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: decode step response: %v", ErrNetwork, err)
	}
	maxSteps := wire.MaxSteps
	if maxSteps == 0 {
		maxSteps = defaultMaxSteps
	}
	return &StepResult{
		GameID:     wire.GameID,
		Step:       wire.StepNumber,
		MaxSteps:   maxSteps,
		Transcript: wire.ConversationHistory,
		Eliminated: wire.Eliminated,
		Winner:     wire.Winner,
		GameOver:   wire.GameOver,
		Message:    wire.Message,
	}, nil
}

// GameState fetches the current state of a session without advancing it.
func (c *Client) GameState(ctx context.Context, gameID string) (*GameSnapshot, error) {
	if gameID == "" {
		return nil, fmt.Errorf("%w: empty game id", ErrInvalidRequest)
	}
	raw, status, err := c.send(ctx, http.MethodGet, "/impostor-game/game/"+gameID, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: game %s", ErrSessionNotFound, gameID)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: game state returned status %d", ErrNetwork, status)
	}
	var wire stateWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: decode game state: %v", ErrNetwork, err)
	}
	return &GameSnapshot{
		GameID:        wire.GameID,
		Step:          wire.StepNumber,
		MaxSteps:      wire.MaxSteps,
		Agents:        wire.Agents,
		Transcript:    wire.PublicActionHistory,
		Winner:        wire.Winner,
		AliveCount:    wire.AliveCount,
		ImpostorAlive: wire.ImpostorAlive,
	}, nil
}

// Health probes the remote engine's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, status, err := c.send(ctx, http.MethodGet, "/impostor-game/health", nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: health returned status %d", ErrNetwork, status)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: encode request: %v", ErrInvalidRequest, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.inner.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}
	return raw, resp.StatusCode, nil
}
