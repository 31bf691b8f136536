package playback

import (
	"strconv"
	"sync"
	"time"
)

// Event names published on the controller's feed.
const (
	EventStepAdvanced   = "step_advanced"
	EventPhaseChanged   = "phase_changed"
	EventSessionCreated = "session_created"
	EventResumed        = "playback_resumed"
	EventPaused         = "playback_paused"
	EventReset          = "playback_reset"
	EventGameOver       = "game_over"
	EventError          = "error"
)

// StreamEvent is one entry on the observable feed. Events carry the epoch
// they were emitted in so observers can discard pre-reset history.
type StreamEvent struct {
	EventID  string `json:"event_id"`
	Event    string `json:"event"`
	Epoch    string `json:"epoch"`
	ServerTS int64  `json:"server_ts"`
	Data     any    `json:"data,omitempty"`
}

// EventBuffer keeps a bounded backlog for SSE replay and fans new events out
// to live subscribers. Slow subscribers lose events rather than block the
// controller.
type EventBuffer struct {
	mu       sync.Mutex
	nextID   int64
	max      int
	backlog  []StreamEvent
	watchers map[chan StreamEvent]struct{}
}

func NewEventBuffer(max int) *EventBuffer {
	if max <= 0 {
		max = 500
	}
	return &EventBuffer{
		max:      max,
		watchers: make(map[chan StreamEvent]struct{}),
	}
}

func (b *EventBuffer) Append(event, epoch string, data any) StreamEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	ev := StreamEvent{
		EventID:  strconv.FormatInt(b.nextID, 10),
		Event:    event,
		Epoch:    epoch,
		ServerTS: time.Now().UnixMilli(),
		Data:     data,
	}
	b.backlog = append(b.backlog, ev)
	if len(b.backlog) > b.max {
		b.backlog = b.backlog[len(b.backlog)-b.max:]
	}
	for ch := range b.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
	return ev
}

// ReplayAfter returns the backlog entries newer than lastEventID. An empty
// or unparseable id replays the whole backlog.
func (b *EventBuffer) ReplayAfter(lastEventID string) []StreamEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.backlog) == 0 {
		return nil
	}
	last, err := strconv.ParseInt(lastEventID, 10, 64)
	if lastEventID == "" || err != nil {
		last = 0
	}
	out := make([]StreamEvent, 0, len(b.backlog))
	for _, ev := range b.backlog {
		if id, _ := strconv.ParseInt(ev.EventID, 10, 64); id > last {
			out = append(out, ev)
		}
	}
	return out
}

func (b *EventBuffer) Subscribe() chan StreamEvent {
	ch := make(chan StreamEvent, 32)
	b.mu.Lock()
	b.watchers[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *EventBuffer) Unsubscribe(ch chan StreamEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.watchers[ch]; ok {
		delete(b.watchers, ch)
		close(ch)
	}
}
