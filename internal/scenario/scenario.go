// Package scenario holds the fixed pre-game timeline shown before a live
// session takes over. The data is read-only; callers receive copies.
package scenario

import "fmt"

type AgentSnapshot struct {
	Location string   `json:"location"`
	Action   string   `json:"action"`
	Met      []string `json:"met"`
	Dead     bool     `json:"dead,omitempty"`
}

type StepSnapshot struct {
	Step   int                      `json:"step"`
	Agents map[string]AgentSnapshot `json:"agents"`
}

// AgentIDs lists the scripted cast in display order. Yellow plays the
// impostor in the scripted act.
func AgentIDs() []string {
	return []string{"red", "blue", "green", "yellow"}
}

// Steps reports how many scripted snapshots exist.
func Steps() int {
	return len(timeline)
}

// HandoffThreshold is the scripted step at which the body is discovered and
// control passes to a live session.
func HandoffThreshold() int {
	return len(timeline) - 1
}

// Step returns a copy of the snapshot for step k.
func Step(k int) (StepSnapshot, error) {
	if k < 0 || k >= len(timeline) {
		return StepSnapshot{}, fmt.Errorf("scenario step %d out of range [0,%d]", k, len(timeline)-1)
	}
	src := timeline[k]
	out := StepSnapshot{Step: src.Step, Agents: make(map[string]AgentSnapshot, len(src.Agents))}
	for id, a := range src.Agents {
		met := make([]string, len(a.Met))
		copy(met, a.Met)
		a.Met = met
		out.Agents[id] = a
	}
	return out, nil
}
