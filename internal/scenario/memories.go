package scenario

import (
	"fmt"
	"strings"
)

// Memory is one witness observation an agent accumulated while the scripted
// timeline played.
type Memory struct {
	Step     int      `json:"step"`
	Location string   `json:"location"`
	Met      []string `json:"met"`
	Content  string   `json:"content"`
}

// Memories projects the encounters agent agentID made in steps [0, uptoStep].
// Steps with an empty met list leave no memory.
func Memories(agentID string, uptoStep int) ([]Memory, error) {
	if !validAgent(agentID) {
		return nil, fmt.Errorf("unknown scenario agent %q", agentID)
	}
	if uptoStep >= len(timeline) {
		uptoStep = len(timeline) - 1
	}
	out := make([]Memory, 0, uptoStep+1)
	for i := 0; i <= uptoStep; i++ {
		agent, ok := timeline[i].Agents[agentID]
		if !ok || len(agent.Met) == 0 {
			continue
		}
		met := make([]string, len(agent.Met))
		copy(met, agent.Met)
		out = append(out, Memory{
			Step:     i,
			Location: agent.Location,
			Met:      met,
			Content:  fmt.Sprintf("Step %d: Saw %s in %s", i, strings.Join(met, ", "), agent.Location),
		})
	}
	return out, nil
}

func validAgent(id string) bool {
	for _, known := range AgentIDs() {
		if known == id {
			return true
		}
	}
	return false
}
