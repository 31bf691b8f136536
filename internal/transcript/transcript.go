// Package transcript groups a flat conversation history into the views the
// presentation layer renders: discussion lines, cast votes, and anything the
// remote engine adds later.
package transcript

import "impostor-sim/internal/gameclient"

// Grouped is an order-preserving partition of one transcript.
type Grouped struct {
	Speeches []gameclient.TranscriptEntry `json:"speeches"`
	Votes    []gameclient.TranscriptEntry `json:"votes"`
	Other    []gameclient.TranscriptEntry `json:"other,omitempty"`
}

// Partition splits entries by kind. Relative order within each group matches
// the input; the input slice is not retained.
func Partition(entries []gameclient.TranscriptEntry) Grouped {
	g := Grouped{
		Speeches: []gameclient.TranscriptEntry{},
		Votes:    []gameclient.TranscriptEntry{},
	}
	for _, e := range entries {
		switch e.Kind {
		case gameclient.KindSpeak:
			g.Speeches = append(g.Speeches, e)
		case gameclient.KindVote:
			g.Votes = append(g.Votes, e)
		default:
			g.Other = append(g.Other, e)
		}
	}
	return g
}

// VoteTally counts votes per target agent id. Entries without a target are
// skipped.
func VoteTally(entries []gameclient.TranscriptEntry) map[int]int {
	tally := make(map[int]int)
	for _, e := range entries {
		if e.Kind == gameclient.KindVote && e.TargetAgentID != nil {
			tally[*e.TargetAgentID]++
		}
	}
	return tally
}
