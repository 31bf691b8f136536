package mcpserver

import (
	"context"

	"impostor-sim/internal/transcript"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPlaybackTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"playback_state",
			mcp.WithDescription("Get the current playback state, including the live session if one exists"),
		),
		s.handlePlaybackState,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"playback_play",
			mcp.WithDescription("Start or resume automatic advancement"),
		),
		s.handlePlaybackPlay,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"playback_pause",
			mcp.WithDescription("Pause automatic advancement; an in-flight call still completes"),
		),
		s.handlePlaybackPause,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"playback_reset",
			mcp.WithDescription("Reset to the start of the scripted timeline"),
		),
		s.handlePlaybackReset,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"transcript_get",
			mcp.WithDescription("Get the live conversation grouped into speeches and votes"),
		),
		s.handleTranscriptGet,
	)
}

func (s *Server) handlePlaybackState(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.ctrl.Snapshot()), nil
}

func (s *Server) handlePlaybackPlay(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.ctrl.Play()), nil
}

func (s *Server) handlePlaybackPause(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.ctrl.Pause()), nil
}

func (s *Server) handlePlaybackReset(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.ctrl.Reset()), nil
}

func (s *Server) handleTranscriptGet(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st := s.ctrl.Snapshot()
	if st.Session == nil {
		return toolError("no_live_session", "the scripted phase has no transcript"), nil
	}
	grouped := transcript.Partition(st.Session.Transcript)
	return toolResult(map[string]any{
		"game_id":    st.Session.GameID,
		"step":       st.Session.Step,
		"speeches":   grouped.Speeches,
		"votes":      grouped.Votes,
		"other":      grouped.Other,
		"vote_tally": transcript.VoteTally(st.Session.Transcript),
	}), nil
}
