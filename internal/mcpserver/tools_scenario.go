package mcpserver

import (
	"context"

	"impostor-sim/internal/scenario"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerScenarioTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"scenario_overview",
			mcp.WithDescription("Describe the scripted timeline: cast, step count, handoff step"),
		),
		s.handleScenarioOverview,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"scenario_step",
			mcp.WithDescription("Get the scripted snapshot for one step"),
			mcp.WithNumber("step", mcp.Required(), mcp.Description("Step number, 0-based")),
		),
		s.handleScenarioStep,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"agent_memories",
			mcp.WithDescription("List what a scripted agent witnessed up to a step"),
			mcp.WithString("agent_id", mcp.Required(), mcp.Description("Agent id: red|blue|green|yellow")),
			mcp.WithNumber("upto", mcp.Description("Last step to include, default the final scripted step")),
		),
		s.handleAgentMemories,
	)
}

func (s *Server) handleScenarioOverview(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(map[string]any{
		"agents":            scenario.AgentIDs(),
		"steps":             scenario.Steps(),
		"handoff_threshold": scenario.HandoffThreshold(),
	}), nil
}

func (s *Server) handleScenarioStep(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	step, err := request.RequireFloat("step")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	snap, err := scenario.Step(int(step))
	if err != nil {
		return toolError("step_out_of_range", err.Error()), nil
	}
	return toolResult(snap), nil
}

func (s *Server) handleAgentMemories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	agentID, err := request.RequireString("agent_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	upto := request.GetInt("upto", scenario.Steps()-1)
	if upto < 0 {
		return toolError("invalid_request", "upto must be non-negative"), nil
	}
	memories, err := scenario.Memories(agentID, upto)
	if err != nil {
		return toolError("agent_not_found", err.Error()), nil
	}
	return toolResult(map[string]any{
		"agent_id": agentID,
		"upto":     upto,
		"memories": memories,
	}), nil
}
