package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"impostor-sim/internal/gameclient"
	"impostor-sim/internal/playback"
	"impostor-sim/internal/scenario"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

type stubAPI struct{}

func (stubAPI) CreateSession(context.Context, int) (*gameclient.Session, error) {
	return nil, errors.New("not used")
}

func (stubAPI) AdvanceSession(context.Context, string) (*gameclient.StepResult, error) {
	return nil, errors.New("not used")
}

func newTestServer() *Server {
	ctrl := playback.New(stubAPI{}, playback.Config{
		TickPeriod:       time.Hour,
		HandoffThreshold: scenario.HandoffThreshold(),
	})
	return New(ctrl)
}

func TestMCPServerToolsAndFlows(t *testing.T) {
	srv := newTestServer()
	httpSrv := httptest.NewServer(srv.Handler())
	defer httpSrv.Close()

	mcpClient, closeClient := newMCPClient(t, httpSrv.URL+"/mcp")
	defer closeClient()

	tools := mustListTools(t, mcpClient)
	assertToolNames(t, tools,
		"playback_state",
		"playback_play",
		"playback_pause",
		"playback_reset",
		"transcript_get",
		"scenario_overview",
		"scenario_step",
		"agent_memories",
	)

	state := mustCallTool(t, mcpClient, "playback_state", map[string]any{})
	if state.IsError {
		t.Fatalf("playback_state error: %v", state.StructuredContent)
	}
	payload := mapFromStructured(t, state)
	if asString(payload["phase"]) != "scripted" {
		t.Fatalf("initial phase = %v", payload["phase"])
	}

	play := mustCallTool(t, mcpClient, "playback_play", map[string]any{})
	if mapFromStructured(t, play)["playing"] != true {
		t.Fatalf("playback_play result: %v", play.StructuredContent)
	}
	pause := mustCallTool(t, mcpClient, "playback_pause", map[string]any{})
	if mapFromStructured(t, pause)["playing"] != false {
		t.Fatalf("playback_pause result: %v", pause.StructuredContent)
	}
	reset := mustCallTool(t, mcpClient, "playback_reset", map[string]any{})
	if mapFromStructured(t, reset)["step"] != float64(0) {
		t.Fatalf("playback_reset result: %v", reset.StructuredContent)
	}

	overview := mustCallTool(t, mcpClient, "scenario_overview", map[string]any{})
	if mapFromStructured(t, overview)["steps"] != float64(scenario.Steps()) {
		t.Fatalf("scenario_overview result: %v", overview.StructuredContent)
	}

	step := mustCallTool(t, mcpClient, "scenario_step", map[string]any{"step": 0})
	if step.IsError {
		t.Fatalf("scenario_step error: %v", step.StructuredContent)
	}

	memories := mustCallTool(t, mcpClient, "agent_memories", map[string]any{"agent_id": "red", "upto": 9})
	if memories.IsError {
		t.Fatalf("agent_memories error: %v", memories.StructuredContent)
	}
	if asString(mapFromStructured(t, memories)["agent_id"]) != "red" {
		t.Fatalf("agent_memories payload: %v", memories.StructuredContent)
	}
}

func TestMCPServerToolErrors(t *testing.T) {
	srv := newTestServer()
	httpSrv := httptest.NewServer(srv.Handler())
	defer httpSrv.Close()

	mcpClient, closeClient := newMCPClient(t, httpSrv.URL+"/mcp")
	defer closeClient()

	outOfRange := mustCallTool(t, mcpClient, "scenario_step", map[string]any{"step": 999})
	assertToolErrorCode(t, outOfRange, "step_out_of_range")

	missing := mustCallTool(t, mcpClient, "scenario_step", map[string]any{})
	assertToolErrorCode(t, missing, "invalid_request")

	unknownAgent := mustCallTool(t, mcpClient, "agent_memories", map[string]any{"agent_id": "purple"})
	assertToolErrorCode(t, unknownAgent, "agent_not_found")

	noSession := mustCallTool(t, mcpClient, "transcript_get", map[string]any{})
	assertToolErrorCode(t, noSession, "no_live_session")
}

func newMCPClient(t *testing.T, endpoint string) (*client.Client, func()) {
	t.Helper()
	ctx := context.Background()
	trans, err := transport.NewStreamableHTTP(endpoint)
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	if err := trans.Start(ctx); err != nil {
		t.Fatalf("transport start: %v", err)
	}
	c := client.NewClient(trans)
	_, err = c.Initialize(ctx, mcp.InitializeRequest{Params: mcp.InitializeParams{ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION}})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return c, func() { _ = trans.Close() }
}

func mustListTools(t *testing.T, c *client.Client) []mcp.Tool {
	t.Helper()
	res, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	return res.Tools
}

func assertToolNames(t *testing.T, tools []mcp.Tool, expected ...string) {
	t.Helper()
	got := make([]string, 0, len(tools))
	for _, tool := range tools {
		got = append(got, tool.Name)
	}
	sort.Strings(got)
	sort.Strings(expected)
	if len(got) != len(expected) {
		t.Fatalf("tool count mismatch got=%v expected=%v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("tool list mismatch got=%v expected=%v", got, expected)
		}
	}
}

func mustCallTool(t *testing.T, c *client.Client, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := c.CallTool(context.Background(), mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}})
	if err != nil {
		t.Fatalf("call tool %s: %v", name, err)
	}
	return res
}

func assertToolErrorCode(t *testing.T, res *mcp.CallToolResult, want string) {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected tool error %q, got success: %v", want, res.StructuredContent)
	}
	payload := mapFromStructured(t, res)
	errObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Fatalf("error payload missing 'error': %v", payload)
	}
	if got := asString(errObj["code"]); got != want {
		t.Fatalf("error code=%q want=%q payload=%v", got, want, payload)
	}
}

func mapFromStructured(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	b, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
