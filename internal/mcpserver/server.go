// Package mcpserver exposes the simulation to MCP clients: playback control
// tools mirror the REST surface, scenario tools serve the scripted timeline.
package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"impostor-sim/internal/playback"
	"impostor-sim/internal/scenario"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Server struct {
	ctrl *playback.Controller

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

func New(ctrl *playback.Controller) *Server {
	mcpSrv := server.NewMCPServer(
		"impostor-sim",
		"0.1.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithResourceRecovery(),
	)
	s := &Server{
		ctrl:       ctrl,
		mcpServer:  mcpSrv,
		httpServer: server.NewStreamableHTTPServer(mcpSrv, server.WithStateLess(true), server.WithDisableStreaming(true)),
	}
	s.registerPlaybackTools()
	s.registerScenarioTools()
	s.registerResources()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer
}

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"scenario://steps/{step}",
			"scenario_step_snapshot",
			mcp.WithTemplateDescription("Scripted timeline snapshot by step number"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			raw := request.Params.URI
			if !strings.HasPrefix(raw, "scenario://steps/") {
				return nil, nil
			}
			k, err := strconv.Atoi(strings.TrimPrefix(raw, "scenario://steps/"))
			if err != nil {
				return nil, nil
			}
			snap, err := scenario.Step(k)
			if err != nil {
				return nil, err
			}
			payload, err := json.Marshal(snap)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      raw,
					MIMEType: "application/json",
					Text:     string(payload),
				},
			}, nil
		},
	)
}
