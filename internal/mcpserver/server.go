// Package mcpserver exposes graph loading over the Model Context
// Protocol so external renderers and assistants can pull the canonical
// element model as JSON over a text transport.
package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"graphlens/internal/config"
	"graphlens/internal/graph"
	"graphlens/internal/insight"
	"graphlens/internal/loader"
)

// Server wraps the MCP server with graphlens capabilities.
type Server struct {
	mcpServer *mcp.Server
	settings  config.Settings
	load      loader.Func
	engine    *insight.Engine
}

// NewServer creates an MCP server bound to the given settings. The
// insight tool is only registered when a Gemini API key is configured.
func NewServer(ctx context.Context, cfg config.Settings, version string) (*Server, error) {
	impl := &mcp.Implementation{
		Name:    "graphlens",
		Version: version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		settings:  cfg,
		load:      loader.Load,
	}

	if cfg.Insight.APIKey != "" {
		engine, err := insight.NewEngine(ctx, cfg.Insight.APIKey, cfg.Insight.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create insight engine: %w", err)
		}
		s.engine = engine
	}

	s.registerTools()
	return s, nil
}

// LoadGraphArgs defines the input for the load_graph tool.
type LoadGraphArgs struct {
	Source string `json:"source,omitempty" jsonschema:"override the configured data source kind: graph or relational"`
}

// LoadGraphResult carries renderer-ready output.
type LoadGraphResult struct {
	Elements *graph.ElementSet `json:"elements" jsonschema:"nodes and edges in renderer envelope form"`
	Styles   *graph.StyleSet   `json:"styles" jsonschema:"derived per-label node and edge styles"`
}

// SummaryArgs defines the input for the graph_summary tool.
type SummaryArgs struct {
	Source string `json:"source,omitempty" jsonschema:"override the configured data source kind: graph or relational"`
}

// SummaryResult carries aggregate counts for a loaded graph.
type SummaryResult struct {
	NodeCount  int            `json:"node_count" jsonschema:"number of distinct nodes"`
	EdgeCount  int            `json:"edge_count" jsonschema:"number of edges"`
	NodeLabels map[string]int `json:"node_labels" jsonschema:"node count per label"`
	EdgeLabels map[string]int `json:"edge_labels" jsonschema:"edge count per relationship type"`
}

// AskGraphArgs defines the input for the ask_graph tool.
type AskGraphArgs struct {
	Question string `json:"question" jsonschema:"the question to ask about the loaded graph"`
	Source   string `json:"source,omitempty" jsonschema:"override the configured data source kind: graph or relational"`
}

// AskGraphResult carries the generated answer.
type AskGraphResult struct {
	Answer string `json:"answer" jsonschema:"AI-generated answer grounded in the graph"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "load_graph",
		Description: "Load the configured graph and return nodes, edges, and derived styles in renderer-ready JSON. Works against Neo4j or a relational store depending on settings.",
	}, s.handleLoadGraph)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "graph_summary",
		Description: "Load the configured graph and return aggregate counts: nodes, edges, and distributions per node label and relationship type.",
	}, s.handleGraphSummary)

	if s.engine != nil {
		mcp.AddTool(s.mcpServer, &mcp.Tool{
			Name:        "ask_graph",
			Description: "Ask a natural-language question about the loaded graph. The answer is generated by Gemini, grounded in the graph's nodes and edges.",
		}, s.handleAskGraph)
	}
}

// settingsFor applies the optional per-call source override.
func (s *Server) settingsFor(override string) (config.Settings, error) {
	cfg := s.settings
	if override != "" {
		cfg.Source = override
	}
	if err := cfg.Validate(); err != nil {
		return config.Settings{}, err
	}
	return cfg, nil
}

func (s *Server) handleLoadGraph(ctx context.Context, _ *mcp.CallToolRequest, args LoadGraphArgs) (*mcp.CallToolResult, LoadGraphResult, error) {
	cfg, err := s.settingsFor(args.Source)
	if err != nil {
		return nil, LoadGraphResult{}, err
	}

	res, err := s.load(ctx, cfg)
	if err != nil {
		return nil, LoadGraphResult{}, fmt.Errorf("load failed: %w", err)
	}

	return nil, LoadGraphResult{Elements: res.Elements, Styles: res.Styles}, nil
}

func (s *Server) handleGraphSummary(ctx context.Context, _ *mcp.CallToolRequest, args SummaryArgs) (*mcp.CallToolResult, SummaryResult, error) {
	cfg, err := s.settingsFor(args.Source)
	if err != nil {
		return nil, SummaryResult{}, err
	}

	res, err := s.load(ctx, cfg)
	if err != nil {
		return nil, SummaryResult{}, fmt.Errorf("load failed: %w", err)
	}

	return nil, SummaryResult{
		NodeCount:  len(res.Elements.Nodes),
		EdgeCount:  len(res.Elements.Edges),
		NodeLabels: res.Elements.NodeLabelCounts(),
		EdgeLabels: res.Elements.EdgeLabelCounts(),
	}, nil
}

func (s *Server) handleAskGraph(ctx context.Context, _ *mcp.CallToolRequest, args AskGraphArgs) (*mcp.CallToolResult, AskGraphResult, error) {
	if args.Question == "" {
		return nil, AskGraphResult{}, fmt.Errorf("question must not be empty")
	}

	cfg, err := s.settingsFor(args.Source)
	if err != nil {
		return nil, AskGraphResult{}, err
	}

	res, err := s.load(ctx, cfg)
	if err != nil {
		return nil, AskGraphResult{}, fmt.Errorf("load failed: %w", err)
	}

	answer, err := s.engine.Ask(ctx, args.Question, res.Elements)
	if err != nil {
		return nil, AskGraphResult{}, fmt.Errorf("insight query failed: %w", err)
	}

	return nil, AskGraphResult{Answer: answer}, nil
}

// Start runs the MCP server on stdio until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Starting graphlens MCP server on stdio...\n")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// Close releases the insight engine if one was created.
func (s *Server) Close() error {
	if s.engine != nil {
		return s.engine.Close()
	}
	return nil
}
