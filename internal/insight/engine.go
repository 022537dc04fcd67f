// Package insight answers natural-language questions about a loaded
// graph using Gemini. Optional: everything else works without an API
// key.
package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"graphlens/internal/graph"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// maxContextBytes bounds how much of the serialized graph goes into the
// prompt; large graphs are truncated, not rejected.
const maxContextBytes = 24 * 1024

// ModelConfig defines configuration for a Gemini model.
type ModelConfig struct {
	Name        string
	Temperature float32
	TopP        float32
	TopK        int32
}

// AvailableModels defines the selectable Gemini models.
var AvailableModels = map[string]ModelConfig{
	"flash": {
		Name:        "gemini-flash-latest",
		Temperature: 0.7,
		TopP:        0.95,
		TopK:        40,
	},
	"pro": {
		Name:        "gemini-pro-latest",
		Temperature: 0.7,
		TopP:        0.95,
		TopK:        40,
	},
	"flash-2": {
		Name:        "gemini-2.0-flash",
		Temperature: 0.7,
		TopP:        0.95,
		TopK:        40,
	},
	"experimental": {
		Name:        "gemini-2.0-flash-exp",
		Temperature: 0.7,
		TopP:        0.95,
		TopK:        40,
	},
}

// Engine wraps a Gemini client configured for graph Q&A.
type Engine struct {
	client *genai.Client
	config ModelConfig
}

// NewEngine creates an engine. modelKey selects from AvailableModels;
// unknown keys fall back to flash.
func NewEngine(ctx context.Context, apiKey, modelKey string) (*Engine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("insight requires an API key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	cfg, ok := AvailableModels[modelKey]
	if !ok {
		cfg = AvailableModels["flash"]
	}

	return &Engine{client: client, config: cfg}, nil
}

// Close releases the Gemini client.
func (e *Engine) Close() error {
	return e.client.Close()
}

func (e *Engine) getModel() *genai.GenerativeModel {
	model := e.client.GenerativeModel(e.config.Name)
	model.SetTemperature(e.config.Temperature)
	model.SetTopP(e.config.TopP)
	model.SetTopK(e.config.TopK)
	return model
}

// Ask answers a question about the loaded element set.
func (e *Engine) Ask(ctx context.Context, question string, elements *graph.ElementSet) (string, error) {
	graphJSON, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize graph: %w", err)
	}
	if len(graphJSON) > maxContextBytes {
		graphJSON = graphJSON[:maxContextBytes]
	}

	prompt := fmt.Sprintf(`You are a graph analysis expert. Answer the following question based on the network graph below. Nodes carry an id, a label (their category), a display name, and arbitrary properties; edges carry a source, a target, and a relationship type.

Question: %s

Graph (nodes and edges, JSON):
%s

Provide a clear, concise answer grounded only in the graph data. If the graph is empty or insufficient to answer, say so clearly.`, question, string(graphJSON))

	model := e.getModel()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "Unable to generate a response from the available data.", nil
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
