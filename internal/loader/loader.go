// Package loader runs one load: settings in, canonical elements plus
// derived styles out. All store errors are caught here and converted to
// a single reported failure; nothing partial ever crosses this boundary.
package loader

import (
	"context"
	"fmt"

	"graphlens/internal/config"
	"graphlens/internal/graph"
	"graphlens/internal/source/graphsource"
	"graphlens/internal/source/relsource"
)

// Result is what a renderer needs: the element set and its styles.
type Result struct {
	Elements *graph.ElementSet
	Styles   *graph.StyleSet
}

// Func is the loading contract consumed by the TUI and the MCP server.
// It exists so those surfaces can be tested without a database.
type Func func(ctx context.Context, cfg config.Settings) (*Result, error)

// Load dispatches on the configured source kind, builds the element
// set, and derives styles. A load either finishes whole or fails.
func Load(ctx context.Context, cfg config.Settings) (*Result, error) {
	var (
		set *graph.ElementSet
		err error
	)

	switch cfg.Source {
	case config.SourceGraph:
		g := cfg.Graph
		set, err = graphsource.LoadGraph(ctx, g.URI, g.Username, g.Password, g.Database, g.Query, g.DisplayProperty)
		if err != nil {
			return nil, fmt.Errorf("loading from neo4j: %w", err)
		}
	case config.SourceRelational:
		r := cfg.Relational
		set, err = relsource.LoadRelational(ctx, r.ConnString, r.NodesQuery, r.EdgesQuery, relsource.Mapping{
			NodeID:     r.Mapping.NodeID,
			NodeLabel:  r.Mapping.NodeLabel,
			NodeName:   r.Mapping.NodeName,
			EdgeSource: r.Mapping.EdgeSource,
			EdgeTarget: r.Mapping.EdgeTarget,
			EdgeType:   r.Mapping.EdgeType,
		})
		if err != nil {
			return nil, fmt.Errorf("loading from relational store: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown data source kind %q", cfg.Source)
	}

	return &Result{
		Elements: set,
		Styles:   graph.DeriveStyles(set),
	}, nil
}
