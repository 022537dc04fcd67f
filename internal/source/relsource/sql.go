// Package relsource loads graph structure from a relational store: one
// query returning node rows, one returning relationship rows, tied
// together by a configurable column mapping.
package relsource

import (
	"context"
	"database/sql"
	"fmt"

	"graphlens/internal/graph"
)

// Mapping names the result columns carrying graph structure. Columns
// absent from a result set are substituted with defaults, never raised.
type Mapping struct {
	NodeID     string
	NodeLabel  string
	NodeName   string
	EdgeSource string
	EdgeTarget string
	EdgeType   string
}

// Source wraps an open relational connection.
type Source struct {
	db *sql.DB
}

// Open connects to the store named by the connection string. The scheme
// picks the driver: sqlite:// (default for bare paths), duckdb://, and
// postgres://.
func Open(ctx context.Context, connString string) (*Source, error) {
	driver, dsn, err := resolveDriver(connString)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", driver, err)
	}

	return &Source{db: db}, nil
}

// NewWithDB wraps an existing connection. Used by tests and by callers
// that manage the pool themselves.
func NewWithDB(db *sql.DB) *Source {
	return &Source{db: db}
}

// Close releases the connection.
func (s *Source) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load runs the two queries and builds the element set. Either the full
// set is returned or an error; no partial result escapes.
func (s *Source) Load(ctx context.Context, nodesQuery, edgesQuery string, m Mapping) (*graph.ElementSet, error) {
	set := graph.NewElementSet()

	if err := s.loadNodes(ctx, set, nodesQuery, m); err != nil {
		return nil, err
	}
	if err := s.loadEdges(ctx, set, edgesQuery, m); err != nil {
		return nil, err
	}

	return set, nil
}

func (s *Source) loadNodes(ctx context.Context, set *graph.ElementSet, query string, m Mapping) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("nodes query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("nodes query columns: %w", err)
	}

	for rows.Next() {
		row, err := scanRow(rows, cols)
		if err != nil {
			return fmt.Errorf("scan node row failed: %w", err)
		}

		props := graph.SerializableProperties(row)
		id := asString(props[m.NodeID])
		if set.HasNode(id) {
			continue
		}

		label := graph.DefaultNodeLabel
		if v := asString(props[m.NodeLabel]); v != "" {
			label = v
		}

		name := label
		if v, ok := props[m.NodeName]; ok {
			name = asString(v)
		}

		set.AddNode(graph.NodeElement{
			ID:         id,
			Label:      label,
			Name:       name,
			Properties: props,
		})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("nodes rows iteration: %w", err)
	}
	return nil
}

func (s *Source) loadEdges(ctx context.Context, set *graph.ElementSet, query string, m Mapping) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("relationships query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("relationships query columns: %w", err)
	}

	idx := 0
	for rows.Next() {
		row, err := scanRow(rows, cols)
		if err != nil {
			return fmt.Errorf("scan relationship row failed: %w", err)
		}

		props := graph.SerializableProperties(row)

		label := graph.DefaultEdgeLabel
		if v := asString(props[m.EdgeType]); v != "" {
			label = v
		}

		// Missing source/target columns produce a dangling edge on
		// purpose; rejecting the row would hide the data problem.
		set.AddEdge(graph.EdgeElement{
			ID:         fmt.Sprintf("edge_%d", idx),
			Source:     asString(props[m.EdgeSource]),
			Target:     asString(props[m.EdgeTarget]),
			Label:      label,
			Properties: props,
		})
		idx++
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("relationships rows iteration: %w", err)
	}
	return nil
}

// LoadRelational is the one-shot form: open, load, close.
func LoadRelational(ctx context.Context, connString, nodesQuery, edgesQuery string, m Mapping) (*graph.ElementSet, error) {
	src, err := Open(ctx, connString)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return src.Load(ctx, nodesQuery, edgesQuery, m)
}
