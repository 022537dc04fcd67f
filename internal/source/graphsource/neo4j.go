// Package graphsource loads a property graph from Neo4j and normalizes
// the result into the canonical element model. One session is opened
// per load and closed on every exit path.
package graphsource

import (
	"context"
	"fmt"
	"time"

	"graphlens/internal/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Client wraps a Neo4j driver bound to one logical database.
type Client struct {
	driver neo4j.DriverWithContext
	dbName string
}

// NewClient creates a client and verifies connectivity.
func NewClient(uri, username, password, dbName string) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to neo4j: %w", err)
	}

	return &Client{
		driver: driver,
		dbName: dbName,
	}, nil
}

// Close releases the underlying driver.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Load runs one traversal query binding (start node, relationship, end
// node) and builds the element set. Either the full set is returned or
// an error; no partial result escapes.
func (c *Client) Load(ctx context.Context, query, displayProperty string) (*graph.ElementSet, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.dbName})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		set := graph.NewElementSet()
		for i, record := range records {
			if err := appendTriple(set, record.Values, displayProperty, i); err != nil {
				return nil, err
			}
		}
		return set, nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph query failed: %w", err)
	}

	return result.(*graph.ElementSet), nil
}

// LoadGraph is the one-shot form: open, load, close.
func LoadGraph(ctx context.Context, uri, username, password, database, query, displayProperty string) (*graph.ElementSet, error) {
	client, err := NewClient(uri, username, password, database)
	if err != nil {
		return nil, err
	}
	defer client.Close(ctx)

	return client.Load(ctx, query, displayProperty)
}
