package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, SourceGraph, cfg.Source)
	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, "full_name", cfg.Graph.DisplayProperty)
	assert.Equal(t, "sqlite://example.db", cfg.Relational.ConnString)
	assert.Equal(t, "Node_ID", cfg.Relational.Mapping.NodeID)
	assert.Equal(t, "Relationship_Type", cfg.Relational.Mapping.EdgeType)
	assert.Equal(t, "flash", cfg.Insight.Model)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphlens.yaml")
	content := `
source: relational
relational:
  conn_string: duckdb://analytics.duckdb
  mapping:
    node_id: id
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourceRelational, cfg.Source)
	assert.Equal(t, "duckdb://analytics.duckdb", cfg.Relational.ConnString)
	assert.Equal(t, "id", cfg.Relational.Mapping.NodeID)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Label", cfg.Relational.Mapping.NodeLabel)
	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRAPHLENS_SOURCE", "relational")
	t.Setenv("GRAPHLENS_GRAPH__URI", "bolt://db.internal:7687")
	t.Setenv("GRAPHLENS_RELATIONAL__CONN_STRING", "postgres://localhost/graph")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, SourceRelational, cfg.Source)
	assert.Equal(t, "bolt://db.internal:7687", cfg.Graph.URI)
	assert.Equal(t, "postgres://localhost/graph", cfg.Relational.ConnString)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *Settings) {},
		},
		{
			name:    "unknown source kind",
			mutate:  func(s *Settings) { s.Source = "csv" },
			wantErr: "source",
		},
		{
			name: "graph requires a query",
			mutate: func(s *Settings) {
				s.Source = SourceGraph
				s.Graph.Query = ""
			},
			wantErr: "graph.query",
		},
		{
			name: "relational requires a connection string",
			mutate: func(s *Settings) {
				s.Source = SourceRelational
				s.Relational.ConnString = ""
			},
			wantErr: "relational.conn_string",
		},
		{
			name: "graph kind ignores relational gaps",
			mutate: func(s *Settings) {
				s.Source = SourceGraph
				s.Relational.ConnString = ""
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
