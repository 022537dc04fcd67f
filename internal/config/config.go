// Package config supplies the load parameters for both source kinds:
// connection settings, queries, column mappings, and the display
// property. Values come from defaults, an optional YAML file, and
// GRAPHLENS_* environment variables, in that order.
package config

// Source kinds accepted by the loader.
const (
	SourceGraph      = "graph"
	SourceRelational = "relational"
)

// Settings is the full set of load parameters. A load is a pure
// function of one Settings value; nothing is carried across loads.
type Settings struct {
	Source     string             `koanf:"source"` // "graph" or "relational"
	Graph      GraphSettings      `koanf:"graph"`
	Relational RelationalSettings `koanf:"relational"`
	Insight    InsightSettings    `koanf:"insight"`
}

// GraphSettings configures the property-graph source. Query must bind
// three result columns: start node, relationship, end node.
type GraphSettings struct {
	URI             string `koanf:"uri"`
	Username        string `koanf:"username"`
	Password        string `koanf:"password"`
	Database        string `koanf:"database"`
	Query           string `koanf:"query"`
	DisplayProperty string `koanf:"display_property"`
}

// RelationalSettings configures the relational source: one query for
// node rows, one for relationship rows, and the column mapping that
// ties the two result sets into a graph.
type RelationalSettings struct {
	ConnString string        `koanf:"conn_string"`
	NodesQuery string        `koanf:"nodes_query"`
	EdgesQuery string        `koanf:"edges_query"`
	Mapping    ColumnMapping `koanf:"mapping"`
}

// ColumnMapping names the columns carrying graph structure. A mapped
// column absent from a result set is substituted, never an error.
type ColumnMapping struct {
	NodeID     string `koanf:"node_id"`
	NodeLabel  string `koanf:"node_label"`
	NodeName   string `koanf:"node_name"`
	EdgeSource string `koanf:"edge_source"`
	EdgeTarget string `koanf:"edge_target"`
	EdgeType   string `koanf:"edge_type"`
}

// InsightSettings configures the optional Gemini-backed graph summary.
type InsightSettings struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"` // model key: flash, pro, flash-2, experimental
}

// Default returns the built-in settings, matching the defaults the
// interactive form pre-fills.
func Default() Settings {
	return Settings{
		Source: SourceGraph,
		Graph: GraphSettings{
			URI:             "bolt://localhost:7687",
			Username:        "neo4j",
			Password:        "neo4j12345",
			Database:        "neo4j",
			Query:           "MATCH (n)-[r]->(m)\nRETURN n, r, m\nLIMIT 100",
			DisplayProperty: "full_name",
		},
		Relational: RelationalSettings{
			ConnString: "sqlite://example.db",
			NodesQuery: "SELECT * FROM nodes_view LIMIT 100",
			EdgesQuery: "SELECT * FROM relationships_view LIMIT 200",
			Mapping: ColumnMapping{
				NodeID:     "Node_ID",
				NodeLabel:  "Label",
				NodeName:   "Name",
				EdgeSource: "Source_ID",
				EdgeTarget: "Target_ID",
				EdgeType:   "Relationship_Type",
			},
		},
		Insight: InsightSettings{
			Model: "flash",
		},
	}
}

// Validate checks the settings and returns an error describing the
// first invalid field.
func (s Settings) Validate() error {
	switch s.Source {
	case SourceGraph, SourceRelational:
	default:
		return &ConfigError{Field: "source", Message: "must be \"graph\" or \"relational\""}
	}
	if s.Source == SourceGraph {
		if s.Graph.URI == "" {
			return &ConfigError{Field: "graph.uri", Message: "must not be empty"}
		}
		if s.Graph.Query == "" {
			return &ConfigError{Field: "graph.query", Message: "must not be empty"}
		}
	}
	if s.Source == SourceRelational {
		if s.Relational.ConnString == "" {
			return &ConfigError{Field: "relational.conn_string", Message: "must not be empty"}
		}
		if s.Relational.NodesQuery == "" {
			return &ConfigError{Field: "relational.nodes_query", Message: "must not be empty"}
		}
		if s.Relational.EdgesQuery == "" {
			return &ConfigError{Field: "relational.edges_query", Message: "must not be empty"}
		}
	}
	return nil
}

// ConfigError represents a settings validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
