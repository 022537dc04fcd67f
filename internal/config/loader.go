package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the config file looked up in the working directory
// when no explicit path is given.
const ConfigFileName = "graphlens.yaml"

// EnvPrefix is the prefix for environment overrides. A double
// underscore separates nesting levels: GRAPHLENS_GRAPH__URI sets
// graph.uri.
const EnvPrefix = "GRAPHLENS_"

// Load builds Settings from defaults, then the YAML file at path (or
// ./graphlens.yaml when path is empty and it exists), then environment
// variables. The result is validated before it is returned.
func Load(path string) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Settings{}, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Settings
	if err := k.Unmarshal("", &cfg); err != nil {
		return Settings{}, fmt.Errorf("unmarshaling settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func findConfigFile() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return filepath.Clean(ConfigFileName)
	}
	return ""
}

func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"source":                         d.Source,
		"graph.uri":                      d.Graph.URI,
		"graph.username":                 d.Graph.Username,
		"graph.password":                 d.Graph.Password,
		"graph.database":                 d.Graph.Database,
		"graph.query":                    d.Graph.Query,
		"graph.display_property":         d.Graph.DisplayProperty,
		"relational.conn_string":         d.Relational.ConnString,
		"relational.nodes_query":         d.Relational.NodesQuery,
		"relational.edges_query":         d.Relational.EdgesQuery,
		"relational.mapping.node_id":     d.Relational.Mapping.NodeID,
		"relational.mapping.node_label":  d.Relational.Mapping.NodeLabel,
		"relational.mapping.node_name":   d.Relational.Mapping.NodeName,
		"relational.mapping.edge_source": d.Relational.Mapping.EdgeSource,
		"relational.mapping.edge_target": d.Relational.Mapping.EdgeTarget,
		"relational.mapping.edge_type":   d.Relational.Mapping.EdgeType,
		"insight.api_key":                os.Getenv("GEMINI_API_KEY"),
		"insight.model":                  d.Insight.Model,
	}
}
