// Package graph defines the canonical element model handed to renderers:
// deduplicated nodes, edges with resolved endpoints, and JSON-safe
// property bags. Both source adapters produce this shape and everything
// downstream (styles, TUI, MCP) consumes only this shape.
package graph

import "encoding/json"

const (
	// DefaultNodeLabel is used when a node carries no label at all.
	DefaultNodeLabel = "Observation"
	// DefaultEdgeLabel is used when a relationship carries no type.
	DefaultEdgeLabel = "RELATED"
)

// NodeElement is one renderable node. Properties holds every field read
// from the source, already passed through the normalizer.
type NodeElement struct {
	ID         string
	Label      string
	Name       string
	Properties map[string]any
}

// EdgeElement is one renderable edge. Source and Target reference node
// IDs; dangling references are the source system's data-quality problem
// and are passed through as-is.
type EdgeElement struct {
	ID         string
	Source     string
	Target     string
	Label      string
	Properties map[string]any
}

// ElementSet is the canonical output of one load: ordered nodes and
// edges. Node identity is unique within a set (first occurrence wins);
// parallel edges are legitimate and kept.
type ElementSet struct {
	Nodes []NodeElement
	Edges []EdgeElement

	seen map[string]struct{}
}

// NewElementSet returns an empty set ready for adapter output.
func NewElementSet() *ElementSet {
	return &ElementSet{
		Nodes: []NodeElement{},
		Edges: []EdgeElement{},
		seen:  make(map[string]struct{}),
	}
}

// AddNode inserts n unless a node with the same ID was already added.
// It reports whether the node was kept.
func (s *ElementSet) AddNode(n NodeElement) bool {
	if _, dup := s.seen[n.ID]; dup {
		return false
	}
	s.seen[n.ID] = struct{}{}
	s.Nodes = append(s.Nodes, n)
	return true
}

// HasNode reports whether a node with the given ID is in the set.
func (s *ElementSet) HasNode(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// AddEdge appends e. Edges are never deduplicated.
func (s *ElementSet) AddEdge(e EdgeElement) {
	s.Edges = append(s.Edges, e)
}

// NodeLabelCounts returns how many nodes carry each label.
func (s *ElementSet) NodeLabelCounts() map[string]int {
	counts := make(map[string]int)
	for _, n := range s.Nodes {
		label := n.Label
		if label == "" {
			label = DefaultNodeLabel
		}
		counts[label]++
	}
	return counts
}

// EdgeLabelCounts returns how many edges carry each label.
func (s *ElementSet) EdgeLabelCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range s.Edges {
		label := e.Label
		if label == "" {
			label = DefaultEdgeLabel
		}
		counts[label]++
	}
	return counts
}

// flatten merges the fixed fields into the property bag. Fixed fields
// win on key collision so a source column named "id" cannot clobber the
// resolved identity.
func flatten(props map[string]any, fixed map[string]any) map[string]any {
	out := make(map[string]any, len(props)+len(fixed))
	for k, v := range props {
		out[k] = v
	}
	for k, v := range fixed {
		out[k] = v
	}
	return out
}

// MarshalJSON emits the flat renderer shape: every property plus id,
// label, and name at the top level of the data object.
func (n NodeElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(flatten(n.Properties, map[string]any{
		"id":    n.ID,
		"label": n.Label,
		"name":  n.Name,
	}))
}

// MarshalJSON emits the flat renderer shape for an edge.
func (e EdgeElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(flatten(e.Properties, map[string]any{
		"id":     e.ID,
		"source": e.Source,
		"target": e.Target,
		"label":  e.Label,
	}))
}

type nodeEnvelope struct {
	Data NodeElement `json:"data"`
}

type edgeEnvelope struct {
	Data EdgeElement `json:"data"`
}

// MarshalJSON emits the renderer-agnostic envelope:
// {"nodes":[{"data":{...}}],"edges":[{"data":{...}}]}.
func (s *ElementSet) MarshalJSON() ([]byte, error) {
	nodes := make([]nodeEnvelope, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		nodes = append(nodes, nodeEnvelope{Data: n})
	}
	edges := make([]edgeEnvelope, 0, len(s.Edges))
	for _, e := range s.Edges {
		edges = append(edges, edgeEnvelope{Data: e})
	}
	return json.Marshal(map[string]any{
		"nodes": nodes,
		"edges": edges,
	})
}
