package graphsource

import (
	"fmt"
	"strings"

	"graphlens/internal/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// relIDPrefix keeps relationship ids from colliding with node ids in
// the shared renderer namespace.
const relIDPrefix = "rel_"

// endpointsKey is the side-channel property holding the two property
// bundles of a legacy-triple relationship.
const endpointsKey = "endpoints"

// appendTriple converts one (start node, relationship, end node) record
// into elements. index is the zero-based record position, used to
// synthesize edge ids when the store provides none.
func appendTriple(set *graph.ElementSet, values []any, displayProperty string, index int) error {
	if len(values) < 3 {
		return fmt.Errorf("record has %d columns, want 3 (start node, relationship, end node)", len(values))
	}

	start, ok := values[0].(neo4j.Node)
	if !ok {
		return fmt.Errorf("first column is %T, want a node", values[0])
	}
	end, ok := values[2].(neo4j.Node)
	if !ok {
		return fmt.Errorf("third column is %T, want a node", values[2])
	}

	appendNode(set, start, displayProperty)
	appendNode(set, end, displayProperty)

	switch rel := values[1].(type) {
	case neo4j.Relationship:
		props := graph.SerializableProperties(rel.Props)
		set.AddEdge(graph.EdgeElement{
			ID:         relIDPrefix + rel.ElementId,
			Source:     rel.StartElementId,
			Target:     rel.EndElementId,
			Label:      rel.Type,
			Properties: props,
		})
		return nil
	case []any:
		// Shape variance: some client versions hand the relationship
		// back as a bare (start props, type, end props) triple.
		return appendLegacyTriple(set, rel, start.ElementId, end.ElementId, index)
	default:
		return fmt.Errorf("second column is %T, want a relationship", values[1])
	}
}

// appendLegacyTriple resolves the composite relationship shape into a
// structurally valid edge: the middle element is the type, the two
// property bundles are nested under the endpoints key.
func appendLegacyTriple(set *graph.ElementSet, triple []any, sourceID, targetID string, index int) error {
	if len(triple) != 3 {
		return fmt.Errorf("composite relationship has %d elements, want 3", len(triple))
	}

	label := graph.DefaultEdgeLabel
	if t, ok := triple[1].(string); ok && t != "" {
		label = t
	}

	set.AddEdge(graph.EdgeElement{
		ID:     fmt.Sprintf("%s%d", relIDPrefix, index),
		Source: sourceID,
		Target: targetID,
		Label:  label,
		Properties: map[string]any{
			endpointsKey: map[string]any{
				"start": graph.Serializable(triple[0]),
				"end":   graph.Serializable(triple[2]),
			},
		},
	})
	return nil
}

// appendNode builds a NodeElement from a store node unless its identity
// was already seen in this load.
func appendNode(set *graph.ElementSet, node neo4j.Node, displayProperty string) {
	if set.HasNode(node.ElementId) {
		return
	}

	props := graph.SerializableProperties(node.Props)

	label := graph.DefaultNodeLabel
	if len(node.Labels) > 0 {
		label = strings.Join(node.Labels, ":")
	}

	name := label
	if v, ok := props[displayProperty]; ok {
		name = asString(v)
	}

	props["labels"] = node.Labels

	set.AddNode(graph.NodeElement{
		ID:         node.ElementId,
		Label:      label,
		Name:       name,
		Properties: props,
	})
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
