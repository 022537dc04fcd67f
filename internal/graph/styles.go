package graph

import "sort"

// DefaultPalette is the fixed node color palette. Labels wrap around
// when there are more distinct labels than colors.
var DefaultPalette = []string{"#2A629A", "#FF7F3E", "#C0C0C0", "#008000", "#800080"}

const (
	// DefaultNodeShape is the shape every derived node style uses.
	DefaultNodeShape = "circle"
	// DefaultCaptionField is the node field rendered as display text.
	DefaultCaptionField = "name"
)

// NodeStyle describes how one node label is rendered.
type NodeStyle struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Caption string `json:"caption"`
	Shape   string `json:"shape"`
}

// EdgeStyle describes how one relationship type is rendered. An empty
// caption leaves captioning to the renderer's default.
type EdgeStyle struct {
	Label    string `json:"label"`
	Caption  string `json:"caption,omitempty"`
	Directed bool   `json:"directed"`
}

// StyleSet holds one style per distinct node label and edge label seen
// in an ElementSet. It is derived fresh on every load and never cached.
type StyleSet struct {
	Nodes []NodeStyle `json:"nodes"`
	Edges []EdgeStyle `json:"edges"`
}

// DeriveStyles builds the StyleSet for a loaded ElementSet. Labels are
// sorted lexicographically before palette assignment so the same input
// always yields the same coloring.
func DeriveStyles(set *ElementSet) *StyleSet {
	nodeLabels := sortedKeys(set.NodeLabelCounts())
	edgeLabels := sortedKeys(set.EdgeLabelCounts())

	styles := &StyleSet{
		Nodes: make([]NodeStyle, 0, len(nodeLabels)),
		Edges: make([]EdgeStyle, 0, len(edgeLabels)),
	}

	for i, label := range nodeLabels {
		styles.Nodes = append(styles.Nodes, NodeStyle{
			Label:   label,
			Color:   DefaultPalette[i%len(DefaultPalette)],
			Caption: DefaultCaptionField,
			Shape:   DefaultNodeShape,
		})
	}

	for _, label := range edgeLabels {
		styles.Edges = append(styles.Edges, EdgeStyle{
			Label:    label,
			Directed: true,
		})
	}

	return styles
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
