package graph

import (
	"bytes"
	"encoding/json"
	"testing"
)

func setWithNodeLabels(labels ...string) *ElementSet {
	set := NewElementSet()
	for i, label := range labels {
		set.AddNode(NodeElement{ID: string(rune('a' + i)), Label: label})
	}
	return set
}

func TestDeriveStylesColorWraparound(t *testing.T) {
	set := setWithNodeLabels("Person", "Company", "Event", "Location", "Account", "Device")

	styles := DeriveStyles(set)

	// Sorted order with a 5-color palette: the 6th label wraps back to
	// the first color.
	want := []struct {
		label string
		color string
	}{
		{"Account", DefaultPalette[0]},
		{"Company", DefaultPalette[1]},
		{"Device", DefaultPalette[2]},
		{"Event", DefaultPalette[3]},
		{"Location", DefaultPalette[4]},
		{"Person", DefaultPalette[0]},
	}

	if len(styles.Nodes) != len(want) {
		t.Fatalf("got %d node styles, want %d", len(styles.Nodes), len(want))
	}
	for i, w := range want {
		if styles.Nodes[i].Label != w.label || styles.Nodes[i].Color != w.color {
			t.Errorf("style[%d] = %s/%s, want %s/%s",
				i, styles.Nodes[i].Label, styles.Nodes[i].Color, w.label, w.color)
		}
	}
}

func TestDeriveStylesDefaults(t *testing.T) {
	set := setWithNodeLabels("Person")
	set.AddEdge(EdgeElement{ID: "e0", Label: "KNOWS"})

	styles := DeriveStyles(set)

	ns := styles.Nodes[0]
	if ns.Caption != DefaultCaptionField || ns.Shape != DefaultNodeShape {
		t.Errorf("node style caption/shape = %s/%s, want %s/%s",
			ns.Caption, ns.Shape, DefaultCaptionField, DefaultNodeShape)
	}

	if len(styles.Edges) != 1 {
		t.Fatalf("got %d edge styles, want 1", len(styles.Edges))
	}
	es := styles.Edges[0]
	if !es.Directed {
		t.Error("edge style should be directed")
	}
	if es.Caption != "" {
		t.Errorf("edge caption = %q, want empty (renderer default)", es.Caption)
	}
}

func TestDeriveStylesDeterministic(t *testing.T) {
	set := setWithNodeLabels("Zeta", "Alpha", "Mu", "Kappa")
	set.AddEdge(EdgeElement{ID: "e0", Label: "OWNS"})
	set.AddEdge(EdgeElement{ID: "e1", Label: "KNOWS"})

	first, err := json.Marshal(DeriveStyles(set))
	if err != nil {
		t.Fatalf("marshal styles: %v", err)
	}
	second, err := json.Marshal(DeriveStyles(set))
	if err != nil {
		t.Fatalf("marshal styles: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("style derivation not deterministic:\n%s\n%s", first, second)
	}
}

func TestDeriveStylesOnePerDistinctLabel(t *testing.T) {
	set := setWithNodeLabels("Person", "Person", "Company")

	styles := DeriveStyles(set)
	if len(styles.Nodes) != 2 {
		t.Errorf("got %d node styles, want one per distinct label (2)", len(styles.Nodes))
	}
}
