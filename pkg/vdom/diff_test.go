package vdom

import "testing"

func TestDiffBothNil(t *testing.T) {
	patches := Diff(nil, nil)
	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffNodeRemoved(t *testing.T) {
	prev := Div()
	prev.HID = "h1"

	patches := Diff(prev, nil)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchRemoveNode {
		t.Errorf("Op = %v, want PatchRemoveNode", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %v, want h1", patches[0].HID)
	}
}

func TestDiffIdenticalTreesProduceNoPatches(t *testing.T) {
	build := func() *VNode {
		return Div(Class("c"),
			Div(Key("row-0"), Span(Raw("a")), Span(Raw("b"))),
			Div(Key("row-1"), Span(Raw("c"))),
		)
	}
	prev := build()
	AssignAllHIDs(prev, NewHIDGenerator())
	next := build()

	if patches := Diff(prev, next); len(patches) != 0 {
		t.Fatalf("Expected 0 patches, got %d: %+v", len(patches), patches)
	}
	if next.Children[1].HID != prev.Children[1].HID {
		t.Errorf("HID not carried over: %q vs %q", next.Children[1].HID, prev.Children[1].HID)
	}
}

func TestDiffRawCellChange(t *testing.T) {
	prev := Div(Div(Key("row-0"), Span(Raw("a"))))
	AssignAllHIDs(prev, NewHIDGenerator())
	next := Div(Div(Key("row-0"), Span(Raw("z"))))

	patches := Diff(prev, next)
	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetHTML {
		t.Errorf("Op = %v, want SetHTML", p.Op)
	}
	if p.Value != "z" {
		t.Errorf("Value = %q, want %q", p.Value, "z")
	}
	span := prev.Children[0].Children[0]
	if p.HID != span.HID {
		t.Errorf("HID = %q, want %q (cell span)", p.HID, span.HID)
	}
}

func TestDiffCellChildChangesKind(t *testing.T) {
	tests := []struct {
		name     string
		prev     *VNode
		next     *VNode
		wantTags int
	}{
		{"markup to element", Raw("a"), Svg(Path()), 1},
		{"element to markup", Svg(Path()), Raw(""), 0},
		{"element to text", Svg(Path()), Text("a"), 0},
		{"markup to text", Raw("<b>a</b>"), Text("a"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Div(Div(Key("row-0"), Span(Class("cell"), tt.prev)))
			AssignAllHIDs(prev, NewHIDGenerator())
			next := Div(Div(Key("row-0"), Span(Class("cell"), tt.next)))

			patches := Diff(prev, next)
			if len(patches) != 1 {
				t.Fatalf("Expected 1 patch, got %d: %+v", len(patches), patches)
			}
			p := patches[0]
			span := prev.Children[0].Children[0]
			if p.Op != PatchSetHTML || p.HID != span.HID {
				t.Errorf("patch = %v on %q, want SetHTML on cell %q", p.Op, p.HID, span.HID)
			}
			if p.Node == nil || p.Node.Kind != KindFragment || len(p.Node.Children) != 1 || p.Node.Children[0] != tt.next {
				t.Fatalf("Node = %+v, want fragment of the new child", p.Node)
			}
			if got := next.Children[0].Children[0].HID; got != span.HID {
				t.Errorf("cell HID = %q, want %q kept", got, span.HID)
			}
			if got := len(FindAll(p.Node, "svg")); got != tt.wantTags {
				t.Errorf("svg count = %d, want %d", got, tt.wantTags)
			}
		})
	}
}

func TestDiffElementReplacedByElementKeepsReplaceNode(t *testing.T) {
	prev := Div(Span(Svg()))
	AssignAllHIDs(prev, NewHIDGenerator())
	svg := prev.Children[0].Children[0]
	next := Div(Span(Path()))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchReplaceNode || patches[0].HID != svg.HID {
		t.Fatalf("patches = %+v, want ReplaceNode on %q", patches, svg.HID)
	}
}

func TestDiffKeyedRowsAppendAndRemove(t *testing.T) {
	prev := Div(Div(Key("row-0")), Div(Key("row-1")))
	AssignAllHIDs(prev, NewHIDGenerator())
	next := Div(Div(Key("row-0")), Div(Key("row-2")))

	patches := Diff(prev, next)

	var inserts, removes int
	for _, p := range patches {
		switch p.Op {
		case PatchInsertNode:
			inserts++
			if p.Index != 1 {
				t.Errorf("insert index = %d, want 1", p.Index)
			}
		case PatchRemoveNode:
			removes++
			if p.HID != prev.Children[1].HID {
				t.Errorf("removed %q, want %q", p.HID, prev.Children[1].HID)
			}
		}
	}
	if inserts != 1 || removes != 1 {
		t.Errorf("inserts=%d removes=%d, want 1/1", inserts, removes)
	}
}

func TestDiffRootKeyChangeReplaces(t *testing.T) {
	prev := Div(Key("default"))
	prev.HID = "h1"
	next := Div(Key("table"))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
		t.Fatalf("patches = %+v, want one ReplaceNode", patches)
	}
}

func TestDiffStyleChange(t *testing.T) {
	prev := Span(Styles(Style{"fill": "red"}))
	prev.HID = "h1"
	next := Span(Styles(Style{"fill": "blue"}))

	patches := Diff(prev, next)
	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetAttr || patches[0].Key != "style" || patches[0].Value != "fill: blue;" {
		t.Errorf("patch = %+v", patches[0])
	}
}

func TestAssignMissingHIDs(t *testing.T) {
	gen := NewHIDGenerator()
	tree := Div(Span(), Span())
	tree.Children[0].HID = "keep"
	AssignMissingHIDs(tree, gen)

	if tree.Children[0].HID != "keep" {
		t.Errorf("existing HID overwritten: %q", tree.Children[0].HID)
	}
	if tree.HID == "" || tree.Children[1].HID == "" {
		t.Errorf("missing HIDs not assigned")
	}
	if FindByHID(tree, tree.Children[1].HID) != tree.Children[1] {
		t.Errorf("FindByHID did not return the node")
	}
	ClearHIDs(tree)
	if tree.HID != "" {
		t.Errorf("ClearHIDs left %q", tree.HID)
	}
}

func TestPatchOpString(t *testing.T) {
	if PatchReplaceNode.String() != "ReplaceNode" {
		t.Errorf("String() = %q", PatchReplaceNode.String())
	}
	if PatchOp(0xFF).String() != "Unknown" {
		t.Errorf("String() = %q", PatchOp(0xFF).String())
	}
}
