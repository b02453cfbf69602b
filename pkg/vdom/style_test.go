package vdom

import "testing"

func TestStyleString(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"empty", Style{}, ""},
		{"single", Style{"fill": "red"}, "fill: red;"},
		{"sorted", Style{"width": "20px", "height": "20px"}, "height: 20px; width: 20px;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	s := ParseStyle("display: inline-block; margin-right:5px;;bogus")
	if len(s) != 2 {
		t.Fatalf("len = %d, want 2 (%v)", len(s), s)
	}
	if s["display"] != "inline-block" || s["margin-right"] != "5px" {
		t.Errorf("parsed = %v", s)
	}
}

func TestMergeStyleOverlay(t *testing.T) {
	node := Span(Styles(Style{"display": "inline-block", "margin-right": "5px"}))
	MergeStyle(node, Style{"color": "red", "margin-right": "2px"})

	got := GetStyle(node)
	if got["display"] != "inline-block" {
		t.Errorf("display lost: %v", got)
	}
	if got["margin-right"] != "2px" {
		t.Errorf("margin-right = %q, want 2px", got["margin-right"])
	}
	if got["color"] != "red" {
		t.Errorf("color = %q, want red", got["color"])
	}

	MergeStyle(node, Style{"color": ""})
	if _, ok := GetStyle(node)["color"]; ok {
		t.Errorf("empty overlay value should remove the declaration")
	}
}

func TestStyleAttrAccumulates(t *testing.T) {
	node := Div(StyleAttr("margin: 3px 0px"), Styles(Style{"color": "blue"}))
	got := GetStyle(node)
	if got["margin"] != "3px 0px" || got["color"] != "blue" {
		t.Errorf("style = %v", got)
	}
}

func TestAddClass(t *testing.T) {
	node := Td()
	AddClass(node, "muze-tooltip-table-cell")
	AddClass(node, "highlight muze-tooltip-table-cell", "")

	if got := node.Props["class"]; got != "muze-tooltip-table-cell highlight" {
		t.Errorf("class = %v", got)
	}
	if !HasClass(node, "highlight") {
		t.Errorf("HasClass(highlight) = false")
	}
	if HasClass(node, "missing") {
		t.Errorf("HasClass(missing) = true")
	}
}
