package penpot

import (
	"testing"

	"uic/design"
)

const sampleExport = `{
  "name": "Checkout",
  "pages": [
    {
      "id": "page-1",
      "name": "Main",
      "objects": {
        "00000000-0000-0000-0000-000000000000": {
          "type": "frame",
          "name": "Root Frame",
          "shapes": ["f1", "f2"]
        },
        "f1": {
          "type": "frame",
          "name": "Desktop",
          "parent-id": "00000000-0000-0000-0000-000000000000",
          "x": 0, "y": 0, "width": 1440, "height": 1024,
          "fills": [{"fill-color": "#FFFFFF"}],
          "layout": "flex",
          "layout-flex-dir": "column",
          "layout-gap": {"row-gap": 32, "column-gap": 32},
          "layout-padding": {"p1": 40, "p2": 20, "p3": 40, "p4": 20},
          "layout-justify-content": "space-between",
          "layout-align-items": "stretch",
          "shapes": ["t1", "r1"]
        },
        "f2": {
          "type": "frame",
          "name": "Scratch",
          "parent-id": "00000000-0000-0000-0000-000000000000",
          "x": 2000, "y": 0, "width": 200, "height": 80
        },
        "t1": {
          "type": "text",
          "name": "Heading",
          "parent-id": "f1",
          "x": 20, "y": 40, "width": 400, "height": 60,
          "font-family": "Work Sans", "font-size": 24, "font-weight": 600,
          "content": {"children": [
            {"text": "Pay "},
            {"children": [{"text": "now"}]}
          ]}
        },
        "r1": {
          "type": "rect",
          "name": "Card",
          "parent-id": "f1",
          "x": 20, "y": 120, "width": 360, "height": 200,
          "fills": [{"fill-color": "#0f172a", "fill-opacity": 0.9}],
          "strokes": [{"stroke-color": "#E2E8F0", "stroke-width": 1}],
          "r1": 8, "r2": 8, "r3": 8, "r4": 8
        }
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleExport), nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "Checkout" {
		t.Errorf("unexpected name %q", doc.Name)
	}
	if doc.RootID != ZeroID {
		t.Errorf("unexpected root id %q", doc.RootID)
	}
	root := doc.Root()
	if root == nil || root.Name != "Root Frame" {
		t.Fatal("root wrapper not adapted")
	}
	if children := doc.ChildrenOf(root); len(children) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(children))
	}
}

func TestParseHexPassthrough(t *testing.T) {
	doc, err := Parse([]byte(sampleExport), nil)
	if err != nil {
		t.Fatal(err)
	}
	card := doc.NodeByID("r1")
	p := card.TopPaint()
	if p == nil || p.Hex != "#0f172a" || p.Alpha != 0.9 {
		t.Errorf("unexpected paint %+v", p)
	}
	s := card.FirstStroke()
	if s == nil || s.Hex != "#e2e8f0" || s.Width != 1 {
		t.Errorf("unexpected stroke %+v", s)
	}
	if !card.Radii.Uniform() || card.Radii.TopLeft != 8 {
		t.Errorf("unexpected radii %+v", card.Radii)
	}
}

func TestParseFlexLayout(t *testing.T) {
	doc, err := Parse([]byte(sampleExport), nil)
	if err != nil {
		t.Fatal(err)
	}
	l := doc.NodeByID("f1").Layout
	if l == nil || l.Mode != design.LayoutFlow {
		t.Fatal("expected flow layout")
	}
	if l.Direction != design.DirectionColumn {
		t.Errorf("expected column, got %v", l.Direction)
	}
	if l.Justify != design.JustifySpaceBetween || l.Align != design.AlignStretch {
		t.Errorf("unexpected alignment justify=%v align=%v", l.Justify, l.Align)
	}
	if l.Padding.Uniform() {
		t.Error("padding should not be uniform")
	}
	if l.Padding.Top != 40 || l.Padding.Right != 20 {
		t.Errorf("unexpected padding %+v", l.Padding)
	}
}

func TestParseNestedTextContent(t *testing.T) {
	doc, err := Parse([]byte(sampleExport), nil)
	if err != nil {
		t.Fatal(err)
	}
	heading := doc.NodeByID("t1")
	if got := design.FlattenRuns(heading.Runs); got != "Pay now" {
		t.Errorf("expected %q, got %q", "Pay now", got)
	}
	if heading.Text.FontFamily != "Work Sans" || heading.Text.FontWeight != 600 {
		t.Errorf("unexpected typography %+v", heading.Text)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(`{"name":"empty","pages":[]}`), nil); err == nil {
		t.Error("expected error for document without pages")
	}
	if _, err := ParsePage([]byte(sampleExport), 5, nil); err == nil {
		t.Error("expected error for out-of-range page")
	}
}

func TestSniff(t *testing.T) {
	if !Sniff([]byte(sampleExport)) {
		t.Error("expected penpot export to be recognized")
	}
	if Sniff([]byte(`{"document":{"type":"DOCUMENT"}}`)) {
		t.Error("expected non-penpot document to be rejected")
	}
}
