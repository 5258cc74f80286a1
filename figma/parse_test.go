package figma

import (
	"testing"

	"go.uber.org/zap"

	"uic/design"
)

const sampleFile = `{
  "name": "Landing",
  "schemaVersion": 0,
  "document": {
    "id": "0:0",
    "name": "Document",
    "type": "DOCUMENT",
    "children": [
      {
        "id": "0:1",
        "name": "Page 1",
        "type": "CANVAS",
        "children": [
          {
            "id": "1:2",
            "name": "Hero",
            "type": "FRAME",
            "absoluteBoundingBox": {"x": 0, "y": 0, "width": 1440, "height": 900},
            "fills": [
              {"type": "SOLID", "color": {"r": 0, "g": 0, "b": 0, "a": 1}},
              {"type": "SOLID", "color": {"r": 1, "g": 1, "b": 1, "a": 0.5}}
            ],
            "layoutMode": "VERTICAL",
            "primaryAxisAlignItems": "CENTER",
            "counterAxisAlignItems": "MAX",
            "itemSpacing": 16,
            "paddingTop": 24, "paddingRight": 24, "paddingBottom": 24, "paddingLeft": 24,
            "children": [
              {
                "id": "1:3",
                "name": "Title",
                "type": "TEXT",
                "characters": "Welcome",
                "absoluteBoundingBox": {"x": 24, "y": 24, "width": 320, "height": 48},
                "style": {"fontFamily": "Inter", "fontSize": 32, "fontWeight": 700,
                          "lineHeightPx": 40, "textAlignHorizontal": "CENTER"}
              },
              {
                "id": "1:4",
                "name": "Sticker",
                "type": "WASHI_TAPE",
                "absoluteBoundingBox": {"x": 0, "y": 0, "width": 10, "height": 10}
              },
              {
                "id": "1:5",
                "name": "Photo",
                "type": "RECTANGLE",
                "fills": [{"type": "IMAGE", "imageRef": "img-42"}],
                "absoluteBoundingBox": {"x": 10, "y": 80, "width": 200, "height": 120}
              },
              {
                "id": "1:6",
                "name": "Hidden",
                "type": "RECTANGLE",
                "visible": false
              }
            ]
          }
        ]
      }
    ]
  }
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleFile), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "Landing" {
		t.Errorf("unexpected document name %q", doc.Name)
	}
	if doc.RootID != "0:0" {
		t.Errorf("unexpected root id %q", doc.RootID)
	}

	hero := doc.NodeByID("1:2")
	if hero == nil {
		t.Fatal("hero frame not adapted")
	}
	if hero.Kind != design.KindFrame {
		t.Errorf("expected frame kind, got %v", hero.Kind)
	}
	if hero.ParentID != "0:1" {
		t.Errorf("unexpected parent id %q", hero.ParentID)
	}
	if hero.Geometry.Width != 1440 || hero.Geometry.Height != 900 {
		t.Errorf("unexpected geometry %+v", hero.Geometry)
	}
}

func TestParseColorsBecomeHex(t *testing.T) {
	doc, err := Parse([]byte(sampleFile), nil)
	if err != nil {
		t.Fatal(err)
	}
	hero := doc.NodeByID("1:2")
	if len(hero.Paints) != 2 {
		t.Fatalf("expected 2 paint layers, got %d", len(hero.Paints))
	}
	if hero.Paints[0].Hex != "#000000" {
		t.Errorf("expected #000000, got %s", hero.Paints[0].Hex)
	}
	top := hero.TopPaint()
	if top.Hex != "#ffffff" || top.Alpha != 0.5 {
		t.Errorf("expected half-transparent white on top, got %+v", top)
	}
}

func TestParseLayout(t *testing.T) {
	doc, err := Parse([]byte(sampleFile), nil)
	if err != nil {
		t.Fatal(err)
	}
	l := doc.NodeByID("1:2").Layout
	if l == nil || l.Mode != design.LayoutFlow {
		t.Fatal("expected flow layout on hero frame")
	}
	if l.Direction != design.DirectionColumn {
		t.Errorf("expected column direction, got %v", l.Direction)
	}
	if l.Justify != design.JustifyCenter || l.Align != design.AlignEnd {
		t.Errorf("unexpected alignment: justify=%v align=%v", l.Justify, l.Align)
	}
	if !l.Gap.Uniform() || l.Gap.Row != 16 {
		t.Errorf("expected uniform 16px gap, got %+v", l.Gap)
	}
	if !l.Padding.Uniform() || l.Padding.Top != 24 {
		t.Errorf("expected uniform 24px padding, got %+v", l.Padding)
	}
}

func TestParseTextAndTypography(t *testing.T) {
	doc, err := Parse([]byte(sampleFile), nil)
	if err != nil {
		t.Fatal(err)
	}
	title := doc.NodeByID("1:3")
	if title.Kind != design.KindText {
		t.Fatalf("expected text kind, got %v", title.Kind)
	}
	if got := design.FlattenRuns(title.Runs); got != "Welcome" {
		t.Errorf("expected Welcome, got %q", got)
	}
	if title.Text.FontWeight != 700 || title.Text.Align != "center" {
		t.Errorf("unexpected typography %+v", title.Text)
	}
}

func TestParseUnknownKindBecomesGeneric(t *testing.T) {
	doc, err := Parse([]byte(sampleFile), nil)
	if err != nil {
		t.Fatal(err)
	}
	sticker := doc.NodeByID("1:4")
	if sticker == nil {
		t.Fatal("unknown-type node must still be adapted")
	}
	if sticker.Kind != design.KindGeneric {
		t.Errorf("expected generic placeholder, got %v", sticker.Kind)
	}
}

func TestParseImageFillAndHidden(t *testing.T) {
	doc, err := Parse([]byte(sampleFile), nil)
	if err != nil {
		t.Fatal(err)
	}
	photo := doc.NodeByID("1:5")
	if p := photo.TopPaint(); p == nil || p.Kind != design.PaintImage || p.Reference != "img-42" {
		t.Errorf("unexpected image paint %+v", p)
	}
	if !doc.NodeByID("1:6").Hidden {
		t.Error("invisible node must be marked hidden")
	}
}

func TestParseRejectsUnusable(t *testing.T) {
	if _, err := Parse([]byte(`{"name":"x"}`), nil); err == nil {
		t.Error("expected error for document without root node")
	}
	if _, err := Parse([]byte(`not json`), nil); err == nil {
		t.Error("expected error for undecodable input")
	}
}

func TestSniff(t *testing.T) {
	if !Sniff([]byte(sampleFile)) {
		t.Error("expected figma document to be recognized")
	}
	if Sniff([]byte(`{"type":"frame"}`)) {
		t.Error("expected non-figma document to be rejected")
	}
}
