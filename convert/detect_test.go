package convert

import (
	"testing"

	"go.uber.org/zap"
)

const figmaSnippet = `{
  "name": "f",
  "document": {
    "id": "0:0", "name": "Document", "type": "DOCUMENT",
    "children": [
      {"id": "0:1", "name": "Page 1", "type": "CANVAS", "children": [
        {"id": "1:2", "name": "Hero", "type": "FRAME",
         "absoluteBoundingBox": {"x": 0, "y": 0, "width": 1440, "height": 900}}
      ]}
    ]
  }
}`

const penpotSnippet = `{
  "name": "p",
  "pages": [
    {"id": "p1", "name": "Page 1", "objects": {
      "00000000-0000-0000-0000-000000000000": {
        "id": "00000000-0000-0000-0000-000000000000",
        "name": "Root Frame", "type": "frame",
        "shapes": ["11111111-0000-0000-0000-000000000001"]
      },
      "11111111-0000-0000-0000-000000000001": {
        "id": "11111111-0000-0000-0000-000000000001",
        "name": "Desktop", "type": "frame",
        "parent-id": "00000000-0000-0000-0000-000000000000",
        "x": 0, "y": 0, "width": 1440, "height": 1024
      }
    }}
  ]
}`

func TestDetectSchema(t *testing.T) {
	cases := []struct {
		name string
		data string
		want Schema
	}{
		{"figma export", figmaSnippet, SchemaFigma},
		{"penpot export", penpotSnippet, SchemaPenpot},
		{"arbitrary json", `{"hello": "world"}`, SchemaUnknown},
		{"empty", ``, SchemaUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DetectSchema([]byte(c.data)); got != c.want {
				t.Errorf("DetectSchema = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseDocumentRoutesToAdapter(t *testing.T) {
	log := zap.NewNop()

	doc, err := ParseDocument([]byte(figmaSnippet), log)
	if err != nil {
		t.Fatalf("figma: %v", err)
	}
	if doc.Name != "f" {
		t.Errorf("figma document name = %q", doc.Name)
	}

	doc, err = ParseDocument([]byte(penpotSnippet), log)
	if err != nil {
		t.Fatalf("penpot: %v", err)
	}
	if doc.Name != "p" {
		t.Errorf("penpot document name = %q", doc.Name)
	}

	if _, err := ParseDocument([]byte(`{"x":1}`), log); err == nil {
		t.Error("unrecognized payload must fail")
	}
}
