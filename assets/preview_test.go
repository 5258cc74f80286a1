package assets

import (
	"os"
	"path/filepath"
	"testing"

	"uic/convert"
)

func TestWritePreviews(t *testing.T) {
	pages := []*convert.Element{{
		Role: convert.RoleContainer,
		Children: []*convert.Element{
			{
				Role:    convert.RoleVector,
				NodeID:  "5:1",
				Name:    "Arrow Icon",
				SVGPath: "M0 0 H24 V24 H0 Z",
				Style:   convert.StyleMap{"width": "24px", "height": "24px"},
			},
			// No path data: placeholder asset, no preview.
			{Role: convert.RoleVector, NodeID: "5:2", Name: "Missing"},
		},
	}}

	dir := t.TempDir()
	if err := WritePreviews(pages, dir, nil); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "previews"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "arrow-icon.png" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("previews = %v, want only arrow-icon.png", names)
	}
}

func TestWritePreviewsNoVectors(t *testing.T) {
	dir := t.TempDir()
	pages := []*convert.Element{{Role: convert.RoleContainer}}
	if err := WritePreviews(pages, dir, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "previews")); !os.IsNotExist(err) {
		t.Error("preview directory must not be created when there is nothing to render")
	}
}
