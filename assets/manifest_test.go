package assets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"uic/convert"
)

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	refs := []convert.AssetRef{
		{Reference: "img-42", NodeID: "1:2", Kind: "image"},
		{Reference: "9:9", NodeID: "9:9", Kind: "vector"},
	}
	if err := WriteManifest(path, refs); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"assetReference": "img-42"`) {
		t.Errorf("manifest missing reference field:\n%s", data)
	}
	if !strings.Contains(string(data), `"originalLocation": "1:2"`) {
		t.Errorf("manifest missing location field:\n%s", data)
	}

	var back []convert.AssetRef
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[0] != refs[0] {
		t.Errorf("round trip = %+v", back)
	}
}

func TestWriteManifestEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	if err := WriteManifest(path, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty manifest = %q, want empty JSON array", data)
	}
}

func TestExtensionFor(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	if got := ExtensionFor(png); got != ".png" {
		t.Errorf("png extension = %q", got)
	}
	if got := ExtensionFor([]byte("plain text")); got != ".bin" {
		t.Errorf("unknown extension = %q, want .bin", got)
	}
	if got := ExtensionFor(nil); got != ".bin" {
		t.Errorf("nil extension = %q, want .bin", got)
	}
}
