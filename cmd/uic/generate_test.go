package main

import (
	"os"
	"path/filepath"
	"testing"

	"uic/config"
)

func TestCheckOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tree.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		format    config.OutputFmt
		overwrite bool
		wantErr   bool
	}{
		{"json mode sees existing tree.json", config.OutputFmtJson, false, true},
		{"json mode with overwrite", config.OutputFmtJson, true, false},
		{"html mode ignores tree.json", config.OutputFmtHtml, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOverwrite(dir, tt.format, tt.overwrite)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkOverwrite() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	t.Run("html mode sees existing index.html", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html/>"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := checkOverwrite(dir, config.OutputFmtHtml, false); err == nil {
			t.Error("expected refusal without --overwrite")
		}
	})
}
