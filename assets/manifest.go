// Package assets records and post-processes external asset references
// gathered during compilation. The pipeline never downloads anything; it
// writes a manifest naming what the document referenced and where, and can
// derive extensions or previews from bytes the caller already has.
package assets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/h2non/filetype"

	"uic/convert"
)

// WriteManifest serializes asset references to a JSON file. An empty
// reference list still writes a manifest so consumers can distinguish "no
// assets" from "generation failed".
func WriteManifest(path string, refs []convert.AssetRef) error {
	if refs == nil {
		refs = []convert.AssetRef{}
	}
	data, err := json.MarshalIndent(refs, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize asset manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write asset manifest: %w", err)
	}
	return nil
}

// ExtensionFor sniffs asset bytes and returns a file extension with leading
// dot. Unrecognized content gets ".bin"; asset references carry no reliable
// type information of their own.
func ExtensionFor(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ".bin"
	}
	return "." + kind.Extension
}
