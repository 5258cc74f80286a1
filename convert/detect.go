package convert

import (
	"fmt"

	"go.uber.org/zap"

	"uic/design"
	"uic/figma"
	"uic/penpot"
)

// Schema names a recognized design document format.
type Schema string

const (
	SchemaUnknown Schema = ""
	SchemaFigma   Schema = "figma"
	SchemaPenpot  Schema = "penpot"
)

// DetectSchema inspects raw document bytes and reports which adapter should
// parse them. Detection is structural, not extension-based; both formats are
// plain JSON on disk.
func DetectSchema(data []byte) Schema {
	switch {
	case figma.Sniff(data):
		return SchemaFigma
	case penpot.Sniff(data):
		return SchemaPenpot
	default:
		return SchemaUnknown
	}
}

// ParseDocument detects the schema and runs the matching adapter. An
// unrecognized payload is the one unrecoverable input error of the pipeline.
func ParseDocument(data []byte, log *zap.Logger) (*design.Document, error) {
	switch DetectSchema(data) {
	case SchemaFigma:
		return figma.Parse(data, log)
	case SchemaPenpot:
		return penpot.Parse(data, log)
	default:
		return nil, fmt.Errorf("document does not match any supported design schema")
	}
}
