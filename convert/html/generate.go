// Package html renders a compiled element tree into static markup: an
// index.html built with etree, a companion stylesheet and the external asset
// manifest. A JSON mode serializes the element tree instead, for downstream
// tooling that wants the structure rather than a rendering.
package html

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"uic/assets"
	"uic/convert"
	"uic/css"
)

// Options controls output generation, not compilation.
type Options struct {
	TreeJSON  bool       // serialize the element tree instead of rendering markup
	Overrides []css.Rule // user stylesheet rules appended after generated classes
}

// Generator writes compile results to disk. Safe for concurrent use; each
// Generate call owns its output directory.
type Generator struct {
	opts Options
	log  *zap.Logger
}

func NewGenerator(opts Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{opts: opts, log: log.Named("generate")}
}

// Generate writes the rendered document under outputDir, creating it when
// missing. Markup mode produces index.html, styles.css and assets.json; JSON
// mode produces tree.json and assets.json.
func (g *Generator) Generate(ctx context.Context, result *convert.Result, outputDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	for _, w := range result.Warnings {
		g.log.Warn(w)
	}

	if g.opts.TreeJSON {
		if err := g.writeTreeJSON(result, outputDir); err != nil {
			return err
		}
	} else {
		if err := g.writeMarkup(result, outputDir); err != nil {
			return err
		}
	}

	if err := assets.WriteManifest(filepath.Join(outputDir, "assets.json"), result.Assets); err != nil {
		return fmt.Errorf("unable to write asset manifest: %w", err)
	}

	g.log.Info("output written",
		zap.String("dir", outputDir),
		zap.Int("pages", len(result.Pages)),
		zap.Int("assets", len(result.Assets)))
	return nil
}

func (g *Generator) writeMarkup(result *convert.Result, outputDir string) error {
	classes := newClassTable()
	doc := buildMarkup(result, classes)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("unable to serialize markup: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write index.html: %w", err)
	}

	sheet := renderStylesheet(classes, g.opts.Overrides)
	if err := os.WriteFile(filepath.Join(outputDir, stylesheetName), []byte(sheet), 0o644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return nil
}

// jsonElement is the serialization view of an element: role as a token,
// empty fields omitted.
type jsonElement struct {
	Role     string            `json:"role"`
	NodeID   string            `json:"nodeId"`
	Name     string            `json:"name,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Layout   []string          `json:"layoutClasses,omitempty"`
	Text     string            `json:"text,omitempty"`
	SVGPath  string            `json:"svgPath,omitempty"`
	AssetRef string            `json:"assetRef,omitempty"`
	Children []jsonElement     `json:"children,omitempty"`
}

func toJSONElement(el *convert.Element) jsonElement {
	out := jsonElement{
		Role:     el.Role.String(),
		NodeID:   el.NodeID,
		Name:     el.Name,
		Style:    el.Style,
		Layout:   el.LayoutClasses,
		Text:     el.Text,
		SVGPath:  el.SVGPath,
		AssetRef: el.AssetRef,
	}
	for _, child := range el.Children {
		out.Children = append(out.Children, toJSONElement(child))
	}
	return out
}

func (g *Generator) writeTreeJSON(result *convert.Result, outputDir string) error {
	tree := struct {
		Document string        `json:"document"`
		Pages    []jsonElement `json:"pages"`
		Warnings []string      `json:"warnings,omitempty"`
	}{Document: result.DocumentName, Warnings: result.Warnings}
	for _, page := range result.Pages {
		tree.Pages = append(tree.Pages, toJSONElement(page))
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize element tree: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(outputDir, "tree.json"), data, 0o644); err != nil {
		return fmt.Errorf("unable to write tree.json: %w", err)
	}
	return nil
}

// assetHref is the relative location the manifest consumer is expected to
// materialize assets under.
func assetHref(ref string) string {
	return "assets/" + ref
}
