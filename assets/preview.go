package assets

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"uic/convert"
	"uic/utils/images"
)

// previewSize bounds rendered previews; vectors keep their aspect ratio
// inside this box.
const previewSize = 512

// svgDocument wraps bare path data into a standalone SVG so the rasterizer
// can consume it.
func svgDocument(el *convert.Element) []byte {
	w, h := el.Style["width"], el.Style["height"]
	if w == "" || h == "" {
		w, h = "100px", "100px"
	}
	return fmt.Appendf(nil,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s"><path d="%s"/></svg>`,
		w, h, el.SVGPath)
}

// WritePreviews renders a PNG preview for every inline vector element in the
// tree. Rendering problems skip the one element with a log line; previews
// are a convenience, not part of the compile contract.
func WritePreviews(pages []*convert.Element, outputDir string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	dir := filepath.Join(outputDir, "previews")

	var vectors []*convert.Element
	for _, page := range pages {
		collectVectors(page, &vectors)
	}
	if len(vectors) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create preview directory: %w", err)
	}

	for _, el := range vectors {
		img, err := images.RasterizeSVG(svgDocument(el), previewSize, previewSize)
		if err != nil {
			log.Debug("skipping preview, vector did not rasterize",
				zap.String("id", el.NodeID), zap.Error(err))
			continue
		}
		name := slug.Make(el.Name)
		if name == "" {
			name = el.NodeID
		}
		path := filepath.Join(dir, name+".png")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("unable to create preview file: %w", err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("unable to encode preview: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func collectVectors(el *convert.Element, out *[]*convert.Element) {
	if el.Role == convert.RoleVector && el.SVGPath != "" {
		*out = append(*out, el)
	}
	for _, child := range el.Children {
		collectVectors(child, out)
	}
}
