package convert

import (
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"uic/design"
)

// Root selection: pick the node(s) that represent the actual artboard to
// render, discarding housekeeping wrappers. This is a best-effort heuristic
// over conventions observed in real documents, not a correctness guarantee -
// when nothing matches, every direct child of the document root is emitted.

const (
	canvasWidthMin = 1400
	canvasWidthMax = 1500
	hintTolerance  = 50

	// How many nested wrapper levels we are willing to unwrap before taking
	// whatever we found as candidates.
	maxWrapperDepth = 3
)

// structuralRootName marks frames that exist only to hold page content.
const structuralRootName = "Root Frame"

// SelectRoots returns the ordered list of top-level nodes to emit as page
// content. fallback reports that no candidate survived the heuristic and the
// document root's direct children were used instead.
func SelectRoots(doc *design.Document, opts Options, log *zap.Logger) (roots []*design.Node, fallback bool) {
	root := doc.Root()
	if root == nil {
		return nil, true
	}

	candidates := unwrap(doc, doc.ChildrenOf(root), 0)

	var frames []*design.Node
	for _, n := range candidates {
		if n.Kind == design.KindFrame && !n.Hidden {
			frames = append(frames, n)
		}
	}
	if len(frames) == 0 {
		log.Debug("no candidate frames, emitting all document root children")
		return doc.ChildrenOf(root), true
	}

	// First pass: frames whose width sits in the canvas preset band.
	lo, hi := float64(canvasWidthMin), float64(canvasWidthMax)
	if opts.CanvasWidthHint > 0 {
		lo, hi = opts.CanvasWidthHint-hintTolerance, opts.CanvasWidthHint+hintTolerance
	}
	var matched []*design.Node
	for _, n := range frames {
		if n.Geometry.HasSize && n.Geometry.Width >= lo && n.Geometry.Width <= hi {
			matched = append(matched, n)
		}
	}
	if len(matched) > 0 {
		sortCanvases(matched)
		return matched, false
	}

	// Second pass: descendant count as a proxy for "main content", ties
	// broken by larger bounding-box area, then natural name order so that
	// repeated compiles stay deterministic.
	best := frames[0]
	bestCount := doc.DescendantCount(best, opts.MaxDepth)
	for _, n := range frames[1:] {
		count := doc.DescendantCount(n, opts.MaxDepth)
		switch {
		case count > bestCount:
			best, bestCount = n, count
		case count == bestCount && area(n) > area(best):
			best = n
		case count == bestCount && area(n) == area(best) && natural.Less(n.Name, best.Name):
			best = n
		}
	}
	log.Debug("selected root frame by descendant count",
		zap.String("id", best.ID), zap.String("name", best.Name), zap.Int("descendants", bestCount))
	return []*design.Node{best}, false
}

// unwrap descends through housekeeping wrapper frames: the synthetic
// structural root wrapper and sizeless page containers whose only job is to
// group real frames.
func unwrap(doc *design.Document, nodes []*design.Node, depth int) []*design.Node {
	if depth >= maxWrapperDepth {
		return nodes
	}
	var out []*design.Node
	for _, n := range nodes {
		if isWrapper(doc, n) {
			out = append(out, unwrap(doc, doc.ChildrenOf(n), depth+1)...)
			continue
		}
		out = append(out, n)
	}
	return out
}

func isWrapper(doc *design.Document, n *design.Node) bool {
	if n.Kind != design.KindFrame || len(n.Children) == 0 {
		return false
	}
	// The structural name is only trusted directly under the synthetic root;
	// a sizeless frame is a grouping wrapper wherever it sits.
	if n.Name == structuralRootName && n.ParentID == doc.RootID {
		return true
	}
	return !n.Geometry.HasSize
}

func area(n *design.Node) float64 {
	return n.Geometry.Width * n.Geometry.Height
}

// sortCanvases orders width-band matches by descending area and then by
// natural name order.
func sortCanvases(nodes []*design.Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && canvasLess(nodes[j], nodes[j-1]); j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}

func canvasLess(a, b *design.Node) bool {
	if area(a) != area(b) {
		return area(a) > area(b)
	}
	return natural.Less(a.Name, b.Name)
}
