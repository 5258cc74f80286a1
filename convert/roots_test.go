package convert

import (
	"testing"

	"go.uber.org/zap"

	"uic/design"
)

// buildDoc wires a document from a flat node list, deriving child lists from
// ParentID so tests do not have to keep both sides in sync.
func buildDoc(name, rootID string, nodes ...*design.Node) *design.Document {
	doc := design.NewDocument(name, rootID)
	for _, n := range nodes {
		if n.Opacity == 0 {
			n.Opacity = 1
		}
		doc.Add(n)
	}
	for _, n := range nodes {
		if n.ParentID == "" {
			continue
		}
		if p := doc.NodeByID(n.ParentID); p != nil {
			p.Children = append(p.Children, n.ID)
		}
	}
	return doc
}

func frame(id, parent, name string, w, h float64) *design.Node {
	return &design.Node{
		ID:       id,
		Kind:     design.KindFrame,
		Name:     name,
		ParentID: parent,
		Geometry: design.Geometry{Width: w, Height: h, HasSize: true},
	}
}

func TestSelectRootsUnwrapsStructuralWrapper(t *testing.T) {
	root := &design.Node{ID: "root", Kind: design.KindFrame, Name: "doc"}
	wrapper := frame("wrap", "root", "Root Frame", 1920, 1080)
	desktop := frame("desktop", "wrap", "Desktop", 1440, 900)
	tiny := frame("tiny", "wrap", "Badge", 200, 80)
	doc := buildDoc("test", "root", root, wrapper, desktop, tiny)

	roots, fallback := SelectRoots(doc, DefaultOptions(), zap.NewNop())
	if fallback {
		t.Fatal("fallback reported with a valid candidate present")
	}
	if len(roots) != 1 || roots[0].ID != "desktop" {
		t.Fatalf("expected the 1440px frame, got %+v", ids(roots))
	}
}

func TestSelectRootsDescendantCountTieBreak(t *testing.T) {
	// Two frames outside the preset width band: the one with more
	// descendants wins regardless of name order.
	root := &design.Node{ID: "root", Kind: design.KindFrame, Name: "doc"}
	a := frame("a", "root", "Aaa", 800, 600)
	b := frame("b", "root", "Zzz", 800, 600)
	c1 := frame("c1", "b", "child", 100, 100)
	c2 := frame("c2", "b", "child", 100, 100)
	doc := buildDoc("test", "root", root, a, b, c1, c2)

	roots, fallback := SelectRoots(doc, DefaultOptions(), zap.NewNop())
	if fallback {
		t.Fatal("unexpected fallback")
	}
	if len(roots) != 1 || roots[0].ID != "b" {
		t.Fatalf("expected frame with more descendants, got %+v", ids(roots))
	}
}

func TestSelectRootsWidthHintOverridesBand(t *testing.T) {
	root := &design.Node{ID: "root", Kind: design.KindFrame, Name: "doc"}
	wide := frame("wide", "root", "Desktop", 1440, 900)
	mobile := frame("mobile", "root", "Mobile", 390, 844)
	doc := buildDoc("test", "root", root, wide, mobile)

	opts := DefaultOptions()
	opts.CanvasWidthHint = 390
	roots, _ := SelectRoots(doc, opts, zap.NewNop())
	if len(roots) != 1 || roots[0].ID != "mobile" {
		t.Fatalf("hint should select the mobile frame, got %+v", ids(roots))
	}
}

func TestSelectRootsMultipleBandMatchesSorted(t *testing.T) {
	root := &design.Node{ID: "root", Kind: design.KindFrame, Name: "doc"}
	p2 := frame("p2", "root", "Page 2", 1440, 900)
	p10 := frame("p10", "root", "Page 10", 1440, 900)
	big := frame("big", "root", "Page 1", 1440, 1600)
	doc := buildDoc("test", "root", root, p2, p10, big)

	roots, _ := SelectRoots(doc, DefaultOptions(), zap.NewNop())
	got := ids(roots)
	// Larger area first, then natural name order (2 before 10).
	want := []string{"big", "p2", "p10"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSelectRootsFallbackWhenNoFrames(t *testing.T) {
	root := &design.Node{ID: "root", Kind: design.KindFrame, Name: "doc"}
	text := &design.Node{ID: "t1", Kind: design.KindText, Name: "hello", ParentID: "root"}
	doc := buildDoc("test", "root", root, text)

	roots, fallback := SelectRoots(doc, DefaultOptions(), zap.NewNop())
	if !fallback {
		t.Fatal("expected fallback with no frame candidates")
	}
	if len(roots) != 1 || roots[0].ID != "t1" {
		t.Fatalf("fallback should return root children, got %+v", ids(roots))
	}
}

func TestSelectRootsSizelessWrapperUnwrapped(t *testing.T) {
	// Figma canvases carry no bounding box; they must be descended through.
	root := &design.Node{ID: "root", Kind: design.KindFrame, Name: "doc"}
	canvas := &design.Node{ID: "canvas", Kind: design.KindFrame, Name: "Page 1", ParentID: "root"}
	hero := frame("hero", "canvas", "Hero", 1440, 900)
	doc := buildDoc("test", "root", root, canvas, hero)

	roots, fallback := SelectRoots(doc, DefaultOptions(), zap.NewNop())
	if fallback {
		t.Fatal("unexpected fallback")
	}
	if len(roots) != 1 || roots[0].ID != "hero" {
		t.Fatalf("expected the frame inside the canvas, got %+v", ids(roots))
	}
}

func ids(nodes []*design.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
