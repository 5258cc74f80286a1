package design

// Document owns every node parsed from a source file. The node graph is
// addressed by id; child lists reference ids rather than nodes so that
// adapters can emit nodes in any order and dangling references degrade
// gracefully instead of failing the document.
type Document struct {
	Name   string
	RootID string // id of the synthetic document root wrapper
	Nodes  map[string]*Node
}

// NewDocument creates an empty document with the given synthetic root id.
func NewDocument(name, rootID string) *Document {
	return &Document{
		Name:   name,
		RootID: rootID,
		Nodes:  make(map[string]*Node),
	}
}

// Add registers a node. Later registrations with the same id win, matching
// the "last write wins" behavior of the source formats.
func (d *Document) Add(n *Node) {
	if n == nil || n.ID == "" {
		return
	}
	d.Nodes[n.ID] = n
}

// NodeByID resolves an id, nil when absent.
func (d *Document) NodeByID(id string) *Node {
	return d.Nodes[id]
}

// Root returns the synthetic document root wrapper, nil for an empty
// document.
func (d *Document) Root() *Node {
	return d.Nodes[d.RootID]
}

// ChildrenOf resolves the child ids of a node in document order. Dangling
// references are skipped, never reported as an error.
func (d *Document) ChildrenOf(n *Node) []*Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, id := range n.Children {
		if child := d.Nodes[id]; child != nil {
			out = append(out, child)
		}
	}
	return out
}

// DescendantCount counts resolvable descendants of a node. Traversal depth is
// capped so that malformed cyclic child references terminate instead of
// recursing forever; nodes beyond the cap are simply not counted.
func (d *Document) DescendantCount(n *Node, maxDepth int) int {
	if n == nil || maxDepth <= 0 {
		return 0
	}
	count := 0
	for _, child := range d.ChildrenOf(n) {
		count += 1 + d.DescendantCount(child, maxDepth-1)
	}
	return count
}

// Walk visits the subtree rooted at n in document order, depth-first. The
// visitor receives the node and its depth relative to n; returning false
// prunes the subtree below that node. Depth is capped the same way as in
// DescendantCount.
func (d *Document) Walk(n *Node, maxDepth int, visit func(*Node, int) bool) {
	d.walk(n, 0, maxDepth, visit)
}

func (d *Document) walk(n *Node, depth, maxDepth int, visit func(*Node, int) bool) {
	if n == nil || depth > maxDepth {
		return
	}
	if !visit(n, depth) {
		return
	}
	for _, child := range d.ChildrenOf(n) {
		d.walk(child, depth+1, maxDepth, visit)
	}
}
