package convert

import "sort"

// Role classifies what an emitted element represents in the UI tree.
type Role int

const (
	RoleContainer Role = iota
	RoleText
	RoleImage
	RoleVector
	RoleLeaf
)

func (r Role) String() string {
	switch r {
	case RoleText:
		return "text"
	case RoleImage:
		return "image"
	case RoleVector:
		return "vector"
	case RoleLeaf:
		return "leaf"
	default:
		return "container"
	}
}

// StyleMap is a flat semantic style set keyed by CSS property name. Iteration
// order is undefined; serialization must go through SortedKeys so that two
// compiles of the same document produce byte-identical output.
type StyleMap map[string]string

// SortedKeys returns property names in stable lexical order.
func (m StyleMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge copies properties from other into m, other wins on conflicts.
func (m StyleMap) Merge(other StyleMap) {
	for k, v := range other {
		m[k] = v
	}
}

// Element is one node of the emitted UI tree. Children are owned exclusively
// by their parent; elements are created once per compile pass and never
// mutated afterwards.
type Element struct {
	Role          Role
	NodeID        string
	Name          string
	Style         StyleMap
	LayoutClasses []string
	Text          string
	SVGPath       string // inline vector path data, vector roles only
	AssetRef      string // external asset reference, image roles only
	Children      []*Element
}

// AssetRef records an image or vector fill that must be resolved outside the
// compiler. The compiler only records the reference; downloading and
// relinking belong to downstream collaborators.
type AssetRef struct {
	Reference string `json:"assetReference"`
	NodeID    string `json:"originalLocation"`
	Kind      string `json:"kind"` // "image" or "vector"
}

// Result is the complete outcome of one compile pass.
type Result struct {
	DocumentName string
	Pages        []*Element
	Assets       []AssetRef
	Warnings     []string
}
