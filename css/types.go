// Package css parses user override stylesheets into ordered rules that are
// appended after generated classes, letting users adjust emitted styling
// without editing generated files. Parsing is intentionally permissive:
// anything the parser cannot use becomes a warning, never a failure.
package css

// Prop is one declaration inside a rule. Order within the rule is preserved
// from the source so the cascade behaves the way the user wrote it.
type Prop struct {
	Name  string
	Value string
}

// Rule is one selector block from a user stylesheet. Grouped selectors are
// split into one Rule per selector, each carrying its own property list.
type Rule struct {
	Selector string
	Props    []Prop
}

// Stylesheet is the parse result: rules in source order plus warnings for
// everything that was skipped.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}
