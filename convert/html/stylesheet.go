package html

import (
	"strings"

	"uic/css"
)

const stylesheetName = "styles.css"

// utilityCSS covers every flow layout class token the compiler can emit.
// Keeping the block static means the stylesheet diff between two documents is
// only their generated classes.
const utilityCSS = `.flex { display: flex; }
.flex-row { flex-direction: row; }
.flex-col { flex-direction: column; }
.justify-start { justify-content: flex-start; }
.justify-end { justify-content: flex-end; }
.justify-center { justify-content: center; }
.justify-between { justify-content: space-between; }
.justify-around { justify-content: space-around; }
.justify-evenly { justify-content: space-evenly; }
.items-start { align-items: flex-start; }
.items-end { align-items: flex-end; }
.items-center { align-items: center; }
.items-stretch { align-items: stretch; }
.vector-placeholder { background: repeating-linear-gradient(45deg, #eee, #eee 8px, #ddd 8px, #ddd 16px); }
`

// renderStylesheet writes the utility block, one rule per generated class in
// emission order with properties sorted by name, and finally any user
// override rules so they win the cascade.
func renderStylesheet(classes *classTable, overrides []css.Rule) string {
	var b strings.Builder
	b.WriteString("* { margin: 0; box-sizing: border-box; }\n\n")
	b.WriteString(utilityCSS)
	b.WriteString("\n")

	for _, entry := range classes.order {
		b.WriteString(".")
		b.WriteString(entry.name)
		b.WriteString(" {\n")
		for _, k := range entry.style.SortedKeys() {
			b.WriteString("  ")
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(entry.style[k])
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}

	for _, rule := range overrides {
		b.WriteString("\n")
		b.WriteString(rule.Selector)
		b.WriteString(" {\n")
		for _, p := range rule.Props {
			b.WriteString("  ")
			b.WriteString(p.Name)
			b.WriteString(": ")
			b.WriteString(p.Value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}

	return b.String()
}
