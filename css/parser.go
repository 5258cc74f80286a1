package css

import (
	"bytes"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses user override stylesheets.
type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css")}
}

// Parse reads CSS text into a Stylesheet. At-rules are not supported in
// overrides and are skipped with a warning; a hard tokenizer error ends the
// parse but keeps everything collected so far.
func (p *Parser) Parse(data []byte) *Stylesheet {
	sheet := &Stylesheet{}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var selectors []string

	for {
		gt, _, tokenData := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("stylesheet parse stopped: %v", err))
				p.log.Debug("stylesheet parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			name := string(tokenData)
			sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("at-rule %s is not supported in overrides, skipped", name))
			p.skipBlock(parser)

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("at-rule %s is not supported in overrides, skipped", string(tokenData)))

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selectors = splitSelectors(tokenData, parser.Values())
		}

		if gt == css.BeginRulesetGrammar {
			props := p.declarations(parser)
			if len(props) == 0 {
				continue
			}
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			selectors = nil
		}
	}
}

// declarations collects property declarations until the ruleset closes,
// preserving source order.
func (p *Parser) declarations(parser *css.Parser) []Prop {
	var props []Prop
	for {
		gt, _, tokenData := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props
		case css.DeclarationGrammar:
			if v := joinTokens(parser.Values()); v != "" {
				props = append(props, Prop{Name: string(tokenData), Value: v})
			}
		}
	}
}

// skipBlock consumes a balanced at-rule block.
func (p *Parser) skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// splitSelectors rebuilds the selector text from tokens and splits grouped
// selectors on commas.
func splitSelectors(data []byte, values []css.Token) []string {
	var b strings.Builder
	b.Write(data)
	for _, v := range values {
		b.Write(v.Data)
	}
	var out []string
	for _, s := range strings.Split(b.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// joinTokens renders declaration value tokens back to text with collapsed
// whitespace.
func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			continue
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
