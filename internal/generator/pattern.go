package generator

import (
	"regexp/syntax"
	"strings"
)

// PatternTemplate is a named, ready-made pattern.
type PatternTemplate struct {
	Label   string `json:"label" yaml:"label"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

var PatternTemplates = []PatternTemplate{
	{Label: "Phone (###-###-####)", Pattern: `[0-9]{3}-[0-9]{3}-[0-9]{4}`},
	{Label: "SSN (###-##-####)", Pattern: `[0-9]{3}-[0-9]{2}-[0-9]{4}`},
	{Label: "Credit Card (#### #### #### ####)", Pattern: `[0-9]{4} [0-9]{4} [0-9]{4} [0-9]{4}`},
	{Label: "UUID", Pattern: `[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}`},
	{Label: "IP Address", Pattern: `(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`},
	{Label: "Product Code (ABC-12345)", Pattern: `[A-Z]{3}-[0-9]{5}`},
	{Label: "Username (@username)", Pattern: `@[a-z0-9_]{5,15}`},
	{Label: "Hashtag (#topic)", Pattern: `#[a-zA-Z0-9_]{1,30}`},
}

const (
	digitChars  = "0123456789"
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	alnumChars  = letterChars + digitChars
)

// fromPattern samples a string matching pattern. Patterns without regex syntax
// are templates where '#' is a digit, '?' a letter and '*' an alphanumeric;
// patterns that fail to parse fall back to the same template expansion.
func (g *Generator) fromPattern(pattern string) string {
	if isTemplate(pattern) {
		return g.expandTemplate(pattern)
	}
	valid, ok := g.patterns[pattern]
	if !ok {
		_, err := syntax.Parse(pattern, syntax.Perl)
		if err != nil {
			g.log.Debug("pattern is not a valid regex, expanding as template", "pattern", pattern, "error", err)
		}
		valid = err == nil
		g.patterns[pattern] = valid
	}
	if !valid {
		return g.expandTemplate(pattern)
	}
	return g.faker.Regex(pattern)
}

func isTemplate(p string) bool {
	return !strings.ContainsAny(p, `[](){}\|+*.^$`) && strings.ContainsAny(p, "#?")
}

func (g *Generator) expandTemplate(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, r := range p {
		switch r {
		case '#':
			b.WriteByte(digitChars[intn(g.src, len(digitChars))])
		case '?':
			b.WriteByte(letterChars[intn(g.src, 26)])
		case '*':
			b.WriteByte(alnumChars[intn(g.src, len(alnumChars))])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
