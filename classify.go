package imgraph

import "strings"

// Kind identifies which plot family an expression belongs to.
type Kind uint8

const (
	// KindExplicit plots y = f(x). Fallback when nothing else matches.
	KindExplicit Kind = iota
	// KindParametric plots (f(t), g(t)) from a parenthesized pair.
	KindParametric
	// KindPolar plots r = f(theta).
	KindPolar
	// KindInequality rasterizes the truth region of a relational expression.
	KindInequality
	// KindImplicit plots the zero set of (lhs) - (rhs).
	KindImplicit
)

// String returns the plot family name.
func (k Kind) String() string {
	switch k {
	case KindParametric:
		return "parametric"
	case KindPolar:
		return "polar"
	case KindInequality:
		return "inequality"
	case KindImplicit:
		return "implicit"
	default:
		return "explicit"
	}
}

// Classification is the typed result of classifying an expression string.
type Classification struct {
	Kind Kind

	// Body is the expression text to compile. For KindImplicit it is the
	// rewritten difference "(lhs) - (rhs)"; for KindPolar the radius
	// function of theta; empty for KindParametric.
	Body string

	// XExpr and YExpr are the two halves of a parametric pair.
	XExpr, YExpr string
}

// Variables returns the free variable names the classified expression is
// compiled against.
func (c Classification) Variables() []string {
	switch c.Kind {
	case KindParametric:
		return []string{"t"}
	case KindPolar:
		return []string{"theta"}
	case KindInequality, KindImplicit:
		return []string{"x", "y"}
	default:
		return []string{"x"}
	}
}

// Classify inspects an expression string and selects a plot family.
// Classification is total and deterministic; precedence is parametric,
// inequality, implicit, polar, explicit, first match wins. Empty text
// classifies explicit and compile-fails downstream.
func Classify(text string) Classification {
	text = strings.TrimSpace(text)

	// Parametric: wrapped in parens with a comma at nesting depth zero.
	if len(text) >= 2 && text[0] == '(' && text[len(text)-1] == ')' {
		inner := text[1 : len(text)-1]
		if i, ok := topLevelComma(inner); ok {
			return Classification{
				Kind:  KindParametric,
				XExpr: strings.TrimSpace(inner[:i]),
				YExpr: strings.TrimSpace(inner[i+1:]),
			}
		}
	}

	// Inequality: any top-level relational operator other than equality.
	if hasTopLevelRelational(text) {
		return Classification{Kind: KindInequality, Body: text}
	}

	// Equality split: "lhs = rhs" or "lhs == rhs" at depth zero. An
	// assignment whose left side is exactly "r" is the polar form, not an
	// implicit curve.
	if i, w := topLevelEquals(text); i >= 0 {
		lhs := strings.TrimSpace(text[:i])
		rhs := strings.TrimSpace(text[i+w:])
		if lhs == "r" {
			return Classification{Kind: KindPolar, Body: rhs}
		}
		return Classification{Kind: KindImplicit, Body: "(" + lhs + ") - (" + rhs + ")"}
	}

	// Polar probe for texts carrying the assignment pattern without a
	// top-level equals, e.g. wrapped in parentheses.
	if body, ok := polarBody(text); ok {
		return Classification{Kind: KindPolar, Body: body}
	}

	return Classification{Kind: KindExplicit, Body: text}
}

// topLevelComma returns the index of the first comma at parenthesis depth
// zero. Depth must return to zero before the comma counts.
func topLevelComma(s string) (int, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// hasTopLevelRelational reports whether s contains '<' or '>' outside of
// nested parentheses. This also covers "<=" and ">=".
func hasTopLevelRelational(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '<', '>':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// topLevelEquals finds the first equality operator at depth zero and
// returns its index and width (2 for "==", 1 for a bare "="). An '='
// belonging to "<=", ">=" or "!=" is skipped. Returns -1 if absent.
func topLevelEquals(s string) (idx, width int) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '=':
			if depth != 0 {
				continue
			}
			if i > 0 && (s[i-1] == '<' || s[i-1] == '>' || s[i-1] == '!' || s[i-1] == '=') {
				continue
			}
			if i+1 < len(s) && s[i+1] == '=' {
				return i, 2
			}
			return i, 1
		}
	}
	return -1, 0
}

// polarBody extracts the radius function from the "r=" / "r =" assignment
// pattern, trimmed of leading whitespace.
func polarBody(s string) (string, bool) {
	i := strings.Index(s, "r=")
	if i < 0 {
		i = strings.Index(s, "r =")
	}
	if i < 0 {
		return "", false
	}
	eq := strings.IndexByte(s[i:], '=')
	if eq < 0 {
		return "", false
	}
	return strings.TrimSpace(s[i+eq+1:]), true
}
