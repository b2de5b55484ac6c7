package imgraph

// MaxExpressionLen bounds the source text of a single registry entry.
// Longer texts are truncated before classification.
const MaxExpressionLen = 1024

// DefaultThickness is the stroke width used when an entry has none.
const DefaultThickness = 6.0

// Per-family default colors, used when an entry's Color is unset.
var (
	ColorExplicit   = RGB(199, 68, 64)
	ColorParametric = RGB(64, 128, 199)
	ColorPolar      = RGB(128, 64, 199)
	ColorInequality = RGBA(100, 150, 255, 180)
	ColorImplicit   = RGB(64, 199, 128)
)

// FamilyColor returns the default plot color for a plot family.
func FamilyColor(k Kind) Color {
	switch k {
	case KindParametric:
		return ColorParametric
	case KindPolar:
		return ColorPolar
	case KindInequality:
		return ColorInequality
	case KindImplicit:
		return ColorImplicit
	default:
		return ColorExplicit
	}
}

// Expression is one named plot entry: source text plus styling. Entries are
// owned exclusively by the registry slot holding them; edit fields in place
// and the next frame picks the change up.
type Expression struct {
	Text      string
	Color     Color // zero value means "use the family default"
	Visible   bool
	Thickness float64
	ID        int

	cache *compiled
}

// compiled is the per-entry compile cache, keyed by source text. A cached
// error is kept too, so an unchanged broken entry is skipped without
// recompiling; editing the text invalidates either way.
type compiled struct {
	text  string
	class Classification
	prog  *Program // primary program
	prog2 *Program // second parametric half
	err   error
}

// Registry is the ordered collection of plot entries. All access is from
// the single UI thread between frames; no locking.
type Registry struct {
	entries []*Expression
	nextID  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add appends a new visible entry with default styling and returns it.
func (r *Registry) Add(text string) *Expression {
	e := &Expression{
		Text:      text,
		Visible:   true,
		Thickness: DefaultThickness,
		ID:        r.nextID,
	}
	r.nextID++
	r.entries = append(r.entries, e)
	return e
}

// Remove deletes an entry. Reports whether it was present.
func (r *Registry) Remove(e *Expression) bool {
	for i, cur := range r.entries {
		if cur == e {
			copy(r.entries[i:], r.entries[i+1:])
			r.entries[len(r.entries)-1] = nil
			r.entries = r.entries[:len(r.entries)-1]
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// At returns the entry at index i.
func (r *Registry) At(i int) *Expression {
	return r.entries[i]
}

// Entries returns the ordered entry list. The returned slice MUST NOT be
// mutated.
func (r *Registry) Entries() []*Expression {
	return r.entries
}

// Plot runs one classify-compile-sample pass for every visible entry and
// appends the produced geometry to out. A compile failure yields no
// geometry for that entry and never affects the others; the entry is
// retried as soon as its text changes.
func (r *Registry) Plot(view *Viewport, cfg Config, out *Geometry) {
	for _, e := range r.entries {
		if !e.Visible {
			continue
		}
		e.plot(view, cfg, out)
	}
}

// ensureCompiled refreshes the entry's compile cache if the text changed.
func (e *Expression) ensureCompiled() *compiled {
	text := e.Text
	if len(text) > MaxExpressionLen {
		text = text[:MaxExpressionLen]
	}
	if e.cache != nil && e.cache.text == text {
		return e.cache
	}
	e.cache = compileEntry(text)
	return e.cache
}

// compileEntry classifies text and compiles the program(s) its family needs.
func compileEntry(text string) *compiled {
	c := &compiled{text: text, class: Classify(text)}
	switch c.class.Kind {
	case KindParametric:
		c.prog, c.err = Compile(c.class.XExpr, "t")
		if c.err == nil {
			c.prog2, c.err = Compile(c.class.YExpr, "t")
		}
	default:
		c.prog, c.err = Compile(c.class.Body, c.class.Variables()...)
	}
	if c.err != nil {
		debugf("entry %q: %v", text, c.err)
	}
	return c
}

// plot samples one entry against the current viewport.
func (e *Expression) plot(view *Viewport, cfg Config, out *Geometry) {
	c := e.ensureCompiled()
	if c.err != nil {
		return
	}

	col := e.Color
	if col.IsZero() {
		col = FamilyColor(c.class.Kind)
	}
	th := e.Thickness
	if th <= 0 {
		th = DefaultThickness
	}

	switch c.class.Kind {
	case KindParametric:
		out.appendLine(SampleParametric(c.prog, c.prog2, view, cfg), col, th)
	case KindPolar:
		out.appendLine(SamplePolar(c.prog, view, cfg), col, th)
	case KindInequality:
		out.appendDots(SampleInequality(c.prog, view, cfg), RegionDotRadius(view.Zoom, cfg), col)
	case KindImplicit:
		out.appendDots(SampleContour(c.prog, view, cfg), cfg.ContourDotRadius, col)
	default:
		out.appendLine(SampleExplicit(c.prog, view, cfg), col, th)
	}
}

func (g *Geometry) appendLine(pts []Vec2, col Color, thickness float64) {
	if len(pts) < 2 {
		return
	}
	g.Lines = append(g.Lines, Polyline{Points: pts, Color: col, Thickness: thickness})
}

func (g *Geometry) appendDots(pts []Vec2, radius float64, col Color) {
	if len(pts) == 0 {
		return
	}
	g.Dots = append(g.Dots, Markers{Points: pts, Radius: radius, Color: col})
}
