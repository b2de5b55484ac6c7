package imgraph

import "github.com/hajimehoshi/ebiten/v2"

// Vertex budget per DrawTriangles submission. Indices are uint16, so a
// batch flushes before it could overflow.
const (
	maxBatchVerts = 60000

	// maxStripPoints caps one strip chunk; long polylines are split into
	// chunks overlapping by one point.
	maxStripPoints = 8000
)

// Renderer turns frame geometry into DrawTriangles submissions over the
// shared white pixel. Buffers grow to a high-water mark and are reused
// across frames. Not safe for concurrent use.
type Renderer struct {
	verts []ebiten.Vertex
	inds  []uint16
	white *ebiten.Image
	aa    bool
}

// NewRenderer creates a renderer with antialiasing enabled.
func NewRenderer() *Renderer {
	return &Renderer{aa: true}
}

// SetAntiAlias toggles antialiased triangle rendering.
func (r *Renderer) SetAntiAlias(enabled bool) {
	r.aa = enabled
}

// Draw submits the geometry to dst: strokes in order, then markers on top.
func (r *Renderer) Draw(dst *ebiten.Image, geo *Geometry) {
	if r.white == nil {
		r.white = ensureWhitePixel()
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	for i := range geo.Lines {
		r.drawLine(dst, &geo.Lines[i])
	}
	for i := range geo.Dots {
		r.drawDots(dst, &geo.Dots[i])
	}
	r.flush(dst)
}

// drawLine appends a polyline strip, chunking long lines so one chunk
// never exceeds the batch vertex budget.
func (r *Renderer) drawLine(dst *ebiten.Image, line *Polyline) {
	pts := line.Points
	for len(pts) > 1 {
		chunk := pts
		if len(chunk) > maxStripPoints {
			chunk = pts[:maxStripPoints]
		}
		if len(r.verts)+len(chunk)*2 > maxBatchVerts {
			r.flush(dst)
		}
		r.verts, r.inds = appendStrip(r.verts, r.inds, chunk, line.Thickness, line.Color)
		if len(chunk) == len(pts) {
			break
		}
		// Overlap by one point so chunks stay connected.
		pts = pts[len(chunk)-1:]
	}
}

// drawDots appends one filled circle per marker position.
func (r *Renderer) drawDots(dst *ebiten.Image, dots *Markers) {
	for _, p := range dots.Points {
		if len(r.verts)+dotSegments+1 > maxBatchVerts {
			r.flush(dst)
		}
		r.verts, r.inds = appendDot(r.verts, r.inds, p, dots.Radius, dots.Color)
	}
}

// flush submits the pending batch and resets the buffers.
func (r *Renderer) flush(dst *ebiten.Image) {
	if len(r.inds) == 0 {
		return
	}
	opts := &ebiten.DrawTrianglesOptions{AntiAlias: r.aa}
	dst.DrawTriangles(r.verts, r.inds, r.white, opts)
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}
