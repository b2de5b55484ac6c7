package imgraph

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// dotSegments is the fan resolution of a marker circle.
const dotSegments = 10

var whitePixel *ebiten.Image

// ensureWhitePixel returns the shared 1x1 white image all plot meshes
// sample from; color comes entirely from vertex colors.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// stripPerpendicular returns the unit left-perpendicular of the segment
// from a to b.
func stripPerpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// appendStrip appends a miter-joined ribbon for the polyline points to the
// vertex and index buffers. For N points: 2N vertices, 6(N-1) indices.
// Points with fewer than two entries append nothing.
func appendStrip(verts []ebiten.Vertex, inds []uint16, points []Vec2, width float64, col Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 2 {
		return verts, inds
	}

	base := uint16(len(verts))
	halfW := width / 2
	cr, cg, cb, ca := float32(col.R), float32(col.G), float32(col.B), float32(col.A)

	for i := 0; i < n; i++ {
		var nx, ny float64
		if i == 0 {
			nx, ny = stripPerpendicular(points[0], points[1])
		} else if i == n-1 {
			nx, ny = stripPerpendicular(points[n-2], points[n-1])
		} else {
			// Average of adjacent segment normals, miter-scaled to keep
			// width through the corner, clamped to avoid spikes.
			nx0, ny0 := stripPerpendicular(points[i-1], points[i])
			nx1, ny1 := stripPerpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			dot := nx0*nx + ny0*ny
			if dot > 0.1 {
				scale := 1.0 / dot
				if scale > 2.0 {
					scale = 2.0
				}
				nx *= scale
				ny *= scale
			}
		}

		verts = append(verts,
			ebiten.Vertex{
				DstX: float32(points[i].X + nx*halfW),
				DstY: float32(points[i].Y + ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(points[i].X - nx*halfW),
				DstY: float32(points[i].Y - ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
	}

	for i := 0; i < n-1; i++ {
		v := base + uint16(i*2)
		inds = append(inds, v, v+1, v+2, v+1, v+3, v+2)
	}
	return verts, inds
}

// appendDot appends a fan-triangulated filled circle to the vertex and
// index buffers: dotSegments+1 vertices, 3*dotSegments indices.
func appendDot(verts []ebiten.Vertex, inds []uint16, center Vec2, radius float64, col Color) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(verts))
	cr, cg, cb, ca := float32(col.R), float32(col.G), float32(col.B), float32(col.A)

	verts = append(verts, ebiten.Vertex{
		DstX: float32(center.X), DstY: float32(center.Y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	for i := 0; i < dotSegments; i++ {
		a := 2 * math.Pi * float64(i) / dotSegments
		verts = append(verts, ebiten.Vertex{
			DstX: float32(center.X + radius*math.Cos(a)),
			DstY: float32(center.Y + radius*math.Sin(a)),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 0; i < dotSegments; i++ {
		j := uint16(i + 1)
		k := j + 1
		if i == dotSegments-1 {
			k = 1
		}
		inds = append(inds, base, base+j, base+k)
	}
	return verts, inds
}
