// Package raster is the reference software backend: it interprets a
// display list into an in-memory RGBA image. It trades speed for
// simplicity and exists for tests, golden images, and headless export.
//
// Import for side effects to register it:
//
//	import _ "github.com/yezhang/drawkit/render/backends/raster"
package raster

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/yezhang/drawkit"
	"github.com/yezhang/drawkit/render"
)

func init() {
	render.Register("raster", func() render.Backend {
		return New()
	})
}

// state is one graphics-state frame: the cumulative transform and the
// clip in device pixels.
type state struct {
	transform drawkit.Matrix
	clip      image.Rectangle
}

// Backend rasterizes display-list commands into an *image.RGBA. It
// implements render.Backend, render.ImageBackend and render.WriterBackend.
type Backend struct {
	img     *image.RGBA
	frame   image.Rectangle
	current state
	stack   []state
	done    bool
}

// New creates an unstarted raster backend. Begin allocates the frame.
func New() *Backend { return &Backend{} }

// Begin implements render.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid frame size %dx%d", width, height)
	}
	b.frame = image.Rect(0, 0, width, height)
	b.img = image.NewRGBA(b.frame)
	b.current = state{transform: drawkit.Identity(), clip: b.frame}
	b.stack = b.stack[:0]
	b.done = false
	return nil
}

// End implements render.Backend.
func (b *Backend) End() error {
	if b.img == nil {
		return fmt.Errorf("raster: End without Begin")
	}
	b.done = true
	return nil
}

// Image returns the rendered frame, or nil before End.
func (b *Backend) Image() *image.RGBA {
	if !b.done {
		return nil
	}
	return b.img
}

// WriteTo encodes the rendered frame as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, fmt.Errorf("raster: WriteTo before End")
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, b.img); err != nil {
		return cw.n, fmt.Errorf("raster: encode png: %w", err)
	}
	return cw.n, nil
}

// PushState implements render.Backend.
func (b *Backend) PushState() {
	b.stack = append(b.stack, b.current)
}

// RestoreState implements render.Backend.
func (b *Backend) RestoreState() {
	if len(b.stack) == 0 {
		return
	}
	b.current = b.stack[len(b.stack)-1]
}

// PopState implements render.Backend.
func (b *Backend) PopState() {
	if len(b.stack) == 0 {
		return
	}
	b.current = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// ConcatTransform implements render.Backend.
func (b *Backend) ConcatTransform(m drawkit.Matrix) {
	b.current.transform = b.current.transform.Multiply(m)
}

// ClipRect implements render.Backend. A non-positive rectangle clips
// everything away.
func (b *Backend) ClipRect(r drawkit.Rect) {
	b.current.clip = b.current.clip.Intersect(b.deviceRect(r))
}

// FillRect implements render.Backend.
func (b *Backend) FillRect(r drawkit.Rect, c drawkit.RGBA) {
	if c.A == 0 {
		return
	}
	dr := b.deviceRect(r).Intersect(b.current.clip)
	if dr.Empty() {
		return
	}
	stddraw.Draw(b.img, dr, image.NewUniform(c.Color()), image.Point{}, stddraw.Over)
}

// StrokeRect implements render.Backend. The stroke is drawn inside the
// rectangle's edges.
func (b *Backend) StrokeRect(r drawkit.Rect, c drawkit.RGBA, width float64) {
	if width <= 0 {
		return
	}
	w := math.Min(width, math.Min(r.Width/2, r.Height/2))
	if w <= 0 {
		w = width
	}
	edges := []drawkit.Rect{
		{X: r.X, Y: r.Y, Width: r.Width, Height: w},
		{X: r.X, Y: r.Y + r.Height - w, Width: r.Width, Height: w},
		{X: r.X, Y: r.Y, Width: w, Height: r.Height},
		{X: r.X + r.Width - w, Y: r.Y, Width: w, Height: r.Height},
	}
	for _, e := range edges {
		b.FillRect(e, c)
	}
}

// Line implements render.Backend.
func (b *Backend) Line(from, to drawkit.Point, c drawkit.RGBA, width float64) {
	if c.A == 0 {
		return
	}
	p0 := b.current.transform.TransformPoint(from)
	p1 := b.current.transform.TransformPoint(to)
	col := c.Color().(color.NRGBA)

	steps := int(math.Ceil(math.Max(math.Abs(p1.X-p0.X), math.Abs(p1.Y-p0.Y)))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		b.stamp(p0.X+(p1.X-p0.X)*t, p0.Y+(p1.Y-p0.Y)*t, width, col)
	}
}

// FillEllipse implements render.Backend.
func (b *Backend) FillEllipse(bounds drawkit.Rect, c drawkit.RGBA) {
	if c.A == 0 {
		return
	}
	dr := b.deviceRect(bounds).Intersect(b.current.clip)
	if dr.Empty() {
		return
	}
	full := b.deviceRect(bounds)
	cx := float64(full.Min.X+full.Max.X) / 2
	cy := float64(full.Min.Y+full.Max.Y) / 2
	rx := float64(full.Dx()) / 2
	ry := float64(full.Dy()) / 2
	if rx == 0 || ry == 0 {
		return
	}
	col := c.Color().(color.NRGBA)
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				b.blend(x, y, col)
			}
		}
	}
}

// StrokeEllipse implements render.Backend.
func (b *Backend) StrokeEllipse(bounds drawkit.Rect, c drawkit.RGBA, width float64) {
	if c.A == 0 {
		return
	}
	full := b.deviceRect(bounds)
	cx := float64(full.Min.X+full.Max.X) / 2
	cy := float64(full.Min.Y+full.Max.Y) / 2
	rx := float64(full.Dx()) / 2
	ry := float64(full.Dy()) / 2
	col := c.Color().(color.NRGBA)

	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry)))
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		b.stamp(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta), width, col)
	}
}

// FillPath implements render.Backend using even-odd scanline filling.
func (b *Backend) FillPath(points []drawkit.Point, c drawkit.RGBA) {
	if len(points) < 3 || c.A == 0 {
		return
	}
	device := make([]drawkit.Point, len(points))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		device[i] = b.current.transform.TransformPoint(p)
		minY = math.Min(minY, device[i].Y)
		maxY = math.Max(maxY, device[i].Y)
	}
	col := c.Color().(color.NRGBA)

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	var xs []float64
	for y := y0; y < y1; y++ {
		cy := float64(y) + 0.5
		xs = xs[:0]
		for i := range device {
			a, e := device[i], device[(i+1)%len(device)]
			if (a.Y <= cy) == (e.Y <= cy) {
				continue
			}
			xs = append(xs, a.X+(cy-a.Y)/(e.Y-a.Y)*(e.X-a.X))
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); float64(x)+0.5 <= xs[i+1]; x++ {
				b.blend(x, y, col)
			}
		}
	}
}

// StrokePath implements render.Backend.
func (b *Backend) StrokePath(points []drawkit.Point, closed bool, c drawkit.RGBA, width float64) {
	if len(points) < 2 {
		return
	}
	for i := 0; i+1 < len(points); i++ {
		b.Line(points[i], points[i+1], c, width)
	}
	if closed {
		b.Line(points[len(points)-1], points[0], c, width)
	}
}

// DrawImage implements render.Backend. The source is scaled into the
// destination rectangle with bilinear filtering.
func (b *Backend) DrawImage(img image.Image, dst drawkit.Rect) {
	if img == nil {
		return
	}
	dr := b.deviceRect(dst)
	if dr.Empty() {
		return
	}
	visible := dr.Intersect(b.current.clip)
	if visible.Empty() {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	stddraw.Draw(b.img, visible, scaled, visible.Min.Sub(dr.Min), stddraw.Over)
}

// DrawText implements render.Backend with a fixed-size bitmap face. The
// size hint is accepted for interface compatibility; glyphs always
// render at the face's native size.
func (b *Backend) DrawText(s string, origin drawkit.Point, size float64, c drawkit.RGBA) {
	if s == "" || c.A == 0 {
		return
	}
	clipped, ok := b.img.SubImage(b.current.clip).(*image.RGBA)
	if !ok || clipped.Bounds().Empty() {
		return
	}
	p := b.current.transform.TransformPoint(origin)
	d := font.Drawer{
		Dst:  clipped,
		Src:  image.NewUniform(c.Color()),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(int(math.Round(p.X))),
			Y: fixed.I(int(math.Round(p.Y))),
		},
	}
	d.DrawString(s)
}

// deviceRect maps a rectangle through the current transform and returns
// the pixel-aligned bounding box. Rotated frames degrade to the bounding
// box; the reference backend does not rasterize oblique rectangles.
func (b *Backend) deviceRect(r drawkit.Rect) image.Rectangle {
	corners := []drawkit.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		q := b.current.transform.TransformPoint(p)
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// stamp fills a width-sized square centered on a device-space point,
// honoring the clip.
func (b *Backend) stamp(x, y, width float64, col color.NRGBA) {
	half := math.Max(width, 1) / 2
	r := image.Rect(
		int(math.Floor(x-half)), int(math.Floor(y-half)),
		int(math.Ceil(x+half)), int(math.Ceil(y+half)),
	).Intersect(b.current.clip)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			b.blend(px, py, col)
		}
	}
}

// blend draws one pixel with source-over compositing, honoring the clip.
func (b *Backend) blend(x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}.In(b.current.clip)) {
		return
	}
	if col.A == 0xff {
		b.img.SetRGBA(x, y, color.RGBA{R: col.R, G: col.G, B: col.B, A: 0xff})
		return
	}
	stddraw.Draw(b.img, image.Rect(x, y, x+1, y+1), image.NewUniform(col), image.Point{}, stddraw.Over)
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

var (
	_ render.ImageBackend  = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
)
