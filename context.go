package blobposter

import (
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/rasterizer"
)

const (
	// MMPerInch converts figure inches to canvas millimetres.
	MMPerInch = 25.4
	// ExportDPI is the fixed pixel density of exported posters.
	ExportDPI = 300
	// PointMM is one typographic point in millimetres.
	PointMM = MMPerInch / 72

	exportDPMM = ExportDPI / MMPerInch
)

// Context is my abstraction for Canvas. Units are millimetres, y grows upwards.
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context
}

// NewContext makes an empty canvas of width x height millimetres.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c: canvas.New(width, height),
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WritePNG rasterizes the canvas at ExportDPI and encodes it to w.
func (ctx *Context) WritePNG(w io.Writer) error {
	return rasterizer.PNGWriter(exportDPMM)(w, ctx.c)
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// FillRect draws a filled rectangle with no outline
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// FillPolygon fills the closed outline with the current fill colour.
// Points go through project first, which maps scene units to millimetres.
func (ctx *Context) FillPolygon(poly Polygon, project func(Point) Point) {
	if len(poly) < 3 {
		return
	}
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.DrawPath(0, 0, polygonPath(poly, project))
}

// StrokePolygon outlines the closed polygon with the current stroke colour and width.
func (ctx *Context) StrokePolygon(poly Polygon, project func(Point) Point) {
	if len(poly) < 2 {
		return
	}
	ctx.ctx.SetFillColor(color.Transparent)
	ctx.ctx.DrawPath(0, 0, polygonPath(poly, project))
}

func polygonPath(poly Polygon, project func(Point) Point) *canvas.Path {
	p := &canvas.Path{}
	first := project(poly[0])
	p.MoveTo(first.X, first.Y)
	for _, pt := range poly[1:] {
		q := project(pt)
		p.LineTo(q.X, q.Y)
	}
	p.Close()
	return p
}
