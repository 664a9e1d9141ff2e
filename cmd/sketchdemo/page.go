package main

import (
	"image"
	"math"

	"github.com/gogpu/sketch"
)

const (
	pageWidth  = 400
	pageHeight = 500
)

// drawPage draws the reference page: a grid, every rect and ellipse mode,
// caps, joins, text alignments and free-form shapes. The square at the
// right edge is rotated by spin radians.
func drawPage(sk *sketch.Sketch, spin float64, img image.Image) {
	w, h := float64(pageWidth), float64(pageHeight)

	sk.Background(sketch.RGB(200, 200, 200))
	drawGrid(sk, w, h)

	sk.Stroke(sketch.RGB(255, 0, 0))
	sk.Point(75, 25)

	drawModes(sk)
	drawCaps(sk)

	sk.Fill(sketch.Gray(0))
	sk.NoStroke()
	sk.RectMode(sketch.RectCenter)
	sk.Push()
	sk.Translate(350, 175)
	sk.Rotate(spin)
	sk.Square(0, 0, 50)
	sk.Pop()

	drawJoins(sk)
	drawText(sk)
	drawShapes(sk)

	if img != nil {
		sk.ImageMode(sketch.ImageCorner)
		sk.Image(img, 10, 10, 100)
	}
}

func drawGrid(sk *sketch.Sketch, w, h float64) {
	sk.Stroke(sketch.Gray(0))
	for _, step := range []struct{ gap, weight float64 }{{25, 1}, {50, 2}} {
		sk.StrokeWeight(step.weight)
		for x := 0.0; x <= w; x += step.gap {
			sk.Line(x, 0, x, h)
		}
	}
	sk.Stroke(sketch.RGB(255, 255, 255))
	for _, step := range []struct{ gap, weight float64 }{{25, 1}, {50, 2}} {
		sk.StrokeWeight(step.weight)
		for y := 0.0; y <= h; y += step.gap {
			sk.Line(0, y, w, y)
		}
	}
}

func drawModes(sk *sketch.Sketch) {
	sk.NoStroke()
	sk.Fill(sketch.RGB(255, 0, 0))

	sk.RectMode(sketch.RectCorner)
	sk.Rect(0, 0, 50, 50)
	sk.RectMode(sketch.RectCorners)
	sk.Rect(100, 0, 150, 50, 10)
	sk.RectMode(sketch.RectCenter)
	sk.Rect(225, 25, 50, 50, 10, 10, 20, 20)
	sk.RectMode(sketch.RectRadius)
	sk.Rect(325, 25, 25, 25)

	sk.EllipseMode(sketch.EllipseCorner)
	sk.Ellipse(50, 50, 50, 50)
	sk.EllipseMode(sketch.EllipseCorners)
	sk.Ellipse(150, 50, 200, 100)
	sk.EllipseMode(sketch.EllipseCenter)
	sk.Ellipse(275, 75, 50, 50)
	sk.EllipseMode(sketch.EllipseRadius)
	sk.Ellipse(375, 75, 25, 25)
}

func drawCaps(sk *sketch.Sketch) {
	sk.Stroke(sketch.RGB(0, 255, 0))
	sk.StrokeWeight(20)
	for i, c := range []sketch.StrokeCap{sketch.CapSquare, sketch.CapProject, sketch.CapRound} {
		x := 50 + float64(i)*100
		sk.StrokeCap(c)
		sk.Line(x, 125, x+50, 125)
	}
}

func drawJoins(sk *sketch.Sketch) {
	sk.Stroke(sketch.RGBA8(0, 0, 0, 100))
	sk.Fill(sketch.RGB(255, 255, 0))
	sk.StrokeWeight(15)
	sk.RectMode(sketch.RectCorner)
	for i, j := range []sketch.StrokeJoin{sketch.JoinMiter, sketch.JoinBevel, sketch.JoinRound} {
		sk.StrokeJoin(j)
		sk.Rect(50+float64(i)*100, 150, 50, 50)
	}
}

func drawText(sk *sketch.Sketch) {
	sk.TextSize(22)
	sk.Fill(sketch.RGB(150, 0, 150))
	sk.NoStroke()

	rows := []struct {
		v sketch.VAlign
		y float64
	}{
		{sketch.AlignBottom, 250},
		{sketch.AlignTop, 250},
		{sketch.AlignMiddle, 300},
		{sketch.AlignBaseline, 350},
	}
	cols := []struct {
		h sketch.HAlign
		x float64
	}{
		{sketch.AlignLeft, 0},
		{sketch.AlignCenter, 150},
		{sketch.AlignRight, 300},
	}
	for _, r := range rows {
		for _, c := range cols {
			sk.TextAlign(c.h, r.v)
			sk.Text("aqdAQD", c.x, r.y)
		}
	}
}

func drawShapes(sk *sketch.Sketch) {
	sk.NoFill()
	sk.Stroke(sketch.Gray(0))
	sk.StrokeWeight(5)

	triangle := func(y float64, close bool) {
		sk.BeginShape()
		sk.Vertex(325, y)
		sk.Vertex(375, y)
		sk.Vertex(350, y+50)
		sk.EndShape(close)
	}
	triangle(225, false)
	triangle(275, true)
	sk.Fill(sketch.RGB(255, 0, 0))
	triangle(325, true)

	sk.NoFill()
	sk.Bezier(50, 400, 150, 350, 250, 450, 350, 400)

	sk.BeginShape()
	sk.Vertex(50, 450)
	sk.Vertex(150, 450)
	sk.BezierVertex(200, 350, 200, 550, 250, 450)
	sk.EndShape(false)

	sk.Arc(300, 400, 75, 50, 0, math.Pi/2)

	sk.Triangle(0, 500, 25, 450, 50, 500)
	sk.Quad(25, 450, 50, 400, 25, 350, 0, 400)
}
