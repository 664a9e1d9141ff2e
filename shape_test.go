package sketch

import (
	"testing"

	"github.com/gogpu/sketch/surface/record"
)

func TestRectModes(t *testing.T) {
	tests := []struct {
		name  string
		mode  RectMode
		scale float64
		args  [4]float64
		want  string
	}{
		{"corner", RectCorner, 1, [4]float64{10, 20, 30, 40}, "fillRect(10,20,30,40)"},
		{"corner scaled", RectCorner, 2, [4]float64{10, 20, 30, 40}, "fillRect(20,40,60,80)"},
		{"center", RectCenter, 1, [4]float64{50, 50, 20, 10}, "fillRect(40,45,20,10)"},
		{"radius", RectRadius, 1, [4]float64{50, 50, 20, 10}, "fillRect(30,40,40,20)"},
		{"corners", RectCorners, 1, [4]float64{10, 20, 30, 60}, "fillRect(10,20,20,40)"},
		{"corners negative", RectCorners, 1, [4]float64{10, 20, -10, -20}, "fillRect(10,20,180,60)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sk, rec := newRecorded(t, 200, 100, WithScale(tt.scale))
			sk.RectMode(tt.mode)
			sk.NoStroke()
			sk.Rect(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			expectCalls(t, rec.Strings(), []string{"beginPath()", tt.want})
		})
	}
}

func TestRectFillAndStroke(t *testing.T) {
	sk, rec := newRecorded(t, 200, 100)
	sk.Rect(1, 2, 3, 4)
	expectCalls(t, rec.Strings(), []string{"beginPath()", "fillRect(1,2,3,4)", "strokeRect(1,2,3,4)"})

	rec.Reset()
	sk.NoFill()
	sk.Square(5, 5, 10)
	expectCalls(t, rec.Strings(), []string{"beginPath()", "strokeRect(5,5,10,10)"})
}

func TestRectRounded(t *testing.T) {
	tests := []struct {
		name  string
		radii []float64
		want  []string
	}{
		{"single", []float64{2}, []string{"beginPath()", "roundRect(0,0,10,10,2)", "fill()", "stroke()"}},
		{"four", []float64{1, 2, 3, 4}, []string{"beginPath()", "roundRect(0,0,10,10,1,2,3,4)", "fill()", "stroke()"}},
		{"three uses first", []float64{1, 2, 3}, []string{"beginPath()", "roundRect(0,0,10,10,1)", "fill()", "stroke()"}},
		{"zero first is plain", []float64{0, 2, 3, 4}, []string{"beginPath()", "fillRect(0,0,10,10)", "strokeRect(0,0,10,10)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sk, rec := newRecorded(t, 100, 100)
			sk.Rect(0, 0, 10, 10, tt.radii...)
			expectCalls(t, rec.Strings(), tt.want)
		})
	}

	sk, rec := newRecorded(t, 100, 100, WithScale(2))
	sk.NoStroke()
	sk.Rect(0, 0, 10, 10, 1, 2, 3, 4)
	expectCalls(t, rec.Strings(), []string{"beginPath()", "roundRect(0,0,20,20,2,4,6,8)", "fill()"})
}

func TestEllipseModes(t *testing.T) {
	const full = "6.283185307179586"
	tests := []struct {
		name string
		mode EllipseMode
		args [4]float64
		want string
	}{
		{"center", EllipseCenter, [4]float64{50, 50, 20, 10}, "ellipse(50,50,10,5,0,0," + full + ")"},
		{"radius", EllipseRadius, [4]float64{50, 50, 20, 10}, "ellipse(50,50,20,10,0,0," + full + ")"},
		{"corner", EllipseCorner, [4]float64{50, 50, 20, 10}, "ellipse(60,55,10,5,0,0," + full + ")"},
		{"corners", EllipseCorners, [4]float64{10, 10, 30, 50}, "ellipse(20,30,10,20,0,0," + full + ")"},
		{"corners reversed", EllipseCorners, [4]float64{30, 50, 10, 10}, "ellipse(20,30,10,20,0,0," + full + ")"},
		{"center negative size", EllipseCenter, [4]float64{50, 50, -20, -10}, "ellipse(50,50,10,5,0,0," + full + ")"},
		{"radius negative size", EllipseRadius, [4]float64{50, 50, -20, 10}, "ellipse(50,50,20,10,0,0," + full + ")"},
		{"corner negative size", EllipseCorner, [4]float64{50, 50, -20, -10}, "ellipse(40,45,10,5,0,0," + full + ")"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sk, rec := newRecorded(t, 200, 100)
			sk.EllipseMode(tt.mode)
			sk.Ellipse(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			expectCalls(t, rec.Strings(), []string{"beginPath()", tt.want, "fill()", "stroke()"})
		})
	}
}

func TestCircleAndArc(t *testing.T) {
	sk, rec := newRecorded(t, 100, 100, WithScale(2))
	sk.NoFill()
	sk.Circle(10, 10, 8)
	sk.Arc(10, 10, 5, 3, 0, 1.5)
	expectCalls(t, rec.Strings(), []string{
		"beginPath()", "ellipse(20,20,8,8,0,0,6.283185307179586)", "stroke()",
		"beginPath()", "ellipse(20,20,10,6,0,0,1.5)", "stroke()",
	})
}

func TestLineAndBezierNeedStroke(t *testing.T) {
	sk, rec := newRecorded(t, 100, 100)
	sk.Line(0, 0, 10, 10)
	sk.Bezier(0, 0, 1, 1, 2, 2, 3, 3)
	expectCalls(t, rec.Strings(), []string{
		"beginPath()", "moveTo(0,0)", "lineTo(10,10)", "stroke()",
		"beginPath()", "moveTo(0,0)", "bezierCurveTo(1,1,2,2,3,3)", "stroke()",
	})

	rec.Reset()
	sk.NoStroke()
	sk.Line(0, 0, 10, 10)
	sk.Bezier(0, 0, 1, 1, 2, 2, 3, 3)
	if rec.Len() != 0 {
		t.Errorf("expected no calls with stroke off, got %q", rec.Strings())
	}
}

func TestPoint(t *testing.T) {
	sk, rec := newRecorded(t, 100, 100, WithScale(2))
	sk.NoFill()
	sk.Point(5, 6)
	expectCalls(t, rec.Strings(), []string{"beginPath()", "fillRect(10,12,2,2)"})
}

func TestPolygons(t *testing.T) {
	sk, rec := newRecorded(t, 100, 100)
	sk.NoStroke()
	sk.Triangle(0, 0, 10, 0, 10, 10)
	expectCalls(t, rec.Strings(), []string{
		"beginPath()", "moveTo(0,0)", "lineTo(10,0)", "lineTo(10,10)", "closePath()", "fill()",
	})

	rec.Reset()
	sk.Quad(0, 0, 1, 0, 1, 1, 0, 1)
	expectCalls(t, calls(rec, record.CmdMoveTo, record.CmdLineTo), []string{
		"moveTo(0,0)", "lineTo(1,0)", "lineTo(1,1)", "lineTo(0,1)",
	})

	rec.Reset()
	sk.Polygon(0, 0, 10, 0, 10, 10, 99)
	expectCalls(t, rec.Strings(), []string{
		"beginPath()", "moveTo(0,0)", "lineTo(10,0)", "lineTo(10,10)", "closePath()", "fill()",
	})

	rec.Reset()
	sk.Polygon(5)
	sk.Polygon()
	if rec.Len() != 0 {
		t.Errorf("degenerate polygons should draw nothing, got %q", rec.Strings())
	}
}

func TestShapeBuilding(t *testing.T) {
	sk, rec := newRecorded(t, 100, 100)
	sk.BeginShape()
	if !sk.Config().Shape {
		t.Error("BeginShape should arm the first-vertex flag")
	}
	sk.Vertex(1, 2)
	if sk.Config().Shape {
		t.Error("first Vertex should disarm the flag")
	}
	sk.Vertex(3, 4)
	sk.Vertex(5, 6)
	sk.EndShape(true)

	expectCalls(t, rec.Strings(), []string{
		"beginPath()", "moveTo(1,2)", "lineTo(3,4)", "lineTo(5,6)", "closePath()", "fill()", "stroke()",
	})
}

func TestShapeOpen(t *testing.T) {
	sk, rec := newRecorded(t, 100, 100)
	sk.NoFill()
	sk.BeginShape()
	sk.Vertex(0, 0)
	sk.Vertex(10, 0)
	sk.EndShape(false)
	expectCalls(t, rec.Strings(), []string{"beginPath()", "moveTo(0,0)", "lineTo(10,0)", "stroke()"})
}

func TestBezierVertex(t *testing.T) {
	sk, rec := newRecorded(t, 100, 100)
	sk.NoStroke()
	sk.BeginShape()
	sk.BezierVertex(1, 1, 2, 2, 3, 3)
	sk.BezierVertex(4, 4, 5, 5, 6, 6)
	sk.EndShape(false)
	if sk.Config().Shape {
		t.Error("EndShape should leave the flag disarmed")
	}
	expectCalls(t, rec.Strings(), []string{
		"beginPath()", "moveTo(3,3)", "bezierCurveTo(4,4,5,5,6,6)", "fill()",
	})
}
