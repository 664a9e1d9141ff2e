package sketch

import (
	"strings"

	"github.com/gogpu/sketch/surface"
)

// RectMode selects how Rect interprets its arguments.
type RectMode int

const (
	// RectCorner treats the arguments as top-left corner and size.
	RectCorner RectMode = iota
	// RectCorners treats the arguments as two opposite corners.
	RectCorners
	// RectRadius treats the arguments as center and half extents.
	RectRadius
	// RectCenter treats the arguments as center and size.
	RectCenter
)

var rectModeNames = [...]string{
	RectCorner:  "CORNER",
	RectCorners: "CORNERS",
	RectRadius:  "RADIUS",
	RectCenter:  "CENTER",
}

func (m RectMode) String() string { return enumName(rectModeNames[:], int(m)) }

func (m RectMode) valid() bool { return m >= RectCorner && m <= RectCenter }

// ParseRectMode parses a mode name; unknown names give RectCenter.
func ParseRectMode(name string) RectMode {
	return RectMode(parseEnum(rectModeNames[:], name, int(RectCenter)))
}

// EllipseMode selects how Ellipse interprets its arguments.
type EllipseMode int

const (
	// EllipseCenter treats the arguments as center and diameters.
	EllipseCenter EllipseMode = iota
	// EllipseRadius treats the arguments as center and radii.
	EllipseRadius
	// EllipseCorner treats the arguments as bounding box corner and size.
	EllipseCorner
	// EllipseCorners treats the arguments as opposite bounding box corners.
	EllipseCorners
)

var ellipseModeNames = [...]string{
	EllipseCenter:  "CENTER",
	EllipseRadius:  "RADIUS",
	EllipseCorner:  "CORNER",
	EllipseCorners: "CORNERS",
}

func (m EllipseMode) String() string { return enumName(ellipseModeNames[:], int(m)) }

func (m EllipseMode) valid() bool { return m >= EllipseCenter && m <= EllipseCorners }

// ParseEllipseMode parses a mode name; unknown names give EllipseCenter.
func ParseEllipseMode(name string) EllipseMode {
	return EllipseMode(parseEnum(ellipseModeNames[:], name, int(EllipseCenter)))
}

// ImageMode selects how Image interprets its arguments.
type ImageMode int

const (
	// ImageCorner places the top-left corner at the point.
	ImageCorner ImageMode = iota
	// ImageCorners treats the size arguments as the opposite corner.
	ImageCorners
	// ImageCenter centers the image on the point.
	ImageCenter
)

var imageModeNames = [...]string{
	ImageCorner:  "CORNER",
	ImageCorners: "CORNERS",
	ImageCenter:  "CENTER",
}

func (m ImageMode) String() string { return enumName(imageModeNames[:], int(m)) }

func (m ImageMode) valid() bool { return m >= ImageCorner && m <= ImageCenter }

// ParseImageMode parses a mode name; unknown names give ImageCenter.
func ParseImageMode(name string) ImageMode {
	return ImageMode(parseEnum(imageModeNames[:], name, int(ImageCenter)))
}

// StrokeCap is the Processing line cap.
type StrokeCap int

const (
	CapRound   StrokeCap = iota // rounded ends
	CapSquare                   // flat ends at the endpoints
	CapProject                  // flat ends extended by half the weight
)

var strokeCapNames = [...]string{
	CapRound:   "ROUND",
	CapSquare:  "SQUARE",
	CapProject: "PROJECT",
}

var strokeCapNative = [...]surface.LineCap{
	CapRound:   surface.LineCapRound,
	CapSquare:  surface.LineCapButt,
	CapProject: surface.LineCapSquare,
}

func (c StrokeCap) String() string { return enumName(strokeCapNames[:], int(c)) }

// ParseStrokeCap parses a cap name; unknown names give CapRound.
func ParseStrokeCap(name string) StrokeCap {
	return StrokeCap(parseEnum(strokeCapNames[:], name, int(CapRound)))
}

// StrokeJoin is the Processing line join.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota
	JoinBevel
	JoinRound
)

var strokeJoinNames = [...]string{
	JoinMiter: "MITER",
	JoinBevel: "BEVEL",
	JoinRound: "ROUND",
}

var strokeJoinNative = [...]surface.LineJoin{
	JoinMiter: surface.LineJoinMiter,
	JoinBevel: surface.LineJoinBevel,
	JoinRound: surface.LineJoinRound,
}

func (j StrokeJoin) String() string { return enumName(strokeJoinNames[:], int(j)) }

// ParseStrokeJoin parses a join name; unknown names give JoinMiter.
func ParseStrokeJoin(name string) StrokeJoin {
	return StrokeJoin(parseEnum(strokeJoinNames[:], name, int(JoinMiter)))
}

// HAlign is the horizontal text alignment.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

var hAlignNames = [...]string{
	AlignLeft:   "LEFT",
	AlignCenter: "CENTER",
	AlignRight:  "RIGHT",
}

var hAlignNative = [...]surface.TextAlign{
	AlignLeft:   surface.TextAlignLeft,
	AlignCenter: surface.TextAlignCenter,
	AlignRight:  surface.TextAlignRight,
}

func (a HAlign) String() string { return enumName(hAlignNames[:], int(a)) }

// ParseHAlign parses an alignment name; unknown names give AlignLeft.
func ParseHAlign(name string) HAlign {
	return HAlign(parseEnum(hAlignNames[:], name, int(AlignLeft)))
}

// VAlign is the vertical text alignment.
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignTop
	AlignBottom
	AlignMiddle
)

var vAlignNames = [...]string{
	AlignBaseline: "BASELINE",
	AlignTop:      "TOP",
	AlignBottom:   "BOTTOM",
	AlignMiddle:   "CENTER",
}

var vAlignNative = [...]surface.TextBaseline{
	AlignBaseline: surface.TextBaselineAlphabetic,
	AlignTop:      surface.TextBaselineTop,
	AlignBottom:   surface.TextBaselineBottom,
	AlignMiddle:   surface.TextBaselineMiddle,
}

func (a VAlign) String() string { return enumName(vAlignNames[:], int(a)) }

// ParseVAlign parses an alignment name; "CENTER" gives AlignMiddle and
// unknown names give AlignBaseline.
func ParseVAlign(name string) VAlign {
	return VAlign(parseEnum(vAlignNames[:], name, int(AlignBaseline)))
}

// native looks up v in table, returning table[def] when v is out of range.
func native[T any](table []T, v, def int) (T, bool) {
	if v < 0 || v >= len(table) {
		return table[def], false
	}
	return table[v], true
}

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return "UNKNOWN"
	}
	return names[v]
}

func parseEnum(names []string, name string, def int) int {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return i
		}
	}
	return def
}
