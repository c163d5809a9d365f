package entities

import (
	"math"

	"github.com/zooyer/dxf/core"
)

type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point // 组码 11，相对圆心的长轴端点
	Ratio      float64    // 组码 40，短长轴比
	StartParam float64    // 组码 41，弧度
	EndParam   float64    // 组码 42，弧度
}

func init() {
	Register("ELLIPSE", func() Entity { return NewEllipse() })
}

func NewEllipse() *Ellipse {
	e := &Ellipse{BaseEntity: newBase("ELLIPSE")}
	e.Ratio = 1
	e.EndParam = 2 * math.Pi
	return e
}

func (e *Ellipse) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, e)
}

func (e *Ellipse) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 40:
		ctx.Float(t, &e.Ratio)
	case 41:
		ctx.Float(t, &e.StartParam)
	case 42:
		ctx.Float(t, &e.EndParam)
	default:
		return absorbPoint(ctx, t, 0, &e.Center) || absorbPoint(ctx, t, 1, &e.MajorAxis)
	}
	return true
}

func (e *Ellipse) markers() []string { return []string{"AcDbEllipse"} }

func (e *Ellipse) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("ELLIPSE")
	e.Attr.emit(ctx, w, "AcDbEllipse")
	writePoint(w, 0, e.Center)
	writePoint(w, 1, e.MajorAxis)
	e.Attr.emitExtrusion(ctx, w)
	w.Float(40, e.Ratio)
	w.Float(41, e.StartParam)
	w.Float(42, e.EndParam)
	return w.Err()
}

func (e *Ellipse) BBox() core.BBox {
	major := math.Hypot(e.MajorAxis.X, e.MajorAxis.Y)
	minor := major * e.Ratio
	r := math.Max(major, minor)
	return core.BBox{
		Min: core.Point{X: e.Center.X - r, Y: e.Center.Y - r, Z: e.Center.Z},
		Max: core.Point{X: e.Center.X + r, Y: e.Center.Y + r, Z: e.Center.Z},
	}
}
