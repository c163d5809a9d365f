package entities

import (
	"fmt"

	"github.com/zooyer/dxf/core"
)

type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64 // 度
	EndAngle   float64 // 度
}

func init() {
	Register("ARC", func() Entity { return NewArc() })
}

func NewArc() *Arc {
	return &Arc{BaseEntity: newBase("ARC")}
}

func (a *Arc) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, a)
}

func (a *Arc) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 40:
		ctx.Float(t, &a.Radius)
		if a.Radius < 0 {
			ctx.Report(core.DiagInvariant, "negative radius %f, reset to 0", a.Radius)
			a.Radius = 0
		}
	case 50:
		ctx.Float(t, &a.StartAngle)
	case 51:
		ctx.Float(t, &a.EndAngle)
	default:
		return absorbPoint(ctx, t, 0, &a.Center)
	}
	return true
}

// ARC 在 R13+ 先带 AcDbCircle 标记写圆心半径，再带 AcDbArc 标记写角度
func (a *Arc) markers() []string { return []string{"AcDbCircle", "AcDbArc"} }

func (a *Arc) Write(ctx *core.Context, w *core.Writer) error {
	if a.Radius < 0 {
		return fmt.Errorf("ARC: %w: radius %f", core.ErrInvalidValue, a.Radius)
	}
	w.Name("ARC")
	a.Attr.emit(ctx, w, "AcDbCircle")
	writePoint(w, 0, a.Center)
	w.Float(40, a.Radius)
	if ctx.Version >= core.R13 {
		w.Tag(100, "AcDbArc")
	}
	w.Float(50, a.StartAngle)
	w.Float(51, a.EndAngle)
	a.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (a *Arc) BBox() core.BBox {
	// 粗略处理：使用整圆范围
	return core.BBox{
		Min: core.Point{X: a.Center.X - a.Radius, Y: a.Center.Y - a.Radius, Z: a.Center.Z},
		Max: core.Point{X: a.Center.X + a.Radius, Y: a.Center.Y + a.Radius, Z: a.Center.Z},
	}
}
