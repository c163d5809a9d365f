package entities

import (
	"github.com/zooyer/dxf/core"
)

type Spline struct {
	BaseEntity
	Flags        int          // 组码 70
	Degree       int          // 组码 71
	KnotTol      float64      // 组码 42
	ControlTol   float64      // 组码 43
	FitTol       float64      // 组码 44
	StartTangent core.Point   // 组码 12
	EndTangent   core.Point   // 组码 13
	Knots        []float64    // 组码 40，重复
	Weights      []float64    // 组码 41，重复
	Controls     []core.Point // 组码 10/20/30，每个 10 开启新点
	Fits         []core.Point // 组码 11/21/31，每个 11 开启新点
}

func init() {
	Register("SPLINE", func() Entity { return NewSpline() })
}

func NewSpline() *Spline {
	s := &Spline{BaseEntity: newBase("SPLINE")}
	s.Degree = 3
	s.KnotTol = 1e-7
	s.ControlTol = 1e-7
	s.FitTol = 1e-10
	return s
}

func (e *Spline) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, e)
}

func (e *Spline) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 10:
		var p core.Point
		ctx.Float(t, &p.X)
		e.Controls = append(e.Controls, p)
	case 20:
		if n := len(e.Controls); n > 0 {
			ctx.Float(t, &e.Controls[n-1].Y)
		}
	case 30:
		if n := len(e.Controls); n > 0 {
			ctx.Float(t, &e.Controls[n-1].Z)
		}
	case 11:
		var p core.Point
		ctx.Float(t, &p.X)
		e.Fits = append(e.Fits, p)
	case 21:
		if n := len(e.Fits); n > 0 {
			ctx.Float(t, &e.Fits[n-1].Y)
		}
	case 31:
		if n := len(e.Fits); n > 0 {
			ctx.Float(t, &e.Fits[n-1].Z)
		}
	case 40:
		var k float64
		ctx.Float(t, &k)
		e.Knots = append(e.Knots, k)
	case 41:
		var v float64
		ctx.Float(t, &v)
		e.Weights = append(e.Weights, v)
	case 42:
		ctx.Float(t, &e.KnotTol)
	case 43:
		ctx.Float(t, &e.ControlTol)
	case 44:
		ctx.Float(t, &e.FitTol)
	case 70:
		ctx.Int(t, &e.Flags)
	case 71:
		ctx.Int(t, &e.Degree)
	case 72, 73, 74:
		// 结/控制点/拟合点数量由实际列表重建，读取时只消费
	default:
		return absorbPoint(ctx, t, 2, &e.StartTangent) || absorbPoint(ctx, t, 3, &e.EndTangent)
	}
	return true
}

func (e *Spline) markers() []string { return []string{"AcDbSpline"} }

func (e *Spline) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("SPLINE")
	e.Attr.emit(ctx, w, "AcDbSpline")
	e.Attr.emitExtrusion(ctx, w)
	w.Int(70, e.Flags)
	w.Int(71, e.Degree)
	w.Int(72, len(e.Knots))
	w.Int(73, len(e.Controls))
	w.Int(74, len(e.Fits))
	for _, k := range e.Knots {
		w.Float(40, k)
	}
	for _, v := range e.Weights {
		w.Float(41, v)
	}
	for _, p := range e.Controls {
		writePoint(w, 0, p)
	}
	for _, p := range e.Fits {
		writePoint(w, 1, p)
	}
	return w.Err()
}

func (e *Spline) BBox() core.BBox {
	return bboxOf(append(append([]core.Point{}, e.Controls...), e.Fits...)...)
}
