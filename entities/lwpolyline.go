package entities

import (
	"github.com/zooyer/dxf/core"
)

// LWVertex 轻量多段线的顶点：平面坐标 + 可选凸度与宽度
type LWVertex struct {
	X, Y       float64
	StartWidth float64 // 组码 40
	EndWidth   float64 // 组码 41
	Bulge      float64 // 组码 42
}

type LWPolyline struct {
	BaseEntity
	Flags      int     // 组码 70，位 1 = 闭合
	ConstWidth float64 // 组码 43
	Vertices   []LWVertex
}

func init() {
	Register("LWPOLYLINE", func() Entity { return NewLWPolyline() })
}

func NewLWPolyline() *LWPolyline {
	return &LWPolyline{BaseEntity: newBase("LWPOLYLINE")}
}

func (l *LWPolyline) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, l)
}

func (l *LWPolyline) absorb(ctx *core.Context, t core.Tag) bool {
	last := len(l.Vertices) - 1
	switch t.Code {
	case 10:
		// 每个 10 开启一个新顶点
		var v LWVertex
		ctx.Float(t, &v.X)
		l.Vertices = append(l.Vertices, v)
	case 20:
		if last >= 0 {
			ctx.Float(t, &l.Vertices[last].Y)
		}
	case 40:
		if last >= 0 {
			ctx.Float(t, &l.Vertices[last].StartWidth)
		}
	case 41:
		if last >= 0 {
			ctx.Float(t, &l.Vertices[last].EndWidth)
		}
	case 42:
		if last >= 0 {
			ctx.Float(t, &l.Vertices[last].Bulge)
		}
	case 43:
		ctx.Float(t, &l.ConstWidth)
	case 70:
		ctx.Int(t, &l.Flags)
	case 90:
		// 顶点数由实际顶点重建，读取时只消费
	default:
		return false
	}
	return true
}

func (l *LWPolyline) markers() []string { return []string{"AcDbPolyline"} }

func (l *LWPolyline) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("LWPOLYLINE")
	l.Attr.emit(ctx, w, "AcDbPolyline")
	w.Int(90, len(l.Vertices))
	w.Int(70, l.Flags)
	if l.ConstWidth != 0 {
		w.Float(43, l.ConstWidth)
	}
	if l.Attr.Elevation != 0 {
		w.Float(38, l.Attr.Elevation)
	}
	for _, v := range l.Vertices {
		w.Float(10, v.X)
		w.Float(20, v.Y)
		if v.StartWidth != 0 || v.EndWidth != 0 {
			w.Float(40, v.StartWidth)
			w.Float(41, v.EndWidth)
		}
		if v.Bulge != 0 {
			w.Float(42, v.Bulge)
		}
	}
	l.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (l *LWPolyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}
	box := core.BBox{
		Min: core.Point{X: l.Vertices[0].X, Y: l.Vertices[0].Y},
		Max: core.Point{X: l.Vertices[0].X, Y: l.Vertices[0].Y},
	}
	for _, v := range l.Vertices {
		if v.X < box.Min.X {
			box.Min.X = v.X
		}
		if v.Y < box.Min.Y {
			box.Min.Y = v.Y
		}
		if v.X > box.Max.X {
			box.Max.X = v.X
		}
		if v.Y > box.Max.Y {
			box.Max.Y = v.Y
		}
	}
	return box
}
