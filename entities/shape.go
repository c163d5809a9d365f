package entities

import (
	"github.com/zooyer/dxf/core"
)

// Shape 代表形定义引用 (SHAPE)
type Shape struct {
	BaseEntity
	ShapeName      string     // 组码 2，引用 SHX 中的形名
	InsertionPoint core.Point // 组码 10
	Size           float64    // 组码 40
	Rotation       float64    // 组码 50
	XScale         float64    // 组码 41，默认 1
	Oblique        float64    // 组码 51
}

func init() {
	Register("SHAPE", func() Entity { return NewShape() })
}

func NewShape() *Shape {
	s := &Shape{BaseEntity: newBase("SHAPE")}
	s.Size = 1
	s.XScale = 1
	return s
}

func (s *Shape) Parse(ctx *core.Context, scanner *core.Scanner) error {
	return parseEntity(ctx, scanner, s)
}

func (s *Shape) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		s.ShapeName = t.AsString()
	case 40:
		ctx.Float(t, &s.Size)
	case 41:
		ctx.Float(t, &s.XScale)
	case 50:
		ctx.Float(t, &s.Rotation)
	case 51:
		ctx.Float(t, &s.Oblique)
	default:
		return absorbPoint(ctx, t, 0, &s.InsertionPoint)
	}
	return true
}

func (s *Shape) markers() []string {
	return []string{"AcDbShape"}
}

func (s *Shape) Write(ctx *core.Context, w *core.Writer) error {
	if s.ShapeName == "" {
		return missingName("SHAPE", "shape name")
	}
	w.Name("SHAPE")
	s.Attr.emit(ctx, w, "AcDbShape")
	writePoint(w, 0, s.InsertionPoint)
	w.Float(40, s.Size)
	w.Tag(2, s.ShapeName)
	if s.Rotation != 0 {
		w.Float(50, s.Rotation)
	}
	if s.XScale != 1 {
		w.Float(41, s.XScale)
	}
	if s.Oblique != 0 {
		w.Float(51, s.Oblique)
	}
	s.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (s *Shape) BBox() core.BBox {
	return bboxOf(s.InsertionPoint)
}
