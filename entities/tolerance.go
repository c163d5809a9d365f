package entities

import (
	"github.com/zooyer/dxf/core"
)

// Tolerance 形位公差框，文本为带控制符的公差串
type Tolerance struct {
	BaseEntity
	StyleName string     // 组码 3，标注样式
	Location  core.Point // 组码 10
	Value     string     // 组码 1
	XAxis     core.Point // 组码 11，框方向
}

func init() {
	Register("TOLERANCE", func() Entity { return NewTolerance() })
}

func NewTolerance() *Tolerance {
	t := &Tolerance{BaseEntity: newBase("TOLERANCE")}
	t.StyleName = DefaultTextStyle
	t.XAxis = core.Point{X: 1}
	return t
}

func (e *Tolerance) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, e)
}

func (e *Tolerance) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 1:
		e.Value = t.AsString()
	case 3:
		e.StyleName = t.AsString()
	default:
		return absorbPoint(ctx, t, 0, &e.Location) || absorbPoint(ctx, t, 1, &e.XAxis)
	}
	return true
}

func (e *Tolerance) markers() []string { return []string{"AcDbFcf"} }

func (e *Tolerance) Write(ctx *core.Context, w *core.Writer) error {
	if e.StyleName == "" {
		return missingName("TOLERANCE", "dimension style name")
	}
	w.Name("TOLERANCE")
	e.Attr.emit(ctx, w, "AcDbFcf")
	w.Tag(3, e.StyleName)
	writePoint(w, 0, e.Location)
	w.Tag(1, e.Value)
	writePoint(w, 1, e.XAxis)
	e.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (e *Tolerance) BBox() core.BBox {
	return core.BBox{Min: e.Location, Max: e.Location}
}
