package entities

import (
	"github.com/zooyer/dxf/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register("LINE", func() Entity { return NewLine() })
}

func NewLine() *Line {
	return &Line{BaseEntity: newBase("LINE")}
}

func (l *Line) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, l)
}

func (l *Line) absorb(ctx *core.Context, t core.Tag) bool {
	return absorbPoint(ctx, t, 0, &l.Start) || absorbPoint(ctx, t, 1, &l.End)
}

func (l *Line) markers() []string { return []string{"AcDbLine"} }

func (l *Line) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("LINE")
	l.Attr.emit(ctx, w, "AcDbLine")
	writePoint(w, 0, l.Start)
	writePoint(w, 1, l.End)
	l.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (l *Line) BBox() core.BBox {
	return bboxOf(l.Start, l.End)
}
