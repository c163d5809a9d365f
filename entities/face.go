package entities

import (
	"github.com/zooyer/dxf/core"
)

// Face3D 三维面片，组码 70 为隐藏边标志位
type Face3D struct {
	BaseEntity
	P0, P1, P2, P3 core.Point
	EdgeFlags      int // 组码 70，位 1/2/4/8 对应四条边不可见
	hasP3          bool
}

func init() {
	Register("3DFACE", func() Entity { return NewFace3D() })
}

func NewFace3D() *Face3D {
	return &Face3D{BaseEntity: newBase("3DFACE")}
}

func (f *Face3D) Parse(ctx *core.Context, s *core.Scanner) error {
	if err := parseEntity(ctx, s, f); err != nil {
		return err
	}
	if !f.hasP3 {
		f.P3 = f.P2
	}
	return nil
}

func (f *Face3D) absorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 70 {
		ctx.Int(t, &f.EdgeFlags)
		return true
	}
	if t.Code == 13 || t.Code == 23 || t.Code == 33 {
		f.hasP3 = true
	}
	return absorbPoint(ctx, t, 0, &f.P0) ||
		absorbPoint(ctx, t, 1, &f.P1) ||
		absorbPoint(ctx, t, 2, &f.P2) ||
		absorbPoint(ctx, t, 3, &f.P3)
}

func (f *Face3D) markers() []string { return []string{"AcDbFace"} }

func (f *Face3D) Write(ctx *core.Context, w *core.Writer) error {
	p3 := f.P3
	if !f.hasP3 && p3 == (core.Point{}) {
		p3 = f.P2
	}
	w.Name("3DFACE")
	f.Attr.emit(ctx, w, "AcDbFace")
	writePoint(w, 0, f.P0)
	writePoint(w, 1, f.P1)
	writePoint(w, 2, f.P2)
	writePoint(w, 3, p3)
	if f.EdgeFlags != 0 {
		w.Int(70, f.EdgeFlags)
	}
	return w.Err()
}

func (f *Face3D) BBox() core.BBox {
	return bboxOf(f.P0, f.P1, f.P2, f.P3)
}
