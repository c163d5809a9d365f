package entities

import (
	"github.com/zooyer/dxf/core"
)

// Ray 射线：起点 + 单位方向，R13 引入
type Ray struct {
	BaseEntity
	Base      core.Point
	Direction core.Point
}

func init() {
	Register("RAY", func() Entity { return NewRay() })
}

func NewRay() *Ray {
	r := &Ray{BaseEntity: newBase("RAY")}
	r.Direction = core.Point{X: 1}
	return r
}

func (r *Ray) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, r)
}

func (r *Ray) absorb(ctx *core.Context, t core.Tag) bool {
	return absorbPoint(ctx, t, 0, &r.Base) || absorbPoint(ctx, t, 1, &r.Direction)
}

func (r *Ray) markers() []string { return []string{"AcDbRay"} }

func (r *Ray) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("RAY")
	r.Attr.emit(ctx, w, "AcDbRay")
	writePoint(w, 0, r.Base)
	writePoint(w, 1, r.Direction)
	return w.Err()
}

func (r *Ray) BBox() core.BBox {
	return core.BBox{Min: r.Base, Max: r.Base}
}
