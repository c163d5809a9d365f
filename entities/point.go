package entities

import (
	"github.com/zooyer/dxf/core"
)

type PointEntity struct {
	BaseEntity
	Location core.Point
	Angle    float64 // 组码 50，X 轴夹角
}

func init() {
	Register("POINT", func() Entity { return NewPoint() })
}

func NewPoint() *PointEntity {
	return &PointEntity{BaseEntity: newBase("POINT")}
}

func (p *PointEntity) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, p)
}

func (p *PointEntity) absorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 50 {
		ctx.Float(t, &p.Angle)
		return true
	}
	return absorbPoint(ctx, t, 0, &p.Location)
}

func (p *PointEntity) markers() []string { return []string{"AcDbPoint"} }

func (p *PointEntity) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("POINT")
	p.Attr.emit(ctx, w, "AcDbPoint")
	writePoint(w, 0, p.Location)
	if p.Angle != 0 {
		w.Float(50, p.Angle)
	}
	p.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (p *PointEntity) BBox() core.BBox {
	return core.BBox{Min: p.Location, Max: p.Location}
}
