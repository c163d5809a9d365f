package entities

import (
	"github.com/zooyer/dxf/core"
)

// UCS 代表 TABLES 段里的用户坐标系记录
type UCS struct {
	BaseEntity
	Name      string     // 组码 2
	Flags     int        // 组码 70
	Origin    core.Point // 组码 10
	XAxis     core.Point // 组码 11
	YAxis     core.Point // 组码 12
	OrthoType int        // 组码 79，R2000 起
	Elevation float64    // 组码 146，R2000 起
}

func init() {
	Register("UCS", func() Entity { return NewUCS() })
}

func NewUCS() *UCS {
	u := &UCS{BaseEntity: newBase("UCS")}
	u.XAxis = core.Point{X: 1}
	u.YAxis = core.Point{Y: 1}
	return u
}

func (u *UCS) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, u)
}

func (u *UCS) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		u.Name = t.AsString()
	case 70:
		ctx.Int(t, &u.Flags)
	case 79:
		ctx.Gate(core.R2000, 79)
		ctx.Int(t, &u.OrthoType)
	case 146:
		ctx.Gate(core.R2000, 146)
		ctx.Float(t, &u.Elevation)
	default:
		return absorbPoint(ctx, t, 0, &u.Origin) ||
			absorbPoint(ctx, t, 1, &u.XAxis) ||
			absorbPoint(ctx, t, 2, &u.YAxis)
	}
	return true
}

func (u *UCS) markers() []string {
	return []string{"AcDbSymbolTableRecord", "AcDbUCSTableRecord"}
}

func (u *UCS) Write(ctx *core.Context, w *core.Writer) error {
	if u.Name == "" {
		return missingName("UCS", "coordinate system name")
	}
	emitTableRecord(ctx, w, "UCS", 5, u.Attr.Handle, "AcDbUCSTableRecord")
	w.Tag(2, u.Name)
	w.Int(70, u.Flags)
	writePoint(w, 0, u.Origin)
	writePoint(w, 1, u.XAxis)
	writePoint(w, 2, u.YAxis)
	if ctx.Version >= core.R2000 {
		w.Int(79, u.OrthoType)
		w.Float(146, u.Elevation)
	}
	return w.Err()
}
