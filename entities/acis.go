package entities

import (
	"github.com/zooyer/dxf/core"
)

// acisData 3DSOLID/BODY/REGION 共用的 ACIS 建模器数据：
// 组码 1 与续行 3 交错出现，按输入顺序原样保存
type acisData struct {
	BaseEntity
	Format int        // 组码 70，建模器格式版本
	Lines  []core.Tag // 组码 1/3 的专有数据行
}

type Solid3D struct {
	acisData
}

type Body struct {
	acisData
}

type Region struct {
	acisData
}

func init() {
	Register("3DSOLID", func() Entity { return NewSolid3D() })
	Register("BODY", func() Entity { return NewBody() })
	Register("REGION", func() Entity { return NewRegion() })
}

func newACIS(typeName string) acisData {
	return acisData{BaseEntity: newBase(typeName), Format: 1}
}

func NewSolid3D() *Solid3D { return &Solid3D{acisData: newACIS("3DSOLID")} }
func NewBody() *Body       { return &Body{acisData: newACIS("BODY")} }
func NewRegion() *Region   { return &Region{acisData: newACIS("REGION")} }

func (a *acisData) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 1, 3:
		a.Lines = append(a.Lines, t)
	case 70:
		ctx.Int(t, &a.Format)
	default:
		return false
	}
	return true
}

func (a *acisData) write(ctx *core.Context, w *core.Writer, kind, marker string) error {
	w.Name(kind)
	a.Attr.emit(ctx, w, "AcDbModelerGeometry")
	w.Int(70, a.Format)
	for _, line := range a.Lines {
		w.Tag(line.Code, line.Value)
	}
	if marker != "" && ctx.Version >= core.R13 {
		w.Tag(100, marker)
	}
	return w.Err()
}

func (a *acisData) BBox() core.BBox { return core.BBox{} }

func (e *Solid3D) Parse(ctx *core.Context, s *core.Scanner) error { return parseEntity(ctx, s, e) }
func (e *Body) Parse(ctx *core.Context, s *core.Scanner) error    { return parseEntity(ctx, s, e) }
func (e *Region) Parse(ctx *core.Context, s *core.Scanner) error  { return parseEntity(ctx, s, e) }

func (e *Solid3D) markers() []string { return []string{"AcDbModelerGeometry", "AcDb3dSolid"} }
func (e *Body) markers() []string    { return []string{"AcDbModelerGeometry"} }
func (e *Region) markers() []string  { return []string{"AcDbModelerGeometry"} }

func (e *Solid3D) Write(ctx *core.Context, w *core.Writer) error {
	return e.write(ctx, w, "3DSOLID", "AcDb3dSolid")
}

func (e *Body) Write(ctx *core.Context, w *core.Writer) error {
	return e.write(ctx, w, "BODY", "")
}

func (e *Region) Write(ctx *core.Context, w *core.Writer) error {
	return e.write(ctx, w, "REGION", "")
}
