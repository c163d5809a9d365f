package entities

import (
	"github.com/zooyer/dxf/core"
)

// View 代表 TABLES 段里的命名视图记录
type View struct {
	BaseEntity
	Name       string     // 组码 2
	Flags      int        // 组码 70，1 表示图纸空间视图
	Height     float64    // 组码 40
	Width      float64    // 组码 41
	Center     core.Point // 组码 10，二维
	Direction  core.Point // 组码 11，观察方向
	Target     core.Point // 组码 12
	LensLength float64    // 组码 42
	FrontClip  float64    // 组码 43
	BackClip   float64    // 组码 44
	Twist      float64    // 组码 50
	Mode       int        // 组码 71
}

func init() {
	Register("VIEW", func() Entity { return NewView() })
}

func NewView() *View {
	v := &View{BaseEntity: newBase("VIEW")}
	v.Height = 1
	v.Width = 1
	v.Direction = core.Point{Z: 1}
	v.LensLength = 50
	return v
}

func (v *View) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, v)
}

func (v *View) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		v.Name = t.AsString()
	case 40:
		ctx.Float(t, &v.Height)
	case 41:
		ctx.Float(t, &v.Width)
	case 42:
		ctx.Float(t, &v.LensLength)
	case 43:
		ctx.Float(t, &v.FrontClip)
	case 44:
		ctx.Float(t, &v.BackClip)
	case 50:
		ctx.Float(t, &v.Twist)
	case 70:
		ctx.Int(t, &v.Flags)
	case 71:
		ctx.Int(t, &v.Mode)
	default:
		return absorbPoint(ctx, t, 0, &v.Center) ||
			absorbPoint(ctx, t, 1, &v.Direction) ||
			absorbPoint(ctx, t, 2, &v.Target)
	}
	return true
}

func (v *View) markers() []string {
	return []string{"AcDbSymbolTableRecord", "AcDbViewTableRecord"}
}

func (v *View) Write(ctx *core.Context, w *core.Writer) error {
	if v.Name == "" {
		return missingName("VIEW", "view name")
	}
	emitTableRecord(ctx, w, "VIEW", 5, v.Attr.Handle, "AcDbViewTableRecord")
	w.Tag(2, v.Name)
	w.Int(70, v.Flags)
	w.Float(40, v.Height)
	w.Float(10, v.Center.X)
	w.Float(20, v.Center.Y)
	w.Float(41, v.Width)
	writePoint(w, 1, v.Direction)
	writePoint(w, 2, v.Target)
	w.Float(42, v.LensLength)
	w.Float(43, v.FrontClip)
	w.Float(44, v.BackClip)
	w.Float(50, v.Twist)
	w.Int(71, v.Mode)
	return w.Err()
}
