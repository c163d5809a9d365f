package entities

import (
	"github.com/zooyer/dxf/core"
)

// VPort 代表 TABLES 段里的视口配置记录 (VPORT)，
// 活动配置的名称固定为 *ACTIVE。
type VPort struct {
	BaseEntity
	Name        string     // 组码 2
	Flags       int        // 组码 70
	LowerLeft   core.Point // 组码 10，二维，0..1 归一化
	UpperRight  core.Point // 组码 11，二维
	Center      core.Point // 组码 12，二维
	SnapBase    core.Point // 组码 13，二维
	SnapSpacing core.Point // 组码 14，二维
	GridSpacing core.Point // 组码 15，二维
	Direction   core.Point // 组码 16，观察方向
	Target      core.Point // 组码 17
	Height      float64    // 组码 40
	AspectRatio float64    // 组码 41
	LensLength  float64    // 组码 42
	FrontClip   float64    // 组码 43
	BackClip    float64    // 组码 44
	SnapAngle   float64    // 组码 50
	Twist       float64    // 组码 51
	ViewMode    int        // 组码 71
	CircleSides int        // 组码 72
	FastZoom    int        // 组码 73
	UCSIcon     int        // 组码 74
	SnapOn      int        // 组码 75
	GridOn      int        // 组码 76
}

func init() {
	Register("VPORT", func() Entity { return NewVPort() })
}

func NewVPort() *VPort {
	v := &VPort{BaseEntity: newBase("VPORT")}
	v.Name = "*ACTIVE"
	v.UpperRight = core.Point{X: 1, Y: 1}
	v.Direction = core.Point{Z: 1}
	v.Height = 1
	v.AspectRatio = 1
	v.LensLength = 50
	v.CircleSides = 100
	v.FastZoom = 1
	v.UCSIcon = 3
	return v
}

func (v *VPort) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, v)
}

func (v *VPort) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		v.Name = t.AsString()
	case 40:
		ctx.Float(t, &v.Height)
	case 41:
		ctx.Float(t, &v.AspectRatio)
	case 42:
		ctx.Float(t, &v.LensLength)
	case 43:
		ctx.Float(t, &v.FrontClip)
	case 44:
		ctx.Float(t, &v.BackClip)
	case 50:
		ctx.Float(t, &v.SnapAngle)
	case 51:
		ctx.Float(t, &v.Twist)
	case 70:
		ctx.Int(t, &v.Flags)
	case 71:
		ctx.Int(t, &v.ViewMode)
	case 72:
		ctx.Int(t, &v.CircleSides)
	case 73:
		ctx.Int(t, &v.FastZoom)
	case 74:
		ctx.Int(t, &v.UCSIcon)
	case 75:
		ctx.Int(t, &v.SnapOn)
	case 76:
		ctx.Int(t, &v.GridOn)
	default:
		return absorbPoint(ctx, t, 0, &v.LowerLeft) ||
			absorbPoint(ctx, t, 1, &v.UpperRight) ||
			absorbPoint(ctx, t, 2, &v.Center) ||
			absorbPoint(ctx, t, 3, &v.SnapBase) ||
			absorbPoint(ctx, t, 4, &v.SnapSpacing) ||
			absorbPoint(ctx, t, 5, &v.GridSpacing) ||
			absorbPoint(ctx, t, 6, &v.Direction) ||
			absorbPoint(ctx, t, 7, &v.Target)
	}
	return true
}

func (v *VPort) markers() []string {
	return []string{"AcDbSymbolTableRecord", "AcDbViewportTableRecord"}
}

func (v *VPort) Write(ctx *core.Context, w *core.Writer) error {
	if v.Name == "" {
		return missingName("VPORT", "viewport configuration name")
	}
	emitTableRecord(ctx, w, "VPORT", 5, v.Attr.Handle, "AcDbViewportTableRecord")
	w.Tag(2, v.Name)
	w.Int(70, v.Flags)
	w.Float(10, v.LowerLeft.X)
	w.Float(20, v.LowerLeft.Y)
	w.Float(11, v.UpperRight.X)
	w.Float(21, v.UpperRight.Y)
	w.Float(12, v.Center.X)
	w.Float(22, v.Center.Y)
	w.Float(13, v.SnapBase.X)
	w.Float(23, v.SnapBase.Y)
	w.Float(14, v.SnapSpacing.X)
	w.Float(24, v.SnapSpacing.Y)
	w.Float(15, v.GridSpacing.X)
	w.Float(25, v.GridSpacing.Y)
	writePoint(w, 6, v.Direction)
	writePoint(w, 7, v.Target)
	w.Float(40, v.Height)
	w.Float(41, v.AspectRatio)
	w.Float(42, v.LensLength)
	w.Float(43, v.FrontClip)
	w.Float(44, v.BackClip)
	w.Float(50, v.SnapAngle)
	w.Float(51, v.Twist)
	w.Int(71, v.ViewMode)
	w.Int(72, v.CircleSides)
	w.Int(73, v.FastZoom)
	w.Int(74, v.UCSIcon)
	w.Int(75, v.SnapOn)
	w.Int(76, v.GridOn)
	return w.Err()
}
