package entities

import (
	"github.com/zooyer/dxf/core"
)

// Viewport 代表图纸空间里的浮动视口实体 (VIEWPORT)
type Viewport struct {
	BaseEntity
	Center      core.Point // 组码 10，视口在图纸上的中心
	Width       float64    // 组码 40
	Height      float64    // 组码 41
	Status      int16      // 组码 68，<0 关闭 0 不显示 >0 显示层级
	ID          int16      // 组码 69
	ViewCenter  core.Point // 组码 12，二维
	SnapBase    core.Point // 组码 13，二维
	SnapSpacing core.Point // 组码 14，二维
	GridSpacing core.Point // 组码 15，二维
	Direction   core.Point // 组码 16
	Target      core.Point // 组码 17
	LensLength  float64    // 组码 42
	FrontClip   float64    // 组码 43
	BackClip    float64    // 组码 44
	ViewHeight  float64    // 组码 45
	SnapAngle   float64    // 组码 50
	Twist       float64    // 组码 51
	CircleSides int        // 组码 72
	StatusFlags int        // 组码 90，R2000 起
}

func init() {
	Register("VIEWPORT", func() Entity { return NewViewport() })
}

func NewViewport() *Viewport {
	v := &Viewport{BaseEntity: newBase("VIEWPORT")}
	v.Width = 1
	v.Height = 1
	v.Direction = core.Point{Z: 1}
	v.LensLength = 50
	v.ViewHeight = 1
	v.CircleSides = 100
	return v
}

func (v *Viewport) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, v)
}

func (v *Viewport) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 40:
		ctx.Float(t, &v.Width)
	case 41:
		ctx.Float(t, &v.Height)
	case 42:
		ctx.Float(t, &v.LensLength)
	case 43:
		ctx.Float(t, &v.FrontClip)
	case 44:
		ctx.Float(t, &v.BackClip)
	case 45:
		ctx.Float(t, &v.ViewHeight)
	case 50:
		ctx.Float(t, &v.SnapAngle)
	case 51:
		ctx.Float(t, &v.Twist)
	case 68:
		ctx.Int16(t, &v.Status)
	case 69:
		ctx.Int16(t, &v.ID)
	case 72:
		ctx.Int(t, &v.CircleSides)
	case 90:
		ctx.Gate(core.R2000, 90)
		ctx.Int(t, &v.StatusFlags)
	default:
		return absorbPoint(ctx, t, 0, &v.Center) ||
			absorbPoint(ctx, t, 2, &v.ViewCenter) ||
			absorbPoint(ctx, t, 3, &v.SnapBase) ||
			absorbPoint(ctx, t, 4, &v.SnapSpacing) ||
			absorbPoint(ctx, t, 5, &v.GridSpacing) ||
			absorbPoint(ctx, t, 6, &v.Direction) ||
			absorbPoint(ctx, t, 7, &v.Target)
	}
	return true
}

func (v *Viewport) markers() []string {
	return []string{"AcDbViewport"}
}

func (v *Viewport) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("VIEWPORT")
	v.Attr.emit(ctx, w, "AcDbViewport")
	writePoint(w, 0, v.Center)
	w.Float(40, v.Width)
	w.Float(41, v.Height)
	w.Int(68, int(v.Status))
	w.Int(69, int(v.ID))
	w.Float(12, v.ViewCenter.X)
	w.Float(22, v.ViewCenter.Y)
	w.Float(13, v.SnapBase.X)
	w.Float(23, v.SnapBase.Y)
	w.Float(14, v.SnapSpacing.X)
	w.Float(24, v.SnapSpacing.Y)
	w.Float(15, v.GridSpacing.X)
	w.Float(25, v.GridSpacing.Y)
	writePoint(w, 6, v.Direction)
	writePoint(w, 7, v.Target)
	w.Float(42, v.LensLength)
	w.Float(43, v.FrontClip)
	w.Float(44, v.BackClip)
	w.Float(45, v.ViewHeight)
	w.Float(50, v.SnapAngle)
	w.Float(51, v.Twist)
	w.Int(72, v.CircleSides)
	if ctx.Version >= core.R2000 {
		w.Int(90, v.StatusFlags)
	}
	return w.Err()
}

func (v *Viewport) BBox() core.BBox {
	half := core.Point{X: v.Width / 2, Y: v.Height / 2}
	return core.BBox{
		Min: core.Point{X: v.Center.X - half.X, Y: v.Center.Y - half.Y, Z: v.Center.Z},
		Max: core.Point{X: v.Center.X + half.X, Y: v.Center.Y + half.Y, Z: v.Center.Z},
	}
}
