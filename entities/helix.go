package entities

import (
	"github.com/zooyer/dxf/core"
)

// Helix 螺旋线，R2007 引入。样条部分沿用 SPLINE 的组码表，
// 螺旋参数挂在 AcDbHelix 子类之下。
type Helix struct {
	Spline
	MajorVersion int        // 组码 90
	MaintVersion int        // 组码 91
	AxisBase     core.Point // 组码 10 与样条控制点共用组码，按子类状态区分
	AxisStart    core.Point // 组码 11
	AxisVector   core.Point // 组码 12
	Radius       float64    // 组码 40
	Turns        float64    // 组码 41
	TurnHeight   float64    // 组码 42
	Handed       bool       // 组码 290，true 为右旋
	Constrain    int        // 组码 280
	inHelix      bool       // 已越过 AcDbHelix 标记
}

func init() {
	Register("HELIX", func() Entity { return NewHelix() })
}

func NewHelix() *Helix {
	h := &Helix{Spline: *NewSpline()}
	h.TypeName = "HELIX"
	h.MajorVersion = 1
	h.Handed = true
	h.AxisVector = core.Point{Z: 1}
	h.Turns = 1
	return h
}

func (h *Helix) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, h)
}

// preAbsorb 截获 AcDbHelix 段之后与样条重叠的组码
func (h *Helix) preAbsorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 100 && t.AsString() == "AcDbHelix" {
		h.inHelix = true
		return false // 交还给标记检查
	}
	if !h.inHelix {
		return false
	}
	switch t.Code {
	case 40:
		ctx.Float(t, &h.Radius)
	case 41:
		ctx.Float(t, &h.Turns)
	case 42:
		ctx.Float(t, &h.TurnHeight)
	default:
		return absorbPoint(ctx, t, 0, &h.AxisBase) ||
			absorbPoint(ctx, t, 1, &h.AxisStart) ||
			absorbPoint(ctx, t, 2, &h.AxisVector)
	}
	return true
}

func (h *Helix) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 90:
		ctx.Int(t, &h.MajorVersion)
	case 91:
		ctx.Int(t, &h.MaintVersion)
	case 280:
		ctx.Int(t, &h.Constrain)
	case 290:
		ctx.Bool(t, &h.Handed)
	default:
		return h.Spline.absorb(ctx, t)
	}
	return true
}

func (h *Helix) markers() []string { return []string{"AcDbSpline", "AcDbHelix"} }

func (h *Helix) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("HELIX")
	h.Attr.emit(ctx, w, "AcDbSpline")
	w.Int(70, h.Flags)
	w.Int(71, h.Degree)
	w.Int(72, len(h.Knots))
	w.Int(73, len(h.Controls))
	w.Int(74, len(h.Fits))
	for _, k := range h.Knots {
		w.Float(40, k)
	}
	for _, v := range h.Weights {
		w.Float(41, v)
	}
	for _, p := range h.Controls {
		writePoint(w, 0, p)
	}
	for _, p := range h.Fits {
		writePoint(w, 1, p)
	}
	if ctx.Version >= core.R13 {
		w.Tag(100, "AcDbHelix")
	}
	w.Int(90, h.MajorVersion)
	w.Int(91, h.MaintVersion)
	writePoint(w, 0, h.AxisBase)
	writePoint(w, 1, h.AxisStart)
	writePoint(w, 2, h.AxisVector)
	w.Float(40, h.Radius)
	w.Float(41, h.Turns)
	w.Float(42, h.TurnHeight)
	if h.Handed {
		w.Tag(290, "1")
	} else {
		w.Tag(290, "0")
	}
	w.Int(280, h.Constrain)
	return w.Err()
}
