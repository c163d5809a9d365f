package entities

import (
	"github.com/zooyer/dxf/core"
)

type Leader struct {
	BaseEntity
	StyleName    string       // 组码 3，标注样式
	ArrowEnabled int          // 组码 71
	PathType     int          // 组码 72，0 直线段 1 样条
	Creation     int          // 组码 73
	HookDir      int          // 组码 74
	Hookline     int          // 组码 75
	TextHeight   float64      // 组码 40
	TextWidth    float64      // 组码 41
	Vertices     []core.Point // 组码 10/20/30，每个 10 开启新顶点
	Horizontal   core.Point   // 组码 211/221/231
	Offset1      core.Point   // 组码 212/222/232
	Offset2      core.Point   // 组码 213/223/233
}

func init() {
	Register("LEADER", func() Entity { return NewLeader() })
}

func NewLeader() *Leader {
	l := &Leader{BaseEntity: newBase("LEADER")}
	l.StyleName = DefaultTextStyle
	l.Horizontal = core.Point{X: 1}
	return l
}

func (l *Leader) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, l)
}

func (l *Leader) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 3:
		l.StyleName = t.AsString()
	case 10:
		var p core.Point
		ctx.Float(t, &p.X)
		l.Vertices = append(l.Vertices, p)
	case 20:
		if n := len(l.Vertices); n > 0 {
			ctx.Float(t, &l.Vertices[n-1].Y)
		}
	case 30:
		if n := len(l.Vertices); n > 0 {
			ctx.Float(t, &l.Vertices[n-1].Z)
		}
	case 40:
		ctx.Float(t, &l.TextHeight)
	case 41:
		ctx.Float(t, &l.TextWidth)
	case 71:
		ctx.Int(t, &l.ArrowEnabled)
	case 72:
		ctx.Int(t, &l.PathType)
	case 73:
		ctx.Int(t, &l.Creation)
	case 74:
		ctx.Int(t, &l.HookDir)
	case 75:
		ctx.Int(t, &l.Hookline)
	case 76:
		// 顶点数由实际列表重建
	default:
		return absorbPoint(ctx, t, 201, &l.Horizontal) ||
			absorbPoint(ctx, t, 202, &l.Offset1) ||
			absorbPoint(ctx, t, 203, &l.Offset2)
	}
	return true
}

func (l *Leader) markers() []string { return []string{"AcDbLeader"} }

func (l *Leader) Write(ctx *core.Context, w *core.Writer) error {
	if l.StyleName == "" {
		return missingName("LEADER", "dimension style name")
	}
	w.Name("LEADER")
	l.Attr.emit(ctx, w, "AcDbLeader")
	w.Tag(3, l.StyleName)
	w.Int(71, l.ArrowEnabled)
	w.Int(72, l.PathType)
	w.Int(73, l.Creation)
	w.Int(74, l.HookDir)
	w.Int(75, l.Hookline)
	if l.TextHeight != 0 || l.TextWidth != 0 {
		w.Float(40, l.TextHeight)
		w.Float(41, l.TextWidth)
	}
	w.Int(76, len(l.Vertices))
	for _, p := range l.Vertices {
		writePoint(w, 0, p)
	}
	return w.Err()
}

func (l *Leader) BBox() core.BBox {
	return bboxOf(l.Vertices...)
}
