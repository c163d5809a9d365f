package entities

import (
	"github.com/zooyer/dxf/core"
)

// MLineVertex 多线的一个顶点及其段方向/斜接方向与分段参数
type MLineVertex struct {
	Location  core.Point // 组码 11/21/31
	Direction core.Point // 组码 12/22/32
	Miter     core.Point // 组码 13/23/33
	Params    []float64  // 组码 41，前导 74 给出数量
}

type MLine struct {
	BaseEntity
	StyleName     string // 组码 2
	StyleHandle   string // 组码 340
	Scale         float64
	Justification int // 组码 70
	Flags         int // 组码 71
	ElementCount  int // 组码 73，样式中的线元数
	Start         core.Point
	Vertices      []MLineVertex
}

func init() {
	Register("MLINE", func() Entity { return NewMLine() })
}

func NewMLine() *MLine {
	m := &MLine{BaseEntity: newBase("MLINE")}
	m.StyleName = DefaultTextStyle
	m.Scale = 1
	return m
}

func (m *MLine) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, m)
}

func (m *MLine) last() *MLineVertex {
	if len(m.Vertices) == 0 {
		return nil
	}
	return &m.Vertices[len(m.Vertices)-1]
}

func (m *MLine) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		m.StyleName = t.AsString()
	case 340:
		m.StyleHandle = t.AsString()
	case 40:
		ctx.Float(t, &m.Scale)
	case 41:
		if v := m.last(); v != nil {
			var p float64
			ctx.Float(t, &p)
			v.Params = append(v.Params, p)
		}
	case 70:
		ctx.Int(t, &m.Justification)
	case 71:
		ctx.Int(t, &m.Flags)
	case 72:
		// 顶点数由实际列表重建
	case 73:
		ctx.Int(t, &m.ElementCount)
	case 74, 75:
		// 参数数量前缀，按后续 41/42 实际出现重建
	case 11:
		var v MLineVertex
		ctx.Float(t, &v.Location.X)
		m.Vertices = append(m.Vertices, v)
	case 21:
		if v := m.last(); v != nil {
			ctx.Float(t, &v.Location.Y)
		}
	case 31:
		if v := m.last(); v != nil {
			ctx.Float(t, &v.Location.Z)
		}
	case 12, 22, 32:
		if v := m.last(); v != nil {
			return absorbPoint(ctx, t, 2, &v.Direction)
		}
	case 13, 23, 33:
		if v := m.last(); v != nil {
			return absorbPoint(ctx, t, 3, &v.Miter)
		}
	default:
		return absorbPoint(ctx, t, 0, &m.Start)
	}
	return true
}

func (m *MLine) markers() []string { return []string{"AcDbMline"} }

func (m *MLine) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("MLINE")
	m.Attr.emit(ctx, w, "AcDbMline")
	w.Tag(2, m.StyleName)
	if m.StyleHandle != "" {
		w.Tag(340, m.StyleHandle)
	}
	w.Float(40, m.Scale)
	w.Int(70, m.Justification)
	w.Int(71, m.Flags)
	w.Int(72, len(m.Vertices))
	w.Int(73, m.ElementCount)
	writePoint(w, 0, m.Start)
	m.Attr.emitExtrusion(ctx, w)
	for _, v := range m.Vertices {
		writePoint(w, 1, v.Location)
		writePoint(w, 2, v.Direction)
		writePoint(w, 3, v.Miter)
		w.Int(74, len(v.Params))
		for _, p := range v.Params {
			w.Float(41, p)
		}
	}
	return w.Err()
}

func (m *MLine) BBox() core.BBox {
	points := []core.Point{m.Start}
	for _, v := range m.Vertices {
		points = append(points, v.Location)
	}
	return bboxOf(points...)
}
