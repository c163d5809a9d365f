package entities

import (
	"github.com/zooyer/dxf/core"
)

type MText struct {
	BaseEntity
	Location    core.Point // 组码 10
	XAxis       core.Point // 组码 11，文字方向向量
	Height      float64    // 组码 40
	Width       float64    // 组码 41，参考矩形宽度
	Attachment  int        // 组码 71，锚点 1..9
	Direction   int        // 组码 72，书写方向
	Value       string     // 组码 1，正文（含续行 3 的拼接）
	Style       string     // 组码 7
	Rotation    float64    // 组码 50，度
	LineSpacing int        // 组码 73，行距风格，R2000 起
	LineFactor  float64    // 组码 44，行距系数，R2000 起
}

func init() {
	Register("MTEXT", func() Entity { return NewMText() })
}

func NewMText() *MText {
	m := &MText{BaseEntity: newBase("MTEXT")}
	m.Height = 1
	m.Attachment = 1
	m.Direction = 1
	m.Style = DefaultTextStyle
	m.XAxis = core.Point{X: 1}
	return m
}

func (m *MText) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, m)
}

func (m *MText) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 1:
		// 1 是正文的最后一段，追加在所有 3 段之后
		m.Value += t.AsString()
	case 3:
		m.Value += t.AsString()
	case 7:
		m.Style = t.AsString()
	case 40:
		ctx.Float(t, &m.Height)
	case 41:
		ctx.Float(t, &m.Width)
	case 44:
		ctx.Gate(core.R2000, 44)
		ctx.Float(t, &m.LineFactor)
	case 50:
		ctx.Float(t, &m.Rotation)
	case 71:
		ctx.Int(t, &m.Attachment)
	case 72:
		ctx.Int(t, &m.Direction)
	case 73:
		ctx.Gate(core.R2000, 73)
		ctx.Int(t, &m.LineSpacing)
	default:
		return absorbPoint(ctx, t, 0, &m.Location) || absorbPoint(ctx, t, 1, &m.XAxis)
	}
	return true
}

func (m *MText) markers() []string { return []string{"AcDbMText"} }

func (m *MText) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("MTEXT")
	m.Attr.emit(ctx, w, "AcDbMText")
	writePoint(w, 0, m.Location)
	w.Float(40, m.Height)
	if m.Width != 0 {
		w.Float(41, m.Width)
	}
	w.Int(71, m.Attachment)
	w.Int(72, m.Direction)

	// 正文超过 250 字符时按 DXF 规则拆成若干 3 段 + 一段 1
	value := m.Value
	for len(value) > 250 {
		w.Tag(3, value[:250])
		value = value[250:]
	}
	w.Tag(1, value)

	if m.Style != DefaultTextStyle && m.Style != "" {
		w.Tag(7, m.Style)
	}
	m.Attr.emitExtrusion(ctx, w)
	if m.Rotation != 0 {
		w.Float(50, m.Rotation)
	}
	if ctx.Version >= core.R2000 {
		if m.LineSpacing != 0 {
			w.Int(73, m.LineSpacing)
		}
		if m.LineFactor != 0 {
			w.Float(44, m.LineFactor)
		}
	}
	return w.Err()
}

func (m *MText) BBox() core.BBox {
	return core.BBox{Min: m.Location, Max: m.Location}
}
