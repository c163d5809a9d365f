package entities

import (
	"github.com/zooyer/dxf/core"
)

type Text struct {
	BaseEntity
	Value      string     // 组码 1
	Location   core.Point // 组码 10，第一对齐点
	Alignment  core.Point // 组码 11，第二对齐点
	Height     float64    // 组码 40
	Rotation   float64    // 组码 50，度
	XScale     float64    // 组码 41，相对宽度因子
	Oblique    float64    // 组码 51，倾斜角
	Style      string     // 组码 7，默认 STANDARD
	Generation int        // 组码 71，镜像标志
	HJust      int        // 组码 72，水平对齐
	VJust      int        // 组码 73，垂直对齐
}

func init() {
	Register("TEXT", func() Entity { return NewText() })
}

func NewText() *Text {
	t := &Text{BaseEntity: newBase("TEXT")}
	t.Height = 1
	t.XScale = 1
	t.Style = DefaultTextStyle
	return t
}

func (t *Text) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, t)
}

func (t *Text) absorb(ctx *core.Context, tag core.Tag) bool {
	switch tag.Code {
	case 1:
		t.Value = tag.AsString()
	case 7:
		t.Style = tag.AsString()
	case 40:
		ctx.Float(tag, &t.Height)
	case 41:
		ctx.Float(tag, &t.XScale)
	case 50:
		ctx.Float(tag, &t.Rotation)
	case 51:
		ctx.Float(tag, &t.Oblique)
	case 71:
		ctx.Int(tag, &t.Generation)
	case 72:
		ctx.Int(tag, &t.HJust)
	case 73:
		ctx.Int(tag, &t.VJust)
	default:
		return absorbPoint(ctx, tag, 0, &t.Location) || absorbPoint(ctx, tag, 1, &t.Alignment)
	}
	return true
}

func (t *Text) markers() []string { return []string{"AcDbText"} }

func (t *Text) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("TEXT")
	t.Attr.emit(ctx, w, "AcDbText")
	writePoint(w, 0, t.Location)
	w.Float(40, t.Height)
	w.Tag(1, t.Value)
	t.writeOptions(ctx, w)
	if t.VJust != 0 {
		w.Int(73, t.VJust)
	}
	t.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

// writeOptions 写出 TEXT/ATTDEF/ATTRIB 共用的可选部分
func (t *Text) writeOptions(ctx *core.Context, w *core.Writer) {
	if t.Rotation != 0 {
		w.Float(50, t.Rotation)
	}
	if t.XScale != 1 {
		w.Float(41, t.XScale)
	}
	if t.Oblique != 0 {
		w.Float(51, t.Oblique)
	}
	style := t.Style
	if style == "" {
		ctx.Report(core.DiagDefault, "empty text style, defaulting to %q", DefaultTextStyle)
		style = DefaultTextStyle
	}
	if style != DefaultTextStyle {
		w.Tag(7, style)
	}
	if t.Generation != 0 {
		w.Int(71, t.Generation)
	}
	if t.HJust != 0 {
		w.Int(72, t.HJust)
		writePoint(w, 1, t.Alignment)
	}
}

func (t *Text) BBox() core.BBox {
	return core.BBox{Min: t.Location, Max: t.Location}
}
