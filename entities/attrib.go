package entities

import (
	"github.com/zooyer/dxf/core"
)

// Attrib 块引用携带的属性实例，TEXT 的扩展
type Attrib struct {
	Text
	Tag         string // 组码 2，属性标签，如 "序号"
	Flags       int    // 组码 70
	FieldLength int    // 组码 73
	VJustify    int    // 组码 74，ATTRIB/ATTDEF 的垂直对齐用 74 而不是 73
}

// AttDef 块定义中的属性模板，比 Attrib 多一条提示语
type AttDef struct {
	Attrib
	Prompt string // 组码 3
}

func init() {
	Register("ATTRIB", func() Entity { return NewAttrib() })
	Register("ATTDEF", func() Entity { return NewAttDef() })
}

func NewAttrib() *Attrib {
	a := &Attrib{Text: *NewText()}
	a.TypeName = "ATTRIB"
	return a
}

func NewAttDef() *AttDef {
	d := &AttDef{Attrib: *NewAttrib()}
	d.TypeName = "ATTDEF"
	return d
}

func (a *Attrib) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, a)
}

func (a *Attrib) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		a.Tag = t.AsString()
	case 70:
		ctx.Int(t, &a.Flags)
	case 73:
		ctx.Int(t, &a.FieldLength)
	case 74:
		ctx.Int(t, &a.VJustify)
	default:
		return a.Text.absorb(ctx, t)
	}
	return true
}

func (a *Attrib) markers() []string { return []string{"AcDbText", "AcDbAttribute"} }

func (a *Attrib) Write(ctx *core.Context, w *core.Writer) error {
	if a.Tag == "" {
		return missingName("ATTRIB", "attribute tag")
	}
	w.Name("ATTRIB")
	a.write(ctx, w, "AcDbAttribute")
	return w.Err()
}

// write 输出 ATTRIB/ATTDEF 共用的主体，marker 区分二者的子类标记
func (a *Attrib) write(ctx *core.Context, w *core.Writer, marker string) {
	a.Attr.emit(ctx, w, "AcDbText")
	writePoint(w, 0, a.Location)
	w.Float(40, a.Height)
	w.Tag(1, a.Value)
	a.writeOptions(ctx, w)
	if ctx.Version >= core.R13 {
		w.Tag(100, marker)
	}
	w.Tag(2, a.Tag)
	w.Int(70, a.Flags)
	if a.FieldLength != 0 {
		w.Int(73, a.FieldLength)
	}
	if a.VJustify != 0 {
		w.Int(74, a.VJustify)
	}
	a.Attr.emitExtrusion(ctx, w)
}

func (d *AttDef) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, d)
}

func (d *AttDef) absorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 3 {
		d.Prompt = t.AsString()
		return true
	}
	return d.Attrib.absorb(ctx, t)
}

func (d *AttDef) markers() []string { return []string{"AcDbText", "AcDbAttributeDefinition"} }

func (d *AttDef) Write(ctx *core.Context, w *core.Writer) error {
	if d.Tag == "" {
		return missingName("ATTDEF", "attribute tag")
	}
	w.Name("ATTDEF")
	d.Attr.emit(ctx, w, "AcDbText")
	writePoint(w, 0, d.Location)
	w.Float(40, d.Height)
	w.Tag(1, d.Value)
	d.writeOptions(ctx, w)
	if ctx.Version >= core.R13 {
		w.Tag(100, "AcDbAttributeDefinition")
	}
	w.Tag(3, d.Prompt)
	w.Tag(2, d.Tag)
	w.Int(70, d.Flags)
	if d.FieldLength != 0 {
		w.Int(73, d.FieldLength)
	}
	if d.VJustify != 0 {
		w.Int(74, d.VJustify)
	}
	d.Attr.emitExtrusion(ctx, w)
	return w.Err()
}
