package entities

import (
	"strings"

	"github.com/zooyer/dxf/core"
)

// DimStyle 代表 TABLES 段里的标注样式记录。
// 注意它的句柄组码是 105 而不是 5。
type DimStyle struct {
	BaseEntity
	Name             string  // 组码 2
	Flags            int     // 组码 70
	Scale            float64 // 组码 40 (DIMSCALE)
	ArrowSize        float64 // 组码 41 (DIMASZ)
	ExtLineExtension float64 // 组码 44 (DIMEXE)
	TextHeight       float64 // 组码 140 (DIMTXT)
	Precision        int     // 组码 271 (DIMDEC)，R2000 起
}

func init() {
	Register("DIMSTYLE", func() Entity { return NewDimStyle() })
}

func NewDimStyle() *DimStyle {
	d := &DimStyle{BaseEntity: newBase("DIMSTYLE")}
	d.Scale = 1
	d.ArrowSize = 0.18
	d.ExtLineExtension = 0.18
	d.TextHeight = 0.18
	return d
}

func (d *DimStyle) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, d)
}

// preAbsorb 抢在公共属性集之前截获 105 句柄
func (d *DimStyle) preAbsorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 105 {
		ctx.Handle(t, &d.Attr.Handle)
		return true
	}
	return false
}

func (d *DimStyle) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		d.Name = strings.ToUpper(t.AsString())
	case 40:
		ctx.Float(t, &d.Scale)
	case 41:
		ctx.Float(t, &d.ArrowSize)
	case 44:
		ctx.Float(t, &d.ExtLineExtension)
	case 70:
		ctx.Int(t, &d.Flags)
	case 140:
		ctx.Float(t, &d.TextHeight)
	case 271:
		ctx.Gate(core.R2000, 271)
		ctx.Int(t, &d.Precision)
	default:
		return false
	}
	return true
}

func (d *DimStyle) markers() []string {
	return []string{"AcDbSymbolTableRecord", "AcDbDimStyleTableRecord"}
}

func (d *DimStyle) Write(ctx *core.Context, w *core.Writer) error {
	if d.Name == "" {
		return missingName("DIMSTYLE", "style name")
	}
	emitTableRecord(ctx, w, "DIMSTYLE", 105, d.Attr.Handle, "AcDbDimStyleTableRecord")
	w.Tag(2, d.Name)
	w.Int(70, d.Flags)
	if d.Scale != 1 {
		w.Float(40, d.Scale)
	}
	w.Float(41, d.ArrowSize)
	w.Float(44, d.ExtLineExtension)
	w.Float(140, d.TextHeight)
	if ctx.Version >= core.R2000 && d.Precision != 0 {
		w.Int(271, d.Precision)
	}
	return w.Err()
}
