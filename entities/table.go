package entities

import (
	"github.com/zooyer/dxf/core"
)

// Table 代表表格实体 (ACAD_TABLE)，R2005 起。
// 单元格数据的组码空间庞大且顺序敏感，按原始顺序整体保留。
type Table struct {
	BaseEntity
	ClassVersion int        // 组码 280
	BlockName    string     // 组码 2，表格几何所在的匿名块
	Location     core.Point // 组码 10
	StyleHandle  string     // 组码 342，表格样式对象句柄
	BlockHandle  string     // 组码 343
	RowHeights   []float64  // 组码 141，每行一项，行数由 91 声明
	ColWidths    []float64  // 组码 142，每列一项，列数由 92 声明
	Cells        []core.Tag // 单元格数据组码，按输入顺序
}

func init() {
	Register("ACAD_TABLE", func() Entity { return NewTable() })
	// 部分导出器写短名，读入后统一为 ACAD_TABLE
	Register("TABLE", func() Entity { return NewTable() })
}

func NewTable() *Table {
	return &Table{BaseEntity: newBase("ACAD_TABLE")}
}

func (tb *Table) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, tb)
}

// preAbsorb 截获 92：这里是表格列数而非代理图形长度
func (tb *Table) preAbsorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 92 {
		// 列数由 142 的实际个数重建
		return true
	}
	return false
}

func (tb *Table) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		tb.BlockName = t.AsString()
	case 91:
		// 行数由 141 的实际个数重建
	case 141:
		var height float64
		ctx.Float(t, &height)
		tb.RowHeights = append(tb.RowHeights, height)
	case 142:
		var width float64
		ctx.Float(t, &width)
		tb.ColWidths = append(tb.ColWidths, width)
	case 280:
		ctx.Int(t, &tb.ClassVersion)
	case 342:
		tb.StyleHandle = t.AsString()
	case 343:
		tb.BlockHandle = t.AsString()
	case 144, 145, 170, 171, 172, 173, 174, 175, 176, 178, 179, 301, 302, 303:
		tb.Cells = append(tb.Cells, t)
	case 1, 7, 40, 94, 95:
		// 单元格文字与附属属性也落入整体保留的标签流
		tb.Cells = append(tb.Cells, t)
	default:
		return absorbPoint(ctx, t, 0, &tb.Location)
	}
	return true
}

func (tb *Table) markers() []string {
	return []string{"AcDbBlockReference", "AcDbTable"}
}

func (tb *Table) Write(ctx *core.Context, w *core.Writer) error {
	if tb.BlockName == "" {
		return missingName("ACAD_TABLE", "block name")
	}
	w.Name("ACAD_TABLE")
	tb.Attr.emit(ctx, w, "AcDbBlockReference")
	w.Tag(2, tb.BlockName)
	writePoint(w, 0, tb.Location)
	w.Tag(100, "AcDbTable")
	w.Int(280, tb.ClassVersion)
	if tb.StyleHandle != "" {
		w.Tag(342, tb.StyleHandle)
	}
	if tb.BlockHandle != "" {
		w.Tag(343, tb.BlockHandle)
	}
	w.Int(91, len(tb.RowHeights))
	w.Int(92, len(tb.ColWidths))
	for _, height := range tb.RowHeights {
		w.Float(141, height)
	}
	for _, width := range tb.ColWidths {
		w.Float(142, width)
	}
	for _, t := range tb.Cells {
		w.Tag(t.Code, t.Value)
	}
	return w.Err()
}

func (tb *Table) BBox() core.BBox {
	var width, height float64
	for _, v := range tb.ColWidths {
		width += v
	}
	for _, v := range tb.RowHeights {
		height += v
	}
	corner := core.Point{X: tb.Location.X + width, Y: tb.Location.Y - height, Z: tb.Location.Z}
	return bboxOf(tb.Location, corner)
}
