package entities

import (
	"github.com/zooyer/dxf/core"
)

type Insert struct {
	BaseEntity
	BlockName        string     // 组码 2
	InsertionPoint   core.Point // 组码 10
	Scale            core.Point // 组码 41/42/43，默认 (1,1,1)
	Rotation         float64    // 组码 50，度
	Columns          int        // 组码 70，默认 1
	Rows             int        // 组码 71，默认 1
	ColumnSpacing    float64    // 组码 44
	RowSpacing       float64    // 组码 45
	AttributesFollow int        // 组码 66，为 1 时后随 ATTRIB 链直至 SEQEND
	Attributes       []*Attrib
}

func init() {
	Register("INSERT", func() Entity { return NewInsert() })
}

func NewInsert() *Insert {
	i := &Insert{BaseEntity: newBase("INSERT")}
	i.Scale = core.Point{X: 1, Y: 1, Z: 1}
	i.Columns = 1
	i.Rows = 1
	return i
}

func (i *Insert) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		i.BlockName = t.AsString()
	case 41:
		ctx.Float(t, &i.Scale.X)
	case 42:
		ctx.Float(t, &i.Scale.Y)
	case 43:
		ctx.Float(t, &i.Scale.Z)
	case 44:
		ctx.Float(t, &i.ColumnSpacing)
	case 45:
		ctx.Float(t, &i.RowSpacing)
	case 50:
		ctx.Float(t, &i.Rotation)
	case 66:
		ctx.Int(t, &i.AttributesFollow)
	case 70:
		ctx.Int(t, &i.Columns)
	case 71:
		ctx.Int(t, &i.Rows)
	default:
		return absorbPoint(ctx, t, 0, &i.InsertionPoint)
	}
	return true
}

func (i *Insert) markers() []string { return []string{"AcDbBlockReference"} }

func (i *Insert) Parse(ctx *core.Context, s *core.Scanner) error {
	if err := parseEntity(ctx, s, i); err != nil {
		return err
	}
	if i.AttributesFollow != 1 {
		return nil
	}

	// 66=1：继续在当前流中抓取 ATTRIB 直到 SEQEND
	for s.LastTag.Code == 0 {
		switch s.LastTag.AsString() {
		case "SEQEND":
			seq := NewSeqEnd()
			return seq.Parse(ctx, s)
		case "ATTRIB":
			attr := NewAttrib()
			if err := attr.Parse(ctx, s); err != nil {
				return err
			}
			i.Attributes = append(i.Attributes, attr)
		default:
			ctx.Entity = i.TypeName
			ctx.Report(core.DiagMissing, "attribute chain not terminated by SEQEND")
			return nil
		}
	}
	return s.Err()
}

// Write 写出 INSERT 本体；66=1 时由写入端负责补齐 ATTRIB 链与 SEQEND 终结符
func (i *Insert) Write(ctx *core.Context, w *core.Writer) error {
	if i.BlockName == "" {
		return missingName("INSERT", "block name")
	}
	w.Name("INSERT")
	i.Attr.emit(ctx, w, "AcDbBlockReference")
	if i.AttributesFollow == 1 {
		w.Int(66, 1)
	}
	w.Tag(2, i.BlockName)
	writePoint(w, 0, i.InsertionPoint)
	if i.Scale != (core.Point{X: 1, Y: 1, Z: 1}) {
		w.Float(41, i.Scale.X)
		w.Float(42, i.Scale.Y)
		w.Float(43, i.Scale.Z)
	}
	if i.Rotation != 0 {
		w.Float(50, i.Rotation)
	}
	if i.Columns > 1 || i.Rows > 1 {
		w.Int(70, i.Columns)
		w.Int(71, i.Rows)
		w.Float(44, i.ColumnSpacing)
		w.Float(45, i.RowSpacing)
	}
	i.Attr.emitExtrusion(ctx, w)

	if i.AttributesFollow == 1 {
		for _, attr := range i.Attributes {
			if err := attr.Write(ctx, w); err != nil {
				return err
			}
		}
		seq := NewSeqEnd()
		seq.Attr.Layer = i.Attr.Layer
		if err := seq.Write(ctx, w); err != nil {
			return err
		}
	}
	return w.Err()
}

func (i *Insert) BBox() core.BBox {
	// Insert 的包围盒比较特殊，通常需要结合 Block 定义计算
	// 这里先返回插入点
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
