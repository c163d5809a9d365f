package entities

import (
	"github.com/zooyer/dxf/core"
)

// BLOCK 组码 70 的位标志
const (
	BlockAnonymous   = 1
	BlockHasAttDefs  = 2
	BlockExternalRef = 4
	BlockXRefOverlay = 8
)

// Block 代表块定义的头记录 (BLOCK)，块内实体由上层文档收集
type Block struct {
	BaseEntity
	Name      string     // 组码 2
	Flags     int        // 组码 70
	BasePoint core.Point // 组码 10
	XRefPath  string     // 组码 1，外部引用路径
}

func init() {
	Register("BLOCK", func() Entity { return NewBlock() })
	Register("ENDBLK", func() Entity { return NewEndBlk() })
	Register("BLOCK_RECORD", func() Entity { return NewBlockRecord() })
}

func NewBlock() *Block {
	return &Block{BaseEntity: newBase("BLOCK")}
}

func (b *Block) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, b)
}

func (b *Block) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 1:
		b.XRefPath = t.AsString()
	case 2, 3:
		// 组码 3 是名称的历史重复
		b.Name = t.AsString()
	case 70:
		ctx.Int(t, &b.Flags)
	default:
		return absorbPoint(ctx, t, 0, &b.BasePoint)
	}
	return true
}

func (b *Block) markers() []string {
	return []string{"AcDbBlockBegin"}
}

func (b *Block) Write(ctx *core.Context, w *core.Writer) error {
	if b.Name == "" {
		return missingName("BLOCK", "block name")
	}
	w.Name("BLOCK")
	b.Attr.emit(ctx, w, "AcDbBlockBegin")
	w.Tag(2, b.Name)
	w.Int(70, b.Flags)
	writePoint(w, 0, b.BasePoint)
	w.Tag(3, b.Name)
	if b.XRefPath != "" {
		w.Tag(1, b.XRefPath)
	}
	return w.Err()
}

// EndBlk 代表块定义的结束记录 (ENDBLK)
type EndBlk struct {
	BaseEntity
}

func NewEndBlk() *EndBlk {
	return &EndBlk{BaseEntity: newBase("ENDBLK")}
}

func (e *EndBlk) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, e)
}

func (e *EndBlk) absorb(ctx *core.Context, t core.Tag) bool {
	return false
}

func (e *EndBlk) markers() []string {
	return []string{"AcDbBlockEnd"}
}

func (e *EndBlk) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("ENDBLK")
	e.Attr.emit(ctx, w, "AcDbBlockEnd")
	return w.Err()
}

// BlockRecord 代表 TABLES 段里的块记录 (BLOCK_RECORD)，R13 起
type BlockRecord struct {
	BaseEntity
	Name          string   // 组码 2
	LayoutHandle  string   // 组码 340
	InsertUnits   int16    // 组码 70，0..20
	Explodability int16    // 组码 280
	Scalability   int16    // 组码 281
	Preview       []string // 组码 310 的预览位图块
}

func NewBlockRecord() *BlockRecord {
	r := &BlockRecord{BaseEntity: newBase("BLOCK_RECORD")}
	r.Explodability = 1
	return r
}

func (r *BlockRecord) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, r)
}

// preAbsorb 截获 310：这里是预览位图而非代理图形
func (r *BlockRecord) preAbsorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 310 {
		r.Preview = append(r.Preview, t.AsString())
		return true
	}
	return false
}

func (r *BlockRecord) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 2:
		r.Name = t.AsString()
	case 70:
		ctx.Int16(t, &r.InsertUnits)
	case 280:
		ctx.Int16(t, &r.Explodability)
	case 281:
		ctx.Int16(t, &r.Scalability)
	case 340:
		r.LayoutHandle = t.AsString()
	default:
		return false
	}
	return true
}

func (r *BlockRecord) markers() []string {
	return []string{"AcDbSymbolTableRecord", "AcDbBlockTableRecord"}
}

func (r *BlockRecord) Write(ctx *core.Context, w *core.Writer) error {
	if r.Name == "" {
		return missingName("BLOCK_RECORD", "record name")
	}
	emitTableRecord(ctx, w, "BLOCK_RECORD", 5, r.Attr.Handle, "AcDbBlockTableRecord")
	w.Tag(2, r.Name)
	if r.LayoutHandle != "" {
		w.Tag(340, r.LayoutHandle)
	}
	if ctx.Version >= core.R2007 {
		w.Int(70, int(r.InsertUnits))
		w.Int(280, int(r.Explodability))
		w.Int(281, int(r.Scalability))
		for _, chunk := range r.Preview {
			w.Tag(310, chunk)
		}
	}
	return w.Err()
}
