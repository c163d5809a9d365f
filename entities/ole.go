package entities

import (
	"github.com/zooyer/dxf/core"
)

// OleFrame 代表 OLE 对象框架 (OLEFRAME)，二进制负载原样保留
type OleFrame struct {
	BaseEntity
	OleVersion int      // 组码 70
	Length     int      // 组码 90，二进制总字节数
	Data       []string // 组码 310 的十六进制块，按输入顺序
}

func init() {
	Register("OLEFRAME", func() Entity { return NewOleFrame() })
	Register("OLE2FRAME", func() Entity { return NewOle2Frame() })
}

func NewOleFrame() *OleFrame {
	return &OleFrame{BaseEntity: newBase("OLEFRAME")}
}

func (o *OleFrame) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, o)
}

// preAbsorb 截获 310：这里是 OLE 负载而非代理图形
func (o *OleFrame) preAbsorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 310 {
		chunk := t.AsString()
		if len(chunk) > core.MaxChunk {
			ctx.Report(core.DiagFormat, "binary chunk of %d chars exceeds %d", len(chunk), core.MaxChunk)
		}
		o.Data = append(o.Data, chunk)
		return true
	}
	return false
}

func (o *OleFrame) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 1:
		// 结尾哨兵 "OLE"，不保留
	case 70:
		ctx.Int(t, &o.OleVersion)
	case 90:
		ctx.Int(t, &o.Length)
	default:
		return false
	}
	return true
}

func (o *OleFrame) markers() []string {
	return []string{"AcDbOleFrame"}
}

func (o *OleFrame) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("OLEFRAME")
	o.Attr.emit(ctx, w, "AcDbOleFrame")
	w.Int(70, o.OleVersion)
	w.Int(90, o.Length)
	for _, chunk := range o.Data {
		w.Tag(310, chunk)
	}
	w.Tag(1, "OLE")
	return w.Err()
}

// Ole2Frame 代表 OLE2 对象框架 (OLE2FRAME)，带放置矩形
type Ole2Frame struct {
	OleFrame
	UpperLeft  core.Point // 组码 10
	LowerRight core.Point // 组码 11
	ObjectType int        // 组码 71，1 链接 2 嵌入 3 静态
	TileMode   int        // 组码 72
}

func NewOle2Frame() *Ole2Frame {
	o := &Ole2Frame{OleFrame: *NewOleFrame()}
	o.TypeName = "OLE2FRAME"
	return o
}

func (o *Ole2Frame) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, o)
}

func (o *Ole2Frame) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 71:
		ctx.Int(t, &o.ObjectType)
	case 72:
		ctx.Int(t, &o.TileMode)
	case 10, 20, 30, 11, 21, 31:
		return absorbPoint(ctx, t, 0, &o.UpperLeft) ||
			absorbPoint(ctx, t, 1, &o.LowerRight)
	default:
		return o.OleFrame.absorb(ctx, t)
	}
	return true
}

func (o *Ole2Frame) markers() []string {
	return []string{"AcDbOle2Frame"}
}

func (o *Ole2Frame) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("OLE2FRAME")
	o.Attr.emit(ctx, w, "AcDbOle2Frame")
	w.Int(70, o.OleVersion)
	writePoint(w, 0, o.UpperLeft)
	writePoint(w, 1, o.LowerRight)
	w.Int(71, o.ObjectType)
	w.Int(72, o.TileMode)
	w.Int(90, o.Length)
	for _, chunk := range o.Data {
		w.Tag(310, chunk)
	}
	w.Tag(1, "OLE")
	return w.Err()
}

func (o *Ole2Frame) BBox() core.BBox {
	return bboxOf(o.UpperLeft, o.LowerRight)
}
