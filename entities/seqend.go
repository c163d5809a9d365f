package entities

import (
	"github.com/zooyer/dxf/core"
)

// SeqEnd 终结 INSERT 属性链或 POLYLINE 顶点链的标记实体
type SeqEnd struct {
	BaseEntity
}

func init() {
	Register("SEQEND", func() Entity { return NewSeqEnd() })
}

func NewSeqEnd() *SeqEnd {
	return &SeqEnd{BaseEntity: newBase("SEQEND")}
}

func (e *SeqEnd) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, e)
}

func (e *SeqEnd) absorb(ctx *core.Context, t core.Tag) bool { return false }

func (e *SeqEnd) markers() []string { return nil }

func (e *SeqEnd) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("SEQEND")
	e.Attr.emit(ctx, w, "")
	return w.Err()
}

func (e *SeqEnd) BBox() core.BBox { return core.BBox{} }
