package entities

import (
	"github.com/zooyer/dxf/core"
)

// emitTableRecord 写出符号表记录的公共头部
// handleCode 通常是 5，DIMSTYLE 例外为 105
func emitTableRecord(ctx *core.Context, w *core.Writer, kind string, handleCode int, handle uint32, marker string) {
	w.Name(kind)
	if ctx.Version >= core.R13 {
		w.Hex(handleCode, handle)
		w.Tag(100, "AcDbSymbolTableRecord")
		w.Tag(100, marker)
	}
}
