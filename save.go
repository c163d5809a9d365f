package dxf

import (
	"io"
	"os"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// tableOrder TABLES 段内各表的写出顺序，照搬 AutoCAD 的习惯
var tableOrder = []string{"VPORT", "DIMSTYLE", "VIEW", "UCS", "BLOCK_RECORD"}

// Save 以指定目标版本落盘
func (d *Document) Save(filename string, version core.Version) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return d.Write(file, version)
}

// Write 把整份文档写出为指定版本的标签流。
// 写出是严格侧：实体的非法字段直接拒绝并中止，已写出的内容不回滚。
func (d *Document) Write(writer io.Writer, version core.Version) error {
	ctx, diags := core.NewContext()
	ctx.Version = version
	ctx.Flatland = d.Flatland
	ctx.Wide64 = d.Wide64
	// 写出侧的诊断与解析侧并入同一收集器
	if d.Diags != nil {
		ctx.Sink = d.Diags
	} else {
		d.Diags = diags
	}
	w := core.NewWriter(writer)

	d.writeHeader(ctx, w, version)
	if err := d.writeTables(ctx, w); err != nil {
		return err
	}
	if err := d.writeBlocks(ctx, w); err != nil {
		return err
	}
	if err := d.writeEntities(ctx, w); err != nil {
		return err
	}
	w.Name("EOF")
	return w.Flush()
}

func (d *Document) writeHeader(ctx *core.Context, w *core.Writer, version core.Version) {
	w.Name("SECTION")
	w.Tag(2, "HEADER")
	w.Tag(9, "$ACADVER")
	w.Tag(1, version.String())
	if d.Codepage != "" {
		w.Tag(9, "$DWGCODEPAGE")
		w.Tag(3, d.Codepage)
	}
	for _, tag := range d.Header {
		w.Tag(tag.Code, tag.Value)
	}
	w.Name("ENDSEC")
}

// writeTables 按记录类型重建 TABLE/ENDTAB 框架，空表不写
func (d *Document) writeTables(ctx *core.Context, w *core.Writer) error {
	if len(d.Tables) == 0 {
		return nil
	}

	grouped := make(map[string][]entities.Entity)
	for _, rec := range d.Tables {
		grouped[rec.Type()] = append(grouped[rec.Type()], rec)
	}

	w.Name("SECTION")
	w.Tag(2, "TABLES")
	for _, kind := range tableOrder {
		records := grouped[kind]
		if len(records) == 0 {
			continue
		}
		w.Name("TABLE")
		w.Tag(2, kind)
		w.Int(70, len(records))
		for _, rec := range records {
			if err := rec.Write(ctx, w); err != nil {
				return err
			}
		}
		w.Name("ENDTAB")
	}
	w.Name("ENDSEC")
	return w.Err()
}

func (d *Document) writeBlocks(ctx *core.Context, w *core.Writer) error {
	if len(d.BlockList) == 0 {
		return nil
	}

	w.Name("SECTION")
	w.Tag(2, "BLOCKS")
	for _, block := range d.BlockList {
		if err := block.Head.Write(ctx, w); err != nil {
			return err
		}
		for _, ent := range block.Entities {
			if err := ent.Write(ctx, w); err != nil {
				return err
			}
		}
		end := entities.NewEndBlk()
		end.Attr.Layer = block.Head.Attr.Layer
		if err := end.Write(ctx, w); err != nil {
			return err
		}
	}
	w.Name("ENDSEC")
	return w.Err()
}

func (d *Document) writeEntities(ctx *core.Context, w *core.Writer) error {
	w.Name("SECTION")
	w.Tag(2, "ENTITIES")
	for _, ent := range d.Entities {
		if err := ent.Write(ctx, w); err != nil {
			return err
		}
	}
	w.Name("ENDSEC")
	return w.Err()
}
