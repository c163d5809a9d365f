package dxf

import (
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// Block 块定义：头记录加上块内实体
type Block struct {
	Head     *entities.Block
	Entities []entities.Entity
}

func (b *Block) Name() string {
	if b.Head == nil {
		return ""
	}
	return strings.ToUpper(b.Head.Name)
}

// Document 一份 DXF 图纸的内存形态。
// Entities 保持文件中的出现顺序，重复写出字节级一致。
type Document struct {
	Version  core.Version
	Codepage string // $DWGCODEPAGE 原值，如 ANSI_936

	Header    []core.Tag // 未专门解释的头变量，按输入顺序保留
	Tables    []entities.Entity
	Blocks    map[string]*Block
	BlockList []*Block // 保持输入顺序，供写出使用
	Entities  []entities.Entity

	DimStyles map[string]*entities.DimStyle

	// 写出侧开关，对应 Context 的同名字段
	Flatland bool // R11 兼容：允许写组码 38
	Wide64   bool // 图形数据长度写 160 而不是 92

	// 解析期收集的全部诊断；Tainted 为真说明文件有瑕疵但仍可用
	Diags *core.Diagnostics
}

func newDocument() *Document {
	return &Document{
		Version:   core.R2010,
		Blocks:    make(map[string]*Block),
		Entities:  make([]entities.Entity, 0, 1024),
		DimStyles: make(map[string]*entities.DimStyle),
	}
}

// Find 按类型名收集实体，名称不区分大小写
func (d *Document) Find(typeName string) []entities.Entity {
	typeName = strings.ToUpper(typeName)
	var found []entities.Entity
	for _, ent := range d.Entities {
		if ent.Type() == typeName {
			found = append(found, ent)
		}
	}
	return found
}

// DimStyle 按名称查找标注样式，找不到时返回 nil
func (d *Document) DimStyle(name string) *entities.DimStyle {
	return d.DimStyles[strings.ToUpper(name)]
}

// Inserts 收集全部块引用，保持出现顺序
func (d *Document) Inserts() []*entities.Insert {
	var found []*entities.Insert
	for _, ent := range d.Entities {
		if ins, ok := ent.(*entities.Insert); ok {
			found = append(found, ins)
		}
	}
	return found
}

// Dimensions 收集全部标注，保持出现顺序
func (d *Document) Dimensions() []*entities.Dimension {
	var found []*entities.Dimension
	for _, ent := range d.Entities {
		if dim, ok := ent.(*entities.Dimension); ok {
			found = append(found, dim)
		}
	}
	return found
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return LoadNamed(file, filename)
}

// Load 解析整个字节流。返回错误说明流本身损坏（I/O 错误或组码行
// 不是整数）；内容层面的问题只进诊断，已解析的部分全部保留。
func Load(reader io.Reader) (*Document, error) {
	return LoadNamed(reader, "")
}

// LoadNamed 与 Load 相同，诊断带上来源文件名
func LoadNamed(reader io.Reader, source string) (*Document, error) {
	ctx, diags := core.NewContext()
	ctx.Source = source

	doc := newDocument()
	doc.Diags = diags

	scanner := core.NewNamedScanner(reader, source)
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 999 {
			ctx.Sync(scanner)
			ctx.Report(core.DiagComment, "%s", tag.AsString())
			continue
		}
		if tag.Code != 0 || strings.ToUpper(tag.AsString()) != "SECTION" {
			continue
		}
		if !scanner.Next() {
			break
		}
		switch strings.ToUpper(scanner.LastTag.AsString()) {
		case "HEADER":
			doc.parseHeader(ctx, scanner)
		case "TABLES":
			doc.parseTables(ctx, scanner)
		case "BLOCKS":
			doc.parseBlocks(ctx, scanner)
		case "ENTITIES":
			doc.parseEntities(ctx, scanner)
		}
		if err := scanner.Err(); err != nil {
			return doc, err
		}
	}

	return doc, scanner.Err()
}

// parseHeader 解释 $ACADVER 与 $DWGCODEPAGE，其余变量原样保留
func (d *Document) parseHeader(ctx *core.Context, scanner *core.Scanner) {
	var variable string
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.AsString()) == "ENDSEC" {
			return
		}
		if tag.Code == 9 {
			variable = strings.ToUpper(tag.AsString())
			if variable != "$ACADVER" && variable != "$DWGCODEPAGE" {
				d.Header = append(d.Header, tag)
			}
			continue
		}
		switch variable {
		case "$ACADVER":
			d.Version = core.ParseVersion(tag.AsString())
			ctx.Version = d.Version
		case "$DWGCODEPAGE":
			d.Codepage = tag.AsString()
		default:
			d.Header = append(d.Header, tag)
		}
	}
	ctx.Sync(scanner)
	ctx.Report(core.DiagMissing, "HEADER section not terminated by ENDSEC")
}

// parseTables 通过注册表解析表记录。TABLE/ENDTAB 框架与未注册的
// 记录类型（LAYER、LTYPE 等）一律跳过，写出时按记录类型重建框架。
func (d *Document) parseTables(ctx *core.Context, scanner *core.Scanner) {
	for scanner.Next() {
	dispatch:
		tag := scanner.LastTag
		if tag.Code != 0 {
			continue
		}
		name := strings.ToUpper(tag.AsString())
		switch name {
		case "ENDSEC":
			return
		case "TABLE", "ENDTAB":
			continue
		}
		ent := entities.CreateEntity(name)
		if ent == nil {
			continue
		}
		if err := ent.Parse(ctx, scanner); err != nil {
			return
		}
		d.Tables = append(d.Tables, ent)
		if style, ok := ent.(*entities.DimStyle); ok && style.Name != "" {
			d.DimStyles[style.Name] = style
		}
		goto dispatch
	}
}

// parseBlocks 收集块定义：BLOCK 头、块内实体、ENDBLK
func (d *Document) parseBlocks(ctx *core.Context, scanner *core.Scanner) {
	var current *Block
	for scanner.Next() {
	dispatch:
		tag := scanner.LastTag
		if tag.Code != 0 {
			continue
		}
		name := strings.ToUpper(tag.AsString())
		switch name {
		case "ENDSEC":
			return
		case "BLOCK":
			head := entities.NewBlock()
			if err := head.Parse(ctx, scanner); err != nil {
				return
			}
			current = &Block{Head: head}
			d.Blocks[current.Name()] = current
			d.BlockList = append(d.BlockList, current)
			goto dispatch
		case "ENDBLK":
			end := entities.NewEndBlk()
			if err := end.Parse(ctx, scanner); err != nil {
				return
			}
			current = nil
			goto dispatch
		}
		ent := entities.CreateEntity(name)
		if ent == nil {
			ctx.Sync(scanner)
			ctx.Report(core.DiagUnknownTag, "unknown entity kind %q, skipped", name)
			continue
		}
		if err := ent.Parse(ctx, scanner); err != nil {
			return
		}
		if current != nil {
			current.Entities = append(current.Entities, ent)
		}
		goto dispatch
	}
}

// parseEntities 主实体区：未知类型跳过并告警，已识别实体进列表
func (d *Document) parseEntities(ctx *core.Context, scanner *core.Scanner) {
	for scanner.Next() {
	dispatch:
		tag := scanner.LastTag
		if tag.Code != 0 {
			continue
		}
		name := strings.ToUpper(tag.AsString())
		if name == "ENDSEC" {
			return
		}
		ent := entities.CreateEntity(name)
		if ent == nil {
			ctx.Sync(scanner)
			ctx.Report(core.DiagUnknownTag, "unknown entity kind %q, skipped", name)
			continue
		}
		if err := ent.Parse(ctx, scanner); err != nil {
			return
		}
		d.Entities = append(d.Entities, ent)
		goto dispatch
	}
}
