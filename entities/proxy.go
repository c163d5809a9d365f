package entities

import (
	"github.com/zooyer/dxf/core"
)

// Proxy 代表代理实体 (ACAD_PROXY_ENTITY)：宿主应用缺席时
// 由 ObjectARX 程序留下的占位图形，负载只能原样保留。
type Proxy struct {
	BaseEntity
	ProxyClass   int        // 组码 90，恒为 498
	AppClass     int        // 组码 91
	GraphicsData []string   // 组码 92 之后的 310 块
	EntityData   []string   // 组码 93 之后的 310 块
	Refs         []core.Tag // 330/340/350/360 对象引用，按输入顺序
	DrawingFmt   int        // 组码 95
	DataFormat   int        // 组码 70，0 DWG 1 ObjectARX

	inEntityData bool
}

func init() {
	Register("ACAD_PROXY_ENTITY", func() Entity { return NewProxy() })
}

func NewProxy() *Proxy {
	p := &Proxy{BaseEntity: newBase("ACAD_PROXY_ENTITY")}
	p.ProxyClass = 498
	return p
}

func (p *Proxy) Parse(ctx *core.Context, s *core.Scanner) error {
	p.inEntityData = false
	return parseEntity(ctx, s, p)
}

// preAbsorb 截获与公共属性集重叠的组码：
// 92 是图形负载长度，310 是负载本体，330/360 是对象引用。
func (p *Proxy) preAbsorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 92:
		// 图形负载字节数由 310 的实际内容重建
		p.inEntityData = false
		return true
	case 310:
		chunk := t.AsString()
		if len(chunk) > core.MaxChunk {
			ctx.Report(core.DiagFormat, "binary chunk of %d chars exceeds %d", len(chunk), core.MaxChunk)
		}
		if p.inEntityData {
			p.EntityData = append(p.EntityData, chunk)
		} else {
			p.GraphicsData = append(p.GraphicsData, chunk)
		}
		return true
	case 330, 340, 350, 360:
		p.Refs = append(p.Refs, t)
		return true
	}
	return false
}

func (p *Proxy) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 70:
		ctx.Int(t, &p.DataFormat)
	case 90:
		ctx.Int(t, &p.ProxyClass)
	case 91:
		ctx.Int(t, &p.AppClass)
	case 93:
		// 实体负载字节数由 310 的实际内容重建
		p.inEntityData = true
	case 94:
		// 对象引用结束哨兵
	case 95:
		ctx.Int(t, &p.DrawingFmt)
	default:
		return false
	}
	return true
}

func (p *Proxy) markers() []string {
	return []string{"AcDbProxyEntity"}
}

func hexBytes(chunks []string) int {
	var n int
	for _, chunk := range chunks {
		n += len(chunk) / 2
	}
	return n
}

func (p *Proxy) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("ACAD_PROXY_ENTITY")
	p.Attr.emit(ctx, w, "AcDbProxyEntity")
	w.Int(90, p.ProxyClass)
	w.Int(91, p.AppClass)
	w.Int(92, hexBytes(p.GraphicsData))
	for _, chunk := range p.GraphicsData {
		w.Tag(310, chunk)
	}
	w.Int(93, hexBytes(p.EntityData))
	for _, chunk := range p.EntityData {
		w.Tag(310, chunk)
	}
	for _, t := range p.Refs {
		w.Tag(t.Code, t.Value)
	}
	w.Int(94, 0)
	w.Int(95, p.DrawingFmt)
	w.Int(70, p.DataFormat)
	return w.Err()
}
