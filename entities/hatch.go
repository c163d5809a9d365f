package entities

import (
	"github.com/zooyer/dxf/core"
)

// HATCH 边界路径类型位 (组码 92)
const (
	HatchPathDefault   = 0
	HatchPathExternal  = 1
	HatchPathPolyline  = 2
	HatchPathDerived   = 4
	HatchPathTextbox   = 8
	HatchPathOutermost = 16
)

// BoundaryPath 是一条填充边界。
// 几何标签的组码含义依赖边界类型且顺序敏感，按原始顺序保留，
// 处理方式与 ACIS 实体保留 1/3 文本行相同。
type BoundaryPath struct {
	Type    int        // 组码 92
	Tags    []core.Tag // 72/73/93 及顶点、圆弧等几何组码，按输入顺序
	Sources []string   // 组码 97 之后的 330 边界对象句柄
}

// PatternLine 是一条填充图案定义线
type PatternLine struct {
	Angle   float64   // 组码 53
	BaseX   float64   // 组码 43
	BaseY   float64   // 组码 44
	OffsetX float64   // 组码 45
	OffsetY float64   // 组码 46
	Dashes  []float64 // 组码 49，条数由 79 声明
}

type Hatch struct {
	BaseEntity
	PatternName    string         // 组码 2
	SolidFill      int            // 组码 70，1 实体填充
	Associative    int            // 组码 71
	Style          int            // 组码 75
	PatternType    int            // 组码 76
	PatternAngle   float64        // 组码 52
	PatternScale   float64        // 组码 41
	PatternDouble  int            // 组码 77
	PixelSize      float64        // 组码 47
	ElevationPoint core.Point     // 组码 10/20/30，X/Y 恒为 0
	Paths          []BoundaryPath // 组码 91 声明条数
	Pattern        []PatternLine  // 组码 78 声明条数
	Seeds          []core.Point   // 组码 98 声明个数，二维点

	// 解析期状态：当前所处的段落
	section int // 0 头部 1 边界 2 图案 3 种子点
}

func init() {
	Register("HATCH", func() Entity { return NewHatch() })
}

func NewHatch() *Hatch {
	h := &Hatch{BaseEntity: newBase("HATCH")}
	h.PatternName = "ANSI31"
	h.PatternScale = 1
	return h
}

func (h *Hatch) Parse(ctx *core.Context, s *core.Scanner) error {
	h.section = 0
	return parseEntity(ctx, s, h)
}

// preAbsorb 截获与公共属性集重叠的组码：
// 92 在边界段是路径类型而非代理图形长度，
// 330 在边界段是边界对象句柄而非反应器。
func (h *Hatch) preAbsorb(ctx *core.Context, t core.Tag) bool {
	if h.section != 1 {
		return false
	}
	switch t.Code {
	case 92:
		var typ int
		ctx.Int(t, &typ)
		h.Paths = append(h.Paths, BoundaryPath{Type: typ})
		return true
	case 330:
		if len(h.Paths) == 0 {
			return false
		}
		p := &h.Paths[len(h.Paths)-1]
		p.Sources = append(p.Sources, t.AsString())
		return true
	}
	return false
}

func (h *Hatch) absorb(ctx *core.Context, t core.Tag) bool {
	switch h.section {
	case 1:
		if h.absorbBoundary(ctx, t) {
			return true
		}
	case 2:
		if h.absorbPattern(ctx, t) {
			return true
		}
	case 3:
		if h.absorbSeed(ctx, t) {
			return true
		}
	}

	switch t.Code {
	case 2:
		h.PatternName = t.AsString()
	case 10:
		ctx.Float(t, &h.ElevationPoint.X)
	case 20:
		ctx.Float(t, &h.ElevationPoint.Y)
	case 30:
		ctx.Float(t, &h.ElevationPoint.Z)
	case 41:
		ctx.Float(t, &h.PatternScale)
	case 47:
		ctx.Float(t, &h.PixelSize)
	case 52:
		ctx.Float(t, &h.PatternAngle)
	case 70:
		ctx.Int(t, &h.SolidFill)
	case 71:
		ctx.Int(t, &h.Associative)
	case 75:
		h.section = 0
		ctx.Int(t, &h.Style)
	case 76:
		ctx.Int(t, &h.PatternType)
	case 77:
		ctx.Int(t, &h.PatternDouble)
	case 78:
		// 图案定义线条数由后续的 53 驱动，声明值本身不保留
		h.section = 2
	case 91:
		h.section = 1
	case 98:
		h.section = 3
	default:
		return false
	}
	return true
}

func (h *Hatch) absorbBoundary(ctx *core.Context, t core.Tag) bool {
	if len(h.Paths) == 0 {
		return false
	}
	switch t.Code {
	case 10, 20, 11, 21, 40, 42, 50, 51, 72, 73, 74, 93, 94, 95, 96:
		p := &h.Paths[len(h.Paths)-1]
		p.Tags = append(p.Tags, t)
		return true
	case 97:
		// 330 条数声明，句柄本身由 preAbsorb 收集
		return true
	}
	return false
}

func (h *Hatch) absorbPattern(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 53:
		line := PatternLine{}
		ctx.Float(t, &line.Angle)
		h.Pattern = append(h.Pattern, line)
		return true
	case 43, 44, 45, 46, 49, 79:
		if len(h.Pattern) == 0 {
			return false
		}
		line := &h.Pattern[len(h.Pattern)-1]
		switch t.Code {
		case 43:
			ctx.Float(t, &line.BaseX)
		case 44:
			ctx.Float(t, &line.BaseY)
		case 45:
			ctx.Float(t, &line.OffsetX)
		case 46:
			ctx.Float(t, &line.OffsetY)
		case 49:
			var dash float64
			ctx.Float(t, &dash)
			line.Dashes = append(line.Dashes, dash)
		case 79:
			// 虚线段条数，由 49 的实际个数重建
		}
		return true
	}
	return false
}

func (h *Hatch) absorbSeed(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 10:
		var seed core.Point
		ctx.Float(t, &seed.X)
		h.Seeds = append(h.Seeds, seed)
		return true
	case 20:
		if len(h.Seeds) == 0 {
			return false
		}
		ctx.Float(t, &h.Seeds[len(h.Seeds)-1].Y)
		return true
	}
	return false
}

func (h *Hatch) markers() []string {
	return []string{"AcDbHatch"}
}

func (h *Hatch) Write(ctx *core.Context, w *core.Writer) error {
	if h.PatternName == "" {
		return missingName("HATCH", "pattern name")
	}
	w.Name("HATCH")
	h.Attr.emit(ctx, w, "AcDbHatch")
	writePoint(w, 0, h.ElevationPoint)
	w.Float(210, h.Attr.Extrusion.X)
	w.Float(220, h.Attr.Extrusion.Y)
	w.Float(230, h.Attr.Extrusion.Z)
	w.Tag(2, h.PatternName)
	w.Int(70, h.SolidFill)
	w.Int(71, h.Associative)
	w.Int(91, len(h.Paths))
	for _, p := range h.Paths {
		w.Int(92, p.Type)
		for _, t := range p.Tags {
			w.Tag(t.Code, t.Value)
		}
		w.Int(97, len(p.Sources))
		for _, src := range p.Sources {
			w.Tag(330, src)
		}
	}
	w.Int(75, h.Style)
	w.Int(76, h.PatternType)
	if h.SolidFill == 0 {
		w.Float(52, h.PatternAngle)
		w.Float(41, h.PatternScale)
		w.Int(77, h.PatternDouble)
		w.Int(78, len(h.Pattern))
		for _, line := range h.Pattern {
			w.Float(53, line.Angle)
			w.Float(43, line.BaseX)
			w.Float(44, line.BaseY)
			w.Float(45, line.OffsetX)
			w.Float(46, line.OffsetY)
			w.Int(79, len(line.Dashes))
			for _, dash := range line.Dashes {
				w.Float(49, dash)
			}
		}
	}
	if h.PixelSize != 0 {
		w.Float(47, h.PixelSize)
	}
	w.Int(98, len(h.Seeds))
	for _, seed := range h.Seeds {
		w.Float(10, seed.X)
		w.Float(20, seed.Y)
	}
	return w.Err()
}
