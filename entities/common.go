package entities

import (
	"github.com/zooyer/dxf/core"
)

// DXF 规定的哨兵值与默认名称
const (
	ByBlock = 0   // 颜色跟随块
	ByLayer = 256 // 颜色跟随图层

	Modelspace = 0
	Paperspace = 1

	DefaultLayer     = "0"
	DefaultLinetype  = "BYLAYER"
	DefaultTextStyle = "STANDARD"
)

// Common 存放所有可绘制实体共有的属性块。
// 读取时由 absorb 统一吸收，实体自身的 codec 不会看到这些组码；
// 写出时由 emit 按规范顺序、按目标版本裁剪输出。
type Common struct {
	Handle        uint32     // 组码 5
	Linetype      string     // 组码 6，默认 BYLAYER
	Layer         string     // 组码 8，默认 "0"
	Elevation     float64    // 组码 38，仅 R11 及以前
	Thickness     float64    // 组码 39
	LinetypeScale float64    // 组码 48，R13 起，默认 1.0
	Visibility    int16      // 组码 60，0 可见 1 不可见
	Color         int        // 组码 62，默认 256 (BYLAYER)
	Paperspace    int        // 组码 67，0 模型空间 1 图纸空间
	GraphicsSize  int        // 组码 92 或 160，R2000 起
	ShadowMode    int16      // 组码 284，R2009 起，0..3
	Graphics      []string   // 组码 310 的十六进制块，按输入顺序
	OwnerSoft     string     // ACAD_REACTORS 组内的 330 句柄，R14 起
	Material      string     // 组码 347，R2008 起
	OwnerHard     string     // ACAD_XDICTIONARY 组内的 360 句柄，R14 起
	Lineweight    int16      // 组码 370，R2002 起
	PlotStyle     string     // 组码 390，R2009 起
	TrueColor     int32      // 组码 420，R2004 起
	ColorName     string     // 组码 430，R2004 起
	Transparency  int32      // 组码 440，R2004 起
	Extrusion     core.Point // 组码 210/220/230，默认 (0,0,1)
}

// NewCommon 返回带格式默认值的属性块
func NewCommon() Common {
	return Common{
		Linetype:      DefaultLinetype,
		Layer:         DefaultLayer,
		LinetypeScale: 1,
		Color:         ByLayer,
		Extrusion:     core.Point{Z: 1},
	}
}

// absorb 吸收属于公共属性集的组码，返回是否已处理。
// 版本门槛只产生诊断，值仍会存入（宽容读取）。
func (c *Common) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 5:
		ctx.Handle(t, &c.Handle)
	case 6:
		c.Linetype = t.AsString()
	case 8:
		c.Layer = t.AsString()
	case 38:
		// R12 起 38 属于遗留组码，但 LWPOLYLINE 等实体仍合法使用，静默吸收
		ctx.Float(t, &c.Elevation)
	case 39:
		ctx.Float(t, &c.Thickness)
		if c.Thickness < 0 {
			ctx.Report(core.DiagInvariant, "negative thickness %f, reset to 0", c.Thickness)
			c.Thickness = 0
		}
	case 48:
		ctx.Gate(core.R13, 48)
		ctx.Float(t, &c.LinetypeScale)
		if c.LinetypeScale < 0 {
			ctx.Report(core.DiagInvariant, "negative linetype scale %f, reset to 1", c.LinetypeScale)
			c.LinetypeScale = 1
		}
	case 60:
		ctx.Gate(core.R13, 60)
		ctx.Int16(t, &c.Visibility)
		if c.Visibility != 0 && c.Visibility != 1 {
			ctx.Report(core.DiagInvariant, "visibility %d out of {0,1}, reset to 0", c.Visibility)
			c.Visibility = 0
		}
	case 62:
		ctx.Int(t, &c.Color)
		if c.Color < -1 || c.Color > ByLayer {
			ctx.Report(core.DiagInvariant, "color index %d out of -1..256, reset to BYLAYER", c.Color)
			c.Color = ByLayer
		}
	case 67:
		ctx.Gate(core.R13, 67)
		ctx.Int(t, &c.Paperspace)
		if c.Paperspace != Modelspace && c.Paperspace != Paperspace {
			ctx.Report(core.DiagInvariant, "paperspace flag %d out of {0,1}, reset to 0", c.Paperspace)
			c.Paperspace = Modelspace
		}
	case 92:
		ctx.Gate(core.R2000, 92)
		ctx.Int(t, &c.GraphicsSize) // 与 160 并存时后到者生效
	case 160:
		ctx.Gate(core.R2000, 160)
		ctx.Int(t, &c.GraphicsSize)
	case 284:
		ctx.Gate(core.R2009, 284)
		ctx.Int16(t, &c.ShadowMode)
		if c.ShadowMode < 0 || c.ShadowMode > 3 {
			ctx.Report(core.DiagInvariant, "shadow mode %d out of 0..3, reset to 0", c.ShadowMode)
			c.ShadowMode = 0
		}
	case 310:
		ctx.Gate(core.R2000, 310)
		chunk := t.AsString()
		if len(chunk) > core.MaxChunk {
			ctx.Report(core.DiagFormat, "binary chunk of %d chars exceeds %d", len(chunk), core.MaxChunk)
		}
		c.Graphics = append(c.Graphics, chunk)
	case 330:
		ctx.Gate(core.R14, 330)
		c.OwnerSoft = t.AsString()
	case 347:
		ctx.Gate(core.R2008, 347)
		c.Material = t.AsString()
	case 360:
		ctx.Gate(core.R14, 360)
		c.OwnerHard = t.AsString()
	case 370:
		ctx.Gate(core.R2002, 370)
		ctx.Int16(t, &c.Lineweight)
	case 390:
		ctx.Gate(core.R2009, 390)
		c.PlotStyle = t.AsString()
	case 420:
		ctx.Gate(core.R2004, 420)
		ctx.Int32(t, &c.TrueColor)
	case 430:
		ctx.Gate(core.R2004, 430)
		c.ColorName = t.AsString()
	case 440:
		ctx.Gate(core.R2004, 440)
		ctx.Int32(t, &c.Transparency)
	case 210:
		ctx.Float(t, &c.Extrusion.X)
	case 220:
		ctx.Float(t, &c.Extrusion.Y)
	case 230:
		ctx.Float(t, &c.Extrusion.Z)
	default:
		return false
	}
	return true
}

// emit 按规范的固定顺序写出公共属性，再写实体自身的子类标记。
// 版本不及门槛的标签一律不写出，与读取侧的宽容形成对照。
func (c *Common) emit(ctx *core.Context, w *core.Writer, marker string) {
	v := ctx.Version

	if v >= core.R13 {
		w.Hex(5, c.Handle)
	}
	if v >= core.R14 {
		if c.OwnerSoft != "" {
			w.Tag(102, "{ACAD_REACTORS")
			w.Tag(330, c.OwnerSoft)
			w.Tag(102, "}")
		}
		if c.OwnerHard != "" {
			w.Tag(102, "{ACAD_XDICTIONARY")
			w.Tag(360, c.OwnerHard)
			w.Tag(102, "}")
		}
	}
	if v >= core.R13 {
		w.Tag(100, "AcDbEntity")
	}
	if v >= core.R13 && c.Paperspace == Paperspace {
		w.Int(67, Paperspace)
	}

	layer := c.Layer
	if layer == "" {
		ctx.Report(core.DiagDefault, "empty layer string, defaulting to %q", DefaultLayer)
		layer = DefaultLayer
	}
	w.Tag(8, layer)

	linetype := c.Linetype
	if linetype == "" {
		ctx.Report(core.DiagDefault, "empty linetype string, defaulting to %q", DefaultLinetype)
		linetype = DefaultLinetype
	}
	if linetype != DefaultLinetype {
		w.Tag(6, linetype)
	}

	if v >= core.R2008 && c.Material != "" {
		w.Tag(347, c.Material)
	}
	if color := c.clampColor(ctx); color != ByLayer {
		w.Int(62, color)
	}
	if v >= core.R2002 && c.Lineweight != 0 {
		w.Int(370, int(c.Lineweight))
	}
	if v <= core.R11 && ctx.Flatland && c.Elevation != 0 {
		w.Float(38, c.Elevation)
	}
	if c.Thickness != 0 {
		w.Float(39, c.Thickness)
	}
	if v >= core.R13 && c.LinetypeScale != 1 {
		w.Float(48, c.LinetypeScale)
	}
	if v >= core.R13 && c.Visibility != 0 {
		w.Int(60, int(c.Visibility))
	}
	if v >= core.R2000 && len(c.Graphics) > 0 {
		code := 92
		if ctx.Wide64 {
			code = 160
		}
		w.Int(code, c.GraphicsSize)
		for _, chunk := range c.Graphics {
			w.Tag(310, chunk)
		}
	}
	if v >= core.R2004 {
		if c.TrueColor != 0 {
			w.Int(420, int(c.TrueColor))
		}
		if c.ColorName != "" {
			w.Tag(430, c.ColorName)
		}
		if c.Transparency != 0 {
			w.Int(440, int(c.Transparency))
		}
	}
	if v >= core.R2009 {
		if c.PlotStyle != "" {
			w.Tag(390, c.PlotStyle)
		}
		if c.ShadowMode != 0 {
			w.Int(284, int(c.ShadowMode))
		}
	}

	if v >= core.R13 && marker != "" {
		w.Tag(100, marker)
	}
}

func (c *Common) clampColor(ctx *core.Context) int {
	if c.Color < -1 || c.Color > ByLayer {
		ctx.Report(core.DiagInvariant, "color index %d out of -1..256, writing BYLAYER", c.Color)
		return ByLayer
	}
	return c.Color
}

// emitExtrusion 仅当挤出方向偏离 (0,0,1) 且目标版本支持时写出
func (c *Common) emitExtrusion(ctx *core.Context, w *core.Writer) {
	if ctx.Version < core.R12 {
		return
	}
	if c.Extrusion == (core.Point{Z: 1}) {
		return
	}
	w.Float(210, c.Extrusion.X)
	w.Float(220, c.Extrusion.Y)
	w.Float(230, c.Extrusion.Z)
}
