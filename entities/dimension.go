package entities

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/dxf/core"
)

// DIMENSION 组码 70 的位标志，低位是 0..6 的标注类型
const (
	DimTypeMask       = 7   // 0 线性 1 对齐 2 角度 3 直径 4 半径 5 三点角度 6 坐标
	DimBlockPrivate   = 32  // 几何块为本标注专属
	DimOrdinateX      = 64  // 坐标标注测 X（否则测 Y）
	DimUserPositioned = 128 // 文字位置由用户指定
)

type Dimension struct {
	BaseEntity
	DimType           int        // 组码 70 的低位类型 0..6
	Flags             int        // 组码 70 的位标志 32/64/128
	BlockName         string     // 组码 2 (标注几何块)
	StyleName         string     // 组码 3 (标注样式名称，用于关联 TABLES)
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50
	LeaderLength      float64    // 组码 40 (半径/直径标注)
	DefPoint          core.Point // 组码 10 (标注线起点)
	TextMidPoint      core.Point // 组码 11 (文字中点)
	InsertPoint       core.Point // 组码 12
	MeasureStart      core.Point // 组码 13 (被测量的起点)
	MeasureEnd        core.Point // 组码 14 (被测量的终点)
	ArcPoint          core.Point // 组码 15 (角度/直径类标注)
	OrdinatePoint     core.Point // 组码 16
	Attachment        int        // 组码 71，R2000 起
	LineSpacingStyle  int        // 组码 72，R2000 起
	LineSpacingFactor float64    // 组码 41，R2000 起
}

func init() {
	Register("DIMENSION", func() Entity { return NewDimension() })
}

func NewDimension() *Dimension {
	d := &Dimension{BaseEntity: newBase("DIMENSION")}
	d.StyleName = DefaultTextStyle
	return d
}

func (d *Dimension) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, d)
}

func (d *Dimension) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 1:
		d.Text = t.AsString()
	case 2:
		d.BlockName = t.AsString()
	case 3:
		// 样式名统一大写，方便与 TABLES 关联
		d.StyleName = strings.ToUpper(t.AsString())
	case 40:
		ctx.Float(t, &d.LeaderLength)
	case 41:
		ctx.Gate(core.R2000, 41)
		ctx.Float(t, &d.LineSpacingFactor)
	case 42:
		ctx.Float(t, &d.ActualMeasurement)
	case 50:
		ctx.Float(t, &d.Angle)
	case 70:
		var v int
		ctx.Int(t, &v)
		d.DimType = v & DimTypeMask
		d.Flags = v &^ DimTypeMask
	case 71:
		ctx.Gate(core.R2000, 71)
		ctx.Int(t, &d.Attachment)
	case 72:
		ctx.Gate(core.R2000, 72)
		ctx.Int(t, &d.LineSpacingStyle)
	default:
		return absorbPoint(ctx, t, 0, &d.DefPoint) ||
			absorbPoint(ctx, t, 1, &d.TextMidPoint) ||
			absorbPoint(ctx, t, 2, &d.InsertPoint) ||
			absorbPoint(ctx, t, 3, &d.MeasureStart) ||
			absorbPoint(ctx, t, 4, &d.MeasureEnd) ||
			absorbPoint(ctx, t, 5, &d.ArcPoint) ||
			absorbPoint(ctx, t, 6, &d.OrdinatePoint)
	}
	return true
}

func (d *Dimension) markers() []string {
	return []string{
		"AcDbDimension",
		"AcDbAlignedDimension",
		"AcDbRotatedDimension",
		"AcDb2LineAngularDimension",
		"AcDb3PointAngularDimension",
		"AcDbDiametricDimension",
		"AcDbRadialDimension",
		"AcDbOrdinateDimension",
	}
}

func (d *Dimension) subclassMarker() string {
	switch d.DimType {
	case 2:
		return "AcDb2LineAngularDimension"
	case 3:
		return "AcDbDiametricDimension"
	case 4:
		return "AcDbRadialDimension"
	case 5:
		return "AcDb3PointAngularDimension"
	case 6:
		return "AcDbOrdinateDimension"
	}
	return "AcDbAlignedDimension"
}

func (d *Dimension) Write(ctx *core.Context, w *core.Writer) error {
	if d.StyleName == "" {
		return missingName("DIMENSION", "dimension style name")
	}
	w.Name("DIMENSION")
	d.Attr.emit(ctx, w, "AcDbDimension")
	if d.BlockName != "" {
		w.Tag(2, d.BlockName)
	}
	writePoint(w, 0, d.DefPoint)
	writePoint(w, 1, d.TextMidPoint)
	// 写出时将类型与位标志重新合并到 70
	w.Int(70, d.DimType|d.Flags)
	if ctx.Version >= core.R2000 {
		if d.Attachment != 0 {
			w.Int(71, d.Attachment)
		}
		if d.LineSpacingStyle != 0 {
			w.Int(72, d.LineSpacingStyle)
		}
		if d.LineSpacingFactor != 0 {
			w.Float(41, d.LineSpacingFactor)
		}
	}
	if d.ActualMeasurement != 0 {
		w.Float(42, d.ActualMeasurement)
	}
	if d.Text != "" {
		w.Tag(1, d.Text)
	}
	w.Tag(3, d.StyleName)
	if ctx.Version >= core.R13 {
		w.Tag(100, d.subclassMarker())
	}
	writePoint(w, 2, d.InsertPoint)
	writePoint(w, 3, d.MeasureStart)
	writePoint(w, 4, d.MeasureEnd)
	writePoint(w, 5, d.ArcPoint)
	writePoint(w, 6, d.OrdinatePoint)
	if d.Angle != 0 {
		w.Float(50, d.Angle)
	}
	if d.LeaderLength != 0 {
		w.Float(40, d.LeaderLength)
	}
	d.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

// BBox 覆盖：为了通用库的严谨性，标注的 BBox 应该包含所有定义点
func (d *Dimension) BBox() core.BBox {
	return d.BBox2(0)
}

// GetExtensionPoints 计算标注线上的两个转角点
// 返回：对应 P13 的转角点, 对应 P14 的转角点
func (d *Dimension) GetExtensionPoints() (p13Corner, p14Corner core.Point) {
	// 将角度从角度制转为弧度制
	rad := d.Angle * math.Pi / 180.0
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	// 标注线的单位方向向量
	v := core.Point{X: cos, Y: sin}

	// 计算 P13 在标注线上的投影
	// 向量 (P13 - P10) 在方向向量 v 上的投影
	dx13 := d.MeasureStart.X - d.DefPoint.X
	dy13 := d.MeasureStart.Y - d.DefPoint.Y
	dot13 := dx13*v.X + dy13*v.Y

	p13Corner = core.Point{
		X: d.DefPoint.X + v.X*dot13,
		Y: d.DefPoint.Y + v.Y*dot13,
	}

	// 计算 P14 在标注线上的投影
	dx14 := d.MeasureEnd.X - d.DefPoint.X
	dy14 := d.MeasureEnd.Y - d.DefPoint.Y
	dot14 := dx14*v.X + dy14*v.Y

	p14Corner = core.Point{
		X: d.DefPoint.X + v.X*dot14,
		Y: d.DefPoint.Y + v.Y*dot14,
	}

	return
}

// BBox2 实现“完美矩形”包围盒
// exe 代表标注线超出延伸线的长度 (DIMEXE)
func (d *Dimension) BBox2(exe float64) core.BBox {
	// 1. 获取基础的转角投影点 (标注线上的两个端点)
	c13, c14 := d.GetExtensionPoints()

	// 2. 计算延伸线的方向向量 (垂直于标注线的方向)
	// 标注线角度是 d.Angle，延伸线角度是 d.Angle + 90°
	upRad := (d.Angle + 90.0) * math.Pi / 180.0
	u := core.Point{X: math.Cos(upRad), Y: math.Sin(upRad)}

	// 3. 计算“冒尖”后的顶点
	// 逻辑：从转角点 (c13, c14) 沿着 u 方向再往外推 exe 距离
	// 注意：这里需要判定 u 的方向是远离测量点还是靠近测量点
	// 我们通过向量 (c13 - MeasureStart) 与 u 的点积来判定方向
	vecToLine := core.Point{X: c13.X - d.MeasureStart.X, Y: c13.Y - d.MeasureStart.Y}
	dot := vecToLine.X*u.X + vecToLine.Y*u.Y

	direction := 1.0
	if dot < 0 {
		direction = -1.0
	}

	p13Top := core.Point{
		X: c13.X + u.X*exe*direction,
		Y: c13.Y + u.Y*exe*direction,
	}
	p14Top := core.Point{
		X: c14.X + u.X*exe*direction,
		Y: c14.Y + u.Y*exe*direction,
	}

	// 4. 收集 4 个关键顶点：2个测量原点 + 2个冒尖的顶点
	points := []core.Point{
		d.MeasureStart,
		d.MeasureEnd,
		p13Top,
		p14Top,
		d.TextMidPoint, // 文字位置
	}

	// 5. 计算包围盒
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return core.BBox{
		Min: core.Point{X: minX, Y: minY},
		Max: core.Point{X: maxX, Y: maxY},
	}
}

// GetCleanVal 正则提取数值
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		reFormat := regexp.MustCompile(`\\[A-Z].*?;`)
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		reNum := regexp.MustCompile(`[0-9.]+`)
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}
