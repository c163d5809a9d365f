package entities

import (
	"github.com/zooyer/dxf/core"
)

// Image 代表光栅图像引用 (IMAGE)，R14 起
type Image struct {
	BaseEntity
	ClassVersion   int          // 组码 90
	InsertionPoint core.Point   // 组码 10
	UVector        core.Point   // 组码 11，单个像素的 U 方向
	VVector        core.Point   // 组码 12，单个像素的 V 方向
	Size           core.Point   // 组码 13，图像尺寸（像素）
	ImageDef       string       // 组码 340，图像定义对象句柄
	DefReactor     string       // 组码 360，图像定义反应器句柄
	DisplayProps   int          // 组码 70
	Clipping       int16        // 组码 280
	Brightness     int16        // 组码 281，默认 50
	Contrast       int16        // 组码 282，默认 50
	Fade           int16        // 组码 283
	ClipType       int          // 组码 71，1 矩形 2 多边形
	ClipVertices   []core.Point // 组码 14/24，条数由 91 声明
}

func init() {
	Register("IMAGE", func() Entity { return NewImage() })
}

func NewImage() *Image {
	i := &Image{BaseEntity: newBase("IMAGE")}
	i.UVector = core.Point{X: 1}
	i.VVector = core.Point{Y: 1}
	i.DisplayProps = 3
	i.Brightness = 50
	i.Contrast = 50
	i.ClipType = 1
	return i
}

func (i *Image) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, i)
}

// preAbsorb 截获 360：这里是图像定义反应器句柄而不是扩展词典
func (i *Image) preAbsorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 360 {
		i.DefReactor = t.AsString()
		return true
	}
	return false
}

func (i *Image) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 14:
		var v core.Point
		ctx.Float(t, &v.X)
		i.ClipVertices = append(i.ClipVertices, v)
	case 24:
		if len(i.ClipVertices) == 0 {
			return false
		}
		ctx.Float(t, &i.ClipVertices[len(i.ClipVertices)-1].Y)
	case 70:
		ctx.Int(t, &i.DisplayProps)
	case 71:
		ctx.Int(t, &i.ClipType)
	case 90:
		ctx.Int(t, &i.ClassVersion)
	case 91:
		// 裁剪顶点个数由 14 的实际个数重建
	case 280:
		ctx.Int16(t, &i.Clipping)
	case 281:
		ctx.Int16(t, &i.Brightness)
	case 282:
		ctx.Int16(t, &i.Contrast)
	case 283:
		ctx.Int16(t, &i.Fade)
	case 340:
		i.ImageDef = t.AsString()
	default:
		return absorbPoint(ctx, t, 0, &i.InsertionPoint) ||
			absorbPoint(ctx, t, 1, &i.UVector) ||
			absorbPoint(ctx, t, 2, &i.VVector) ||
			absorbPoint(ctx, t, 3, &i.Size)
	}
	return true
}

func (i *Image) markers() []string {
	return []string{"AcDbRasterImage"}
}

func (i *Image) Write(ctx *core.Context, w *core.Writer) error {
	if i.ImageDef == "" {
		return missingName("IMAGE", "image definition handle")
	}
	w.Name("IMAGE")
	i.Attr.emit(ctx, w, "AcDbRasterImage")
	w.Int(90, i.ClassVersion)
	writePoint(w, 0, i.InsertionPoint)
	writePoint(w, 1, i.UVector)
	writePoint(w, 2, i.VVector)
	w.Float(13, i.Size.X)
	w.Float(23, i.Size.Y)
	w.Tag(340, i.ImageDef)
	w.Int(70, i.DisplayProps)
	w.Int(280, int(i.Clipping))
	w.Int(281, int(i.Brightness))
	w.Int(282, int(i.Contrast))
	w.Int(283, int(i.Fade))
	if i.DefReactor != "" {
		w.Tag(360, i.DefReactor)
	}
	w.Int(71, i.ClipType)
	w.Int(91, len(i.ClipVertices))
	for _, v := range i.ClipVertices {
		w.Float(14, v.X)
		w.Float(24, v.Y)
	}
	return w.Err()
}

func (i *Image) BBox() core.BBox {
	corner := core.Point{
		X: i.InsertionPoint.X + i.UVector.X*i.Size.X + i.VVector.X*i.Size.Y,
		Y: i.InsertionPoint.Y + i.UVector.Y*i.Size.X + i.VVector.Y*i.Size.Y,
		Z: i.InsertionPoint.Z,
	}
	return bboxOf(i.InsertionPoint, corner)
}
