package entities

import (
	"github.com/zooyer/dxf/core"
)

// POLYLINE 组码 70 的标志位
const (
	PolylineClosed   = 1  // 闭合（多边形网格为 M 向闭合）
	PolylineCurveFit = 2  // 加入曲线拟合顶点
	PolylineSpline   = 4  // 加入样条拟合顶点
	Polyline3D       = 8  // 三维多段线
	PolylineMesh3D   = 16 // 三维多边形网格
	PolylineMeshN    = 32 // 网格 N 向闭合
	PolylinePFace    = 64 // 多面网格
)

type Polyline struct {
	BaseEntity
	Flags          int     // 组码 70 位域
	StartWidth     float64 // 组码 40，默认起始宽度
	EndWidth       float64 // 组码 41，默认终止宽度
	VerticesFollow int     // 组码 66，网格/顶点链哨兵，写出时恒为 1
	MeshM          int     // 组码 71
	MeshN          int     // 组码 72
	DensityM       int     // 组码 73
	DensityN       int     // 组码 74
	SurfaceType    int     // 组码 75
	Elevation      core.Point
	Vertices       []*Vertex
}

type Vertex struct {
	BaseEntity
	Location   core.Point
	StartWidth float64 // 组码 40
	EndWidth   float64 // 组码 41
	Bulge      float64 // 组码 42，圆弧段参数
	Flags      int     // 组码 70
	Tangent    float64 // 组码 50
	Index1     int     // 组码 71，多面网格顶点索引
	Index2     int     // 组码 72
	Index3     int     // 组码 73
	Index4     int     // 组码 74
}

func init() {
	Register("POLYLINE", func() Entity { return NewPolyline() })
	Register("VERTEX", func() Entity { return NewVertex() })
}

func NewPolyline() *Polyline {
	p := &Polyline{BaseEntity: newBase("POLYLINE")}
	p.VerticesFollow = 1
	return p
}

func NewVertex() *Vertex {
	return &Vertex{BaseEntity: newBase("VERTEX")}
}

func (p *Polyline) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 40:
		ctx.Float(t, &p.StartWidth)
	case 41:
		ctx.Float(t, &p.EndWidth)
	case 66:
		ctx.Int(t, &p.VerticesFollow)
	case 70:
		ctx.Int(t, &p.Flags)
	case 71:
		ctx.Int(t, &p.MeshM)
	case 72:
		ctx.Int(t, &p.MeshN)
	case 73:
		ctx.Int(t, &p.DensityM)
	case 74:
		ctx.Int(t, &p.DensityN)
	case 75:
		ctx.Int(t, &p.SurfaceType)
	default:
		// POLYLINE 的 10/20 恒为 0，30 承载标高
		return absorbPoint(ctx, t, 0, &p.Elevation)
	}
	return true
}

func (p *Polyline) markers() []string {
	return []string{"AcDb2dPolyline", "AcDb3dPolyline", "AcDbPolygonMesh", "AcDbPolyFaceMesh"}
}

func (p *Polyline) Parse(ctx *core.Context, s *core.Scanner) error {
	if err := parseEntity(ctx, s, p); err != nil {
		return err
	}

	// 顶点链总是跟随本体，直至 SEQEND
	for s.LastTag.Code == 0 {
		switch s.LastTag.AsString() {
		case "SEQEND":
			seq := NewSeqEnd()
			return seq.Parse(ctx, s)
		case "VERTEX":
			v := NewVertex()
			if err := v.Parse(ctx, s); err != nil {
				return err
			}
			p.Vertices = append(p.Vertices, v)
		default:
			if len(p.Vertices) > 0 || p.VerticesFollow == 1 {
				ctx.Entity = p.TypeName
				ctx.Report(core.DiagMissing, "vertex chain not terminated by SEQEND")
			}
			return nil
		}
	}
	return s.Err()
}

func (p *Polyline) subclassMarker() string {
	switch {
	case p.Flags&Polyline3D != 0:
		return "AcDb3dPolyline"
	case p.Flags&PolylineMesh3D != 0:
		return "AcDbPolygonMesh"
	case p.Flags&PolylinePFace != 0:
		return "AcDbPolyFaceMesh"
	}
	return "AcDb2dPolyline"
}

func (p *Polyline) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("POLYLINE")
	p.Attr.emit(ctx, w, p.subclassMarker())
	// 顶点随后哨兵恒为 1（网格标志存在时规范硬性要求）
	w.Int(66, 1)
	writePoint(w, 0, p.Elevation)
	if p.Flags != 0 {
		w.Int(70, p.Flags)
	}
	if p.StartWidth != 0 {
		w.Float(40, p.StartWidth)
	}
	if p.EndWidth != 0 {
		w.Float(41, p.EndWidth)
	}
	if p.MeshM != 0 || p.MeshN != 0 {
		w.Int(71, p.MeshM)
		w.Int(72, p.MeshN)
	}
	if p.DensityM != 0 || p.DensityN != 0 {
		w.Int(73, p.DensityM)
		w.Int(74, p.DensityN)
	}
	if p.SurfaceType != 0 {
		w.Int(75, p.SurfaceType)
	}
	p.Attr.emitExtrusion(ctx, w)

	for _, v := range p.Vertices {
		if v.Attr.Layer == "" {
			v.Attr.Layer = p.Attr.Layer
		}
		if err := v.Write(ctx, w); err != nil {
			return err
		}
	}
	seq := NewSeqEnd()
	seq.Attr.Layer = p.Attr.Layer
	if err := seq.Write(ctx, w); err != nil {
		return err
	}
	return w.Err()
}

func (p *Polyline) BBox() core.BBox {
	points := make([]core.Point, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		points = append(points, v.Location)
	}
	return bboxOf(points...)
}

func (v *Vertex) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, v)
}

func (v *Vertex) absorb(ctx *core.Context, t core.Tag) bool {
	switch t.Code {
	case 40:
		ctx.Float(t, &v.StartWidth)
	case 41:
		ctx.Float(t, &v.EndWidth)
	case 42:
		ctx.Float(t, &v.Bulge)
	case 50:
		ctx.Float(t, &v.Tangent)
	case 70:
		ctx.Int(t, &v.Flags)
	case 71:
		ctx.Int(t, &v.Index1)
	case 72:
		ctx.Int(t, &v.Index2)
	case 73:
		ctx.Int(t, &v.Index3)
	case 74:
		ctx.Int(t, &v.Index4)
	default:
		return absorbPoint(ctx, t, 0, &v.Location)
	}
	return true
}

func (v *Vertex) markers() []string {
	return []string{"AcDbVertex", "AcDb2dVertex", "AcDb3dPolylineVertex", "AcDbPolygonMeshVertex", "AcDbFaceRecord"}
}

func (v *Vertex) Write(ctx *core.Context, w *core.Writer) error {
	w.Name("VERTEX")
	v.Attr.emit(ctx, w, "AcDbVertex")
	if ctx.Version >= core.R13 {
		w.Tag(100, "AcDb2dVertex")
	}
	writePoint(w, 0, v.Location)
	if v.StartWidth != 0 {
		w.Float(40, v.StartWidth)
	}
	if v.EndWidth != 0 {
		w.Float(41, v.EndWidth)
	}
	if v.Bulge != 0 {
		w.Float(42, v.Bulge)
	}
	if v.Flags != 0 {
		w.Int(70, v.Flags)
	}
	if v.Tangent != 0 {
		w.Float(50, v.Tangent)
	}
	if v.Index1 != 0 || v.Index2 != 0 || v.Index3 != 0 || v.Index4 != 0 {
		w.Int(71, v.Index1)
		w.Int(72, v.Index2)
		w.Int(73, v.Index3)
		w.Int(74, v.Index4)
	}
	return w.Err()
}

func (v *Vertex) BBox() core.BBox {
	return core.BBox{Min: v.Location, Max: v.Location}
}
