package utils

import (
	"github.com/peterstace/simplefeatures/geom"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// ToGeomPoint 把图元坐标转成 simplefeatures 的点
func ToGeomPoint(p core.Point) (geom.Point, error) {
	return geom.NewPoint(geom.Coordinates{
		XY: geom.XY{
			X: p.X,
			Y: p.Y,
		},
		Z: p.Z,
	})
}

// LineToGeom 直线段转线串
func LineToGeom(l *entities.Line) (geom.LineString, error) {
	seq := geom.NewSequence([]float64{
		l.Start.X, l.Start.Y,
		l.End.X, l.End.Y,
	}, geom.DimXY)

	return geom.NewLineString(seq)
}

// LWPolylineToGeom 轻量多段线转线串，闭合时补回首顶点。
// 凸度段按弦处理，弧长需要的话调用方自行细分。
func LWPolylineToGeom(l *entities.LWPolyline) (geom.LineString, error) {
	coords := make([]float64, 0, 2*(len(l.Vertices)+1))
	for _, v := range l.Vertices {
		coords = append(coords, v.X, v.Y)
	}
	if l.Flags&entities.PolylineClosed != 0 && len(l.Vertices) > 0 {
		coords = append(coords, l.Vertices[0].X, l.Vertices[0].Y)
	}

	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}

// PolylineToGeom 重量多段线转线串
func PolylineToGeom(p *entities.Polyline) (geom.LineString, error) {
	coords := make([]float64, 0, 2*(len(p.Vertices)+1))
	for _, v := range p.Vertices {
		coords = append(coords, v.Location.X, v.Location.Y)
	}
	if p.Flags&entities.PolylineClosed != 0 && len(p.Vertices) > 0 {
		coords = append(coords, p.Vertices[0].Location.X, p.Vertices[0].Location.Y)
	}

	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}

// LeaderToGeom 引线顶点链转线串
func LeaderToGeom(l *entities.Leader) (geom.LineString, error) {
	coords := make([]float64, 0, 2*len(l.Vertices))
	for _, v := range l.Vertices {
		coords = append(coords, v.X, v.Y)
	}

	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}

// PolylineArea 闭合轻量多段线围成的面积，非闭合或构不成环时返回 0
func PolylineArea(l *entities.LWPolyline) float64 {
	if l.Flags&entities.PolylineClosed == 0 || len(l.Vertices) < 3 {
		return 0
	}

	ring, err := LWPolylineToGeom(l)
	if err != nil {
		return 0
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return 0
	}

	return poly.Area()
}

// PathLength 线串总长
func PathLength(ls geom.LineString) float64 {
	return ls.Length()
}
