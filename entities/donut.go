package entities

import (
	"fmt"

	"github.com/zooyer/dxf/core"
)

// Donut 是纯写出侧的便捷构造：DXF 没有 DONUT 实体，
// AutoCAD 的 DONUT 命令落盘为一条带两个半圆弧段的闭合宽多段线。
type Donut struct {
	Center  core.Point
	Inside  float64 // 内径（直径）
	Outside float64 // 外径（直径）
	Layer   string
}

func NewDonut(center core.Point, inside, outside float64) *Donut {
	return &Donut{
		Center:  center,
		Inside:  inside,
		Outside: outside,
		Layer:   DefaultLayer,
	}
}

// Validate 检查 0 <= inside < outside
func (d *Donut) Validate() error {
	if d.Inside < 0 || d.Inside >= d.Outside {
		return fmt.Errorf("donut: %w: inside %f, outside %f", core.ErrInvalidValue, d.Inside, d.Outside)
	}
	return nil
}

// Expand 展开为等效的闭合多段线：
// 环带宽度为 (outside-inside)/2，路径半径为 (inside+outside)/4，
// 两个顶点各带 bulge=1 构成上下两个半圆。
func (d *Donut) Expand() (*Polyline, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	width := (d.Outside - d.Inside) / 2
	radius := (d.Inside + d.Outside) / 4

	p := NewPolyline()
	p.Flags = PolylineClosed
	p.StartWidth = width
	p.EndWidth = width
	p.Attr.Layer = d.Layer
	p.Elevation = core.Point{Z: d.Center.Z}

	left := NewVertex()
	left.Location = core.Point{X: d.Center.X - radius, Y: d.Center.Y, Z: d.Center.Z}
	left.StartWidth = width
	left.EndWidth = width
	left.Bulge = 1

	right := NewVertex()
	right.Location = core.Point{X: d.Center.X + radius, Y: d.Center.Y, Z: d.Center.Z}
	right.StartWidth = width
	right.EndWidth = width
	right.Bulge = 1

	p.Vertices = append(p.Vertices, left, right)
	return p, nil
}

// Write 展开后写出，非法参数直接拒绝
func (d *Donut) Write(ctx *core.Context, w *core.Writer) error {
	p, err := d.Expand()
	if err != nil {
		return err
	}
	return p.Write(ctx, w)
}
