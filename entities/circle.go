package entities

import (
	"fmt"

	"github.com/zooyer/dxf/core"
)

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

func init() {
	Register("CIRCLE", func() Entity { return NewCircle() })
}

func NewCircle() *Circle {
	return &Circle{BaseEntity: newBase("CIRCLE")}
}

func (c *Circle) Parse(ctx *core.Context, s *core.Scanner) error {
	return parseEntity(ctx, s, c)
}

func (c *Circle) absorb(ctx *core.Context, t core.Tag) bool {
	if absorbPoint(ctx, t, 0, &c.Center) {
		return true
	}
	if t.Code == 40 {
		ctx.Float(t, &c.Radius)
		if c.Radius < 0 {
			ctx.Report(core.DiagInvariant, "negative radius %f, reset to 0", c.Radius)
			c.Radius = 0
		}
		return true
	}
	return false
}

func (c *Circle) markers() []string { return []string{"AcDbCircle"} }

func (c *Circle) Write(ctx *core.Context, w *core.Writer) error {
	if c.Radius < 0 {
		return fmt.Errorf("CIRCLE: %w: radius %f", core.ErrInvalidValue, c.Radius)
	}
	w.Name("CIRCLE")
	c.Attr.emit(ctx, w, "AcDbCircle")
	writePoint(w, 0, c.Center)
	w.Float(40, c.Radius)
	c.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (c *Circle) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, Z: c.Center.Z},
		Max: core.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius, Z: c.Center.Z},
	}
}
