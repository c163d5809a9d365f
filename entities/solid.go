package entities

import (
	"github.com/zooyer/dxf/core"
)

// Solid 实心四边形（或三角形）；Trace 与其同构
type Solid struct {
	BaseEntity
	P0, P1, P2, P3 core.Point
	hasP3          bool
}

type Trace struct {
	Solid
}

func init() {
	Register("SOLID", func() Entity { return NewSolid() })
	Register("TRACE", func() Entity { return NewTrace() })
}

func NewSolid() *Solid {
	return &Solid{BaseEntity: newBase("SOLID")}
}

func NewTrace() *Trace {
	t := &Trace{Solid: Solid{BaseEntity: newBase("TRACE")}}
	return t
}

func (e *Solid) Parse(ctx *core.Context, s *core.Scanner) error {
	if err := parseEntity(ctx, s, e); err != nil {
		return err
	}
	e.fixTriangle()
	return nil
}

// fixTriangle 三角形约定：只给三个角点时第四点等于第三点
func (e *Solid) fixTriangle() {
	if !e.hasP3 {
		e.P3 = e.P2
	}
}

func (e *Solid) absorb(ctx *core.Context, t core.Tag) bool {
	if t.Code == 13 || t.Code == 23 || t.Code == 33 {
		e.hasP3 = true
	}
	return absorbPoint(ctx, t, 0, &e.P0) ||
		absorbPoint(ctx, t, 1, &e.P1) ||
		absorbPoint(ctx, t, 2, &e.P2) ||
		absorbPoint(ctx, t, 3, &e.P3)
}

func (e *Solid) markers() []string { return []string{"AcDbTrace"} }

func (e *Solid) Write(ctx *core.Context, w *core.Writer) error {
	return e.write(ctx, w, "SOLID")
}

// write 恒写四个角点；三角形情况下第四点重复第三点
func (e *Solid) write(ctx *core.Context, w *core.Writer, kind string) error {
	p3 := e.P3
	if !e.hasP3 && p3 == (core.Point{}) {
		p3 = e.P2
	}
	w.Name(kind)
	e.Attr.emit(ctx, w, "AcDbTrace")
	writePoint(w, 0, e.P0)
	writePoint(w, 1, e.P1)
	writePoint(w, 2, e.P2)
	writePoint(w, 3, p3)
	e.Attr.emitExtrusion(ctx, w)
	return w.Err()
}

func (e *Solid) BBox() core.BBox {
	return bboxOf(e.P0, e.P1, e.P2, e.P3)
}

func (e *Trace) Parse(ctx *core.Context, s *core.Scanner) error {
	if err := parseEntity(ctx, s, e); err != nil {
		return err
	}
	e.fixTriangle()
	return nil
}

func (e *Trace) Write(ctx *core.Context, w *core.Writer) error {
	return e.write(ctx, w, "TRACE")
}
