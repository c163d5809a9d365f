package entities

import (
	"fmt"

	"github.com/zooyer/dxf/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(ctx *core.Context, scanner *core.Scanner) error
	Write(ctx *core.Context, w *core.Writer) error
	Type() string
	Layer() string
	BBox() core.BBox
	Common() *Common
}

// BaseEntity 存放所有实体通用的属性块
type BaseEntity struct {
	TypeName string
	Attr     Common
}

func newBase(typeName string) BaseEntity {
	return BaseEntity{TypeName: typeName, Attr: NewCommon()}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.Attr.Layer }

// BBox 默认包围盒为空，几何实体各自覆盖
func (b *BaseEntity) BBox() core.BBox { return core.BBox{} }

func (b *BaseEntity) Common() *Common { return &b.Attr }

// EntityFactory 定义了如何创建一个带格式默认值的实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体，未登记的类型返回 nil
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}

// codec 是各实体内部实现的吸收/标记接口，驱动共享解析循环
type codec interface {
	Entity
	// absorb 处理本实体专属的组码，返回是否已处理
	absorb(ctx *core.Context, t core.Tag) bool
	// markers 返回本实体在 R13+ 下的 100 子类标记（按写出顺序）
	markers() []string
}

// preAbsorber 由少数实体实现：它们自身的组码表与公共属性集重叠
// （如 HATCH 边界引用的 330、代理实体的 310/92、DIMSTYLE 的 105），
// 需要在公共属性吸收之前先行认领。
type preAbsorber interface {
	preAbsorb(ctx *core.Context, t core.Tag) bool
}

// parseEntity 实现统一的实体解析状态机。
// 进入时 scanner.LastTag 是本实体的 0/类型名哨兵；
// 返回时 LastTag 停在终结的 0 标签上，由上层分发器继续处理。
func parseEntity(ctx *core.Context, s *core.Scanner, e codec) error {
	ctx.Entity = e.Type()
	attr := e.Common()
	pre, _ := e.(preAbsorber)

	for s.Next() {
		ctx.Sync(s)
		t := s.LastTag

		switch {
		case t.Code == 0:
			return nil
		case t.Code == 999:
			ctx.Report(core.DiagComment, "%s", t.AsString())
		case t.Code == 102:
			absorbAppGroup(ctx, s, attr, t)
		case pre != nil && pre.preAbsorb(ctx, t):
		case t.Code == 100:
			checkMarker(ctx, e, t.AsString())
		case attr.absorb(ctx, t):
			// 公共属性优先吸收，实体自身永远看不到这些组码
		case e.absorb(ctx, t):
		default:
			ctx.Report(core.DiagUnknownTag, "group %d not recognized for %s", t.Code, e.Type())
		}
	}

	if err := s.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%s: %w: no 0 sentinel before end of file", e.Type(), core.ErrUnterminated)
}

// absorbAppGroup 处理 102 应用组：ACAD_REACTORS/ACAD_XDICTIONARY 的句柄
// 被存入公共属性块，其他应用组一律跳到配对的 "}" 为止。
func absorbAppGroup(ctx *core.Context, s *core.Scanner, attr *Common, open core.Tag) {
	group := open.AsString()
	for s.Next() {
		ctx.Sync(s)
		t := s.LastTag
		if t.Code == 102 && t.AsString() == "}" {
			return
		}
		switch {
		case group == "{ACAD_REACTORS" && t.Code == 330:
			attr.OwnerSoft = t.AsString()
		case group == "{ACAD_XDICTIONARY" && t.Code == 360:
			attr.OwnerHard = t.AsString()
		}
	}
}

func checkMarker(ctx *core.Context, e codec, marker string) {
	if marker == "AcDbEntity" {
		return
	}
	for _, m := range e.markers() {
		if m == marker {
			return
		}
	}
	ctx.Report(core.DiagSubclass, "subclass marker %q does not belong to %s", marker, e.Type())
}

// absorbPoint 吸收一组点坐标：组码 10+i/20+i/30+i，任一轴可缺省
func absorbPoint(ctx *core.Context, t core.Tag, i int, p *core.Point) bool {
	switch t.Code {
	case 10 + i:
		ctx.Float(t, &p.X)
	case 20 + i:
		ctx.Float(t, &p.Y)
	case 30 + i:
		ctx.Float(t, &p.Z)
	default:
		return false
	}
	return true
}

// writePoint 按组码升序写出三轴坐标
func writePoint(w *core.Writer, i int, p core.Point) {
	w.Float(10+i, p.X)
	w.Float(20+i, p.Y)
	w.Float(30+i, p.Z)
}

// missingName 写入端对必填名称为空的统一拒绝
func missingName(kind, field string) error {
	return fmt.Errorf("%s: %w: %s", kind, core.ErrMissingName, field)
}

func bboxOf(points ...core.Point) core.BBox {
	if len(points) == 0 {
		return core.BBox{}
	}
	box := core.BBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Z < box.Min.Z {
			box.Min.Z = p.Z
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
		if p.Z > box.Max.Z {
			box.Max.Z = p.Z
		}
	}
	return box
}
