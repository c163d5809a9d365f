package utils

import (
	"github.com/zooyer/dxf/entities"
)

// CombineInserts 把嵌套块引用折叠为单个等效引用：
// 子引用的插入点先经父引用变换，缩放逐轴相乘，旋转角相加。
func CombineInserts(parent, child *entities.Insert) *entities.Insert {
	ins := entities.NewInsert()
	ins.Attr = child.Attr
	ins.BlockName = child.BlockName
	ins.InsertionPoint = TransformPoint(child.InsertionPoint, parent)
	ins.Scale.X = parent.Scale.X * child.Scale.X
	ins.Scale.Y = parent.Scale.Y * child.Scale.Y
	ins.Scale.Z = parent.Scale.Z * child.Scale.Z
	ins.Rotation = parent.Rotation + child.Rotation
	ins.Attributes = child.Attributes

	return ins
}
