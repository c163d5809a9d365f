package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

func near(a, b float64) bool {
	return xmath.Equal(a, b, 1e-9)
}

func TestTransformPoint(t *testing.T) {
	ins := entities.NewInsert()
	ins.InsertionPoint = core.Point{X: 100, Y: 200}
	ins.Scale = core.Point{X: 2, Y: 2, Z: 1}
	ins.Rotation = 90

	// (3,0) 放大两倍变 (6,0)，旋转 90 度变 (0,6)，再平移
	got := TransformPoint(core.Point{X: 3}, ins)
	if !near(got.X, 100) || !near(got.Y, 206) {
		t.Fatalf("变换结果错误: %+v", got)
	}
}

func TestTransformBBox_Rotation(t *testing.T) {
	ins := entities.NewInsert()
	ins.InsertionPoint = core.Point{X: 10, Y: 0}
	ins.Scale = core.Point{X: 1, Y: 1, Z: 1}
	ins.Rotation = 90

	local := core.BBox{
		Min: core.Point{X: 0, Y: 0},
		Max: core.Point{X: 4, Y: 2},
	}

	// 绕原点转 90 度后 x∈[-2,0] y∈[0,4]，再平移 (10,0)
	got := TransformBBox(local, ins)
	want := core.BBox{
		Min: core.Point{X: 8, Y: 0},
		Max: core.Point{X: 10, Y: 4},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("包围盒不符 (-want +got):\n%s", diff)
	}
}

func TestMergeBoxes(t *testing.T) {
	boxes := []core.BBox{
		{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 10, Y: 10}},
		{Min: core.Point{X: 8, Y: 8}, Max: core.Point{X: 20, Y: 20}},
		{Min: core.Point{X: 100, Y: 100}, Max: core.Point{X: 110, Y: 110}},
	}

	merged := MergeBoxes(boxes, 0)
	if len(merged) != 2 {
		t.Fatalf("期望合并为 2 个矩形, 实际 %d 个", len(merged))
	}
	if !near(merged[0].Max.X, 20) || !near(merged[0].Max.Y, 20) {
		t.Fatalf("合并范围错误: %+v", merged[0])
	}

	// gap 足够大时全部吸成一个
	if all := MergeBoxes(boxes, 200); len(all) != 1 {
		t.Fatalf("期望合并为 1 个矩形, 实际 %d 个", len(all))
	}
}

func TestIsSeparate_InBox(t *testing.T) {
	a := core.BBox{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 10, Y: 10}}
	b := core.BBox{Min: core.Point{X: 15, Y: 0}, Max: core.Point{X: 20, Y: 10}}

	if !IsSeparate(a, b, 0) {
		t.Fatal("两个矩形应当分离")
	}
	if IsSeparate(a, b, 10) {
		t.Fatal("带容差后应当相邻")
	}

	if !InBox(a, core.Point{X: 5, Y: 5}) {
		t.Fatal("点应在矩形内")
	}
	if InBox(a, core.Point{X: 11, Y: 5}) {
		t.Fatal("点应在矩形外")
	}
}

func TestGetAttrs(t *testing.T) {
	ins := entities.NewInsert()
	ins.BlockName = "SC"
	for _, kv := range [][2]string{{"序号", "3"}, {"楼号", "7#"}} {
		a := entities.NewAttrib()
		a.Tag, a.Value = kv[0], kv[1]
		ins.Attributes = append(ins.Attributes, a)
	}

	attrs := GetAttrs(ins)
	if attrs["序号"] != "3" || attrs["楼号"] != "7#" {
		t.Fatalf("属性表错误: %v", attrs)
	}
	if GetAttr(ins, "面积") != "" {
		t.Fatal("不存在的属性应返回空串")
	}
}

func TestCombineInserts(t *testing.T) {
	parent := entities.NewInsert()
	parent.InsertionPoint = core.Point{X: 100, Y: 100}
	parent.Scale = core.Point{X: 2, Y: 2, Z: 1}
	parent.Rotation = 90

	child := entities.NewInsert()
	child.BlockName = "门"
	child.InsertionPoint = core.Point{X: 5, Y: 0}
	child.Scale = core.Point{X: 3, Y: 1, Z: 1}
	child.Rotation = 30

	ins := CombineInserts(parent, child)
	if ins.BlockName != "门" {
		t.Fatalf("块名丢失: %q", ins.BlockName)
	}
	if !near(ins.Rotation, 120) {
		t.Fatalf("旋转角应相加: %f", ins.Rotation)
	}
	if !near(ins.Scale.X, 6) || !near(ins.Scale.Y, 2) {
		t.Fatalf("缩放应相乘: %+v", ins.Scale)
	}
	// (5,0) 放大后 (10,0)，转 90 度后 (0,10)，平移到 (100,110)
	if !near(ins.InsertionPoint.X, 100) || !near(ins.InsertionPoint.Y, 110) {
		t.Fatalf("插入点错误: %+v", ins.InsertionPoint)
	}
}

func TestGetDimValue(t *testing.T) {
	doc := &dxf.Document{
		DimStyles: map[string]*entities.DimStyle{
			"ISO-25": {Precision: 2},
		},
	}

	dim := entities.NewDimension()
	dim.StyleName = "ISO-25"
	dim.ActualMeasurement = 120.4567

	if got := GetDimValue(doc, dim); !near(got, 120.46) {
		t.Fatalf("应按样式精度取整: %f", got)
	}

	// 无样式时取整到个位
	dim.StyleName = "不存在"
	if got := GetDimValue(doc, dim); !near(got, 120) {
		t.Fatalf("默认精度应为 0: %f", got)
	}

	// 文字覆盖优先
	dim.Text = `\A1;约150.5`
	if got := GetDimValue(doc, dim); !near(got, 120.4567) {
		// 实测值大于 0 时 GetCleanVal 直接返回实测值
		t.Fatalf("覆盖取值错误: %f", got)
	}

	dim.ActualMeasurement = 0
	if got := GetDimValue(doc, dim); !near(got, 150.5) {
		t.Fatalf("应从覆盖文字提取数值: %f", got)
	}

	// "<>" 占位符回落到实测值
	dim.Text = "<>"
	dim.ActualMeasurement = 88.4
	if got := GetDimValue(doc, dim); !near(got, 88) {
		t.Fatalf("占位符应取实测值: %f", got)
	}
}

func TestGeomBridge(t *testing.T) {
	line := entities.NewLine()
	line.Start = core.Point{X: 0, Y: 0}
	line.End = core.Point{X: 3, Y: 4}

	segment, err := LineToGeom(line)
	if err != nil {
		t.Fatalf("直线转换失败: %v", err)
	}
	if got := PathLength(segment); !near(got, 5) {
		t.Fatalf("线长错误: %f", got)
	}

	poly := entities.NewLWPolyline()
	poly.Flags = entities.PolylineClosed
	poly.Vertices = []entities.LWVertex{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}

	ls, err := LWPolylineToGeom(poly)
	if err != nil {
		t.Fatalf("多段线转换失败: %v", err)
	}
	if got := ls.Coordinates().Length(); got != 5 {
		t.Fatalf("闭合多段线应补回首顶点, 顶点数 %d", got)
	}
	if got := PathLength(ls); !near(got, 8) {
		t.Fatalf("周长错误: %f", got)
	}
	if got := PolylineArea(poly); !near(got, 4) {
		t.Fatalf("面积错误: %f", got)
	}

	// 非闭合不计面积
	poly.Flags = 0
	if got := PolylineArea(poly); got != 0 {
		t.Fatalf("开放多段线面积应为 0: %f", got)
	}

	p, err := ToGeomPoint(core.Point{X: 1, Y: 2, Z: 3})
	if err != nil {
		t.Fatalf("点转换失败: %v", err)
	}
	coords, ok := p.Coordinates()
	if !ok || !near(coords.X, 1) || !near(coords.Y, 2) {
		t.Fatalf("点转换错误: %v", p)
	}
}
