package entities

import (
	"strings"
	"testing"

	"github.com/zooyer/dxf/core"
)

func TestSpline_CountsRebuilt(t *testing.T) {
	body := "8\n0\n70\n8\n71\n3\n72\n6\n73\n2\n74\n0\n" +
		"40\n0\n40\n0\n40\n0\n40\n1\n40\n1\n40\n1\n" +
		"10\n0\n20\n0\n30\n0\n10\n5\n20\n5\n30\n0\n" +
		"0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "SPLINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("不应产生诊断: %v", diags.List)
	}

	sp := e.(*Spline)
	if sp.Degree != 3 || len(sp.Knots) != 6 || len(sp.Controls) != 2 {
		t.Fatalf("样条字段不符: degree=%d knots=%d controls=%d", sp.Degree, len(sp.Knots), len(sp.Controls))
	}

	// 72/73/74 由实际条数重建
	out, _, err := writeTo(t, core.R2000, sp)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	for _, mark := range []string{"72\n6\n", "73\n2\n", "74\n0\n"} {
		if !strings.Contains(out, mark) {
			t.Errorf("缺少 %q:\n%s", mark, out)
		}
	}
}

func TestHelix_SplitCodeSpace(t *testing.T) {
	// AcDbHelix 标记之前的 40 是节点，之后的 40 是半径
	body := "8\n0\n100\nAcDbSpline\n70\n0\n71\n3\n72\n1\n73\n1\n74\n0\n" +
		"40\n0.5\n10\n0\n20\n0\n30\n0\n" +
		"100\nAcDbHelix\n90\n29\n91\n63\n" +
		"10\n1\n20\n2\n30\n3\n11\n4\n21\n5\n31\n6\n12\n0\n22\n0\n32\n1\n" +
		"40\n2.5\n41\n10\n42\n1.5\n290\n1\n280\n1\n" +
		"0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "HELIX", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("不应产生诊断: %v", diags.List)
	}

	h := e.(*Helix)
	if len(h.Knots) != 1 || h.Knots[0] != 0.5 {
		t.Errorf("样条节点不符: %v", h.Knots)
	}
	if h.Radius != 2.5 || h.Turns != 10 || h.TurnHeight != 1.5 {
		t.Errorf("螺旋参数不符: r=%f turns=%f height=%f", h.Radius, h.Turns, h.TurnHeight)
	}
	if h.AxisBase.X != 1 || h.AxisStart.X != 4 || h.AxisVector.Z != 1 {
		t.Errorf("轴参数不符: %+v %+v %+v", h.AxisBase, h.AxisStart, h.AxisVector)
	}
	if !h.Handed || h.Constrain != 1 {
		t.Errorf("旋向/约束不符: %v %d", h.Handed, h.Constrain)
	}
}

func TestHelix_WeightsFitsRoundTrip(t *testing.T) {
	h := NewHelix()
	h.Knots = []float64{0, 0, 1, 1}
	h.Weights = []float64{1, 0.5}
	h.Controls = []core.Point{{X: 0}, {X: 2, Y: 2}}
	h.Fits = []core.Point{{X: 1, Y: 1}}
	h.Radius = 3
	h.TurnHeight = 2

	out, _, err := writeTo(t, core.R2010, h)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	for _, mark := range []string{"74\n1\n", "41\n1.000000\n", "41\n0.500000\n", "11\n1.000000\n"} {
		if !strings.Contains(out, mark) {
			t.Errorf("缺少 %q:\n%s", mark, out)
		}
	}

	body := strings.TrimPrefix(out, "0\nHELIX\n") + "0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "HELIX", body)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("回读不应产生诊断: %v", diags.List)
	}

	back := e.(*Helix)
	if len(back.Weights) != 2 || back.Weights[1] != 0.5 {
		t.Errorf("权重丢失: %v", back.Weights)
	}
	if len(back.Fits) != 1 || back.Fits[0].X != 1 || back.Fits[0].Y != 1 {
		t.Errorf("拟合点丢失: %v", back.Fits)
	}
	if back.Radius != 3 || back.TurnHeight != 2 {
		t.Errorf("螺旋参数丢失: r=%f height=%f", back.Radius, back.TurnHeight)
	}
}

func TestEllipse_Defaults(t *testing.T) {
	body := "8\n0\n10\n0\n20\n0\n30\n0\n11\n3\n21\n0\n31\n0\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "ELLIPSE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("缺省可选组码不应产生诊断: %v", diags.List)
	}
	el := e.(*Ellipse)
	if el.Ratio != 1 {
		t.Errorf("轴比默认值不符: %f", el.Ratio)
	}
}

func TestLeader_VertexList(t *testing.T) {
	body := "8\n0\n3\nSTANDARD\n71\n1\n72\n0\n73\n3\n76\n3\n" +
		"10\n0\n20\n0\n30\n0\n10\n3\n20\n4\n30\n0\n10\n8\n20\n4\n30\n0\n" +
		"0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "LEADER", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("不应产生诊断: %v", diags.List)
	}
	l := e.(*Leader)
	if len(l.Vertices) != 3 {
		t.Fatalf("期望 3 个顶点, 得到 %d", len(l.Vertices))
	}
	if l.Vertices[2].X != 8 || l.Vertices[2].Y != 4 {
		t.Errorf("末顶点不符: %+v", l.Vertices[2])
	}

	// 76 顶点数由实际条数重建
	out, _, err := writeTo(t, core.R2000, l)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "76\n3\n") {
		t.Errorf("缺少顶点计数:\n%s", out)
	}
}

func TestLWPolyline_VertexCount(t *testing.T) {
	body := "8\n0\n90\n3\n70\n1\n38\n5.5\n10\n0\n20\n0\n10\n10\n20\n0\n42\n1\n10\n10\n20\n10\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "LWPOLYLINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("带 38 标高的轻量多段线不应产生诊断: %v", diags.List)
	}

	l := e.(*LWPolyline)
	if len(l.Vertices) != 3 {
		t.Fatalf("期望 3 个顶点, 得到 %d", len(l.Vertices))
	}
	if l.Vertices[1].Bulge != 1 {
		t.Errorf("凸度落点不符: %+v", l.Vertices[1])
	}
	if l.Attr.Elevation != 5.5 {
		t.Errorf("标高不符: %f", l.Attr.Elevation)
	}

	out, _, err := writeTo(t, core.R2000, l)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "90\n3\n") || !strings.Contains(out, "38\n5.500000\n") {
		t.Errorf("计数或标高丢失:\n%s", out)
	}
}
