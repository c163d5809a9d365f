package entities

import (
	"strings"
	"testing"

	"github.com/zooyer/dxf/core"
)

func TestInsert_AttributeChain(t *testing.T) {
	body := "8\n0\n66\n1\n2\n门\n10\n5\n20\n5\n30\n0\n" +
		"0\nATTRIB\n8\n0\n10\n5\n20\n5\n30\n0\n40\n2.5\n1\nM0921\n2\n编号\n70\n0\n" +
		"0\nATTRIB\n8\n0\n10\n5\n20\n3\n30\n0\n40\n2.5\n1\n850x2100\n2\n尺寸\n70\n0\n" +
		"0\nSEQEND\n8\n0\n" +
		"0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "INSERT", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("完整属性链不应产生诊断: %v", diags.List)
	}

	ins := e.(*Insert)
	if ins.BlockName != "门" || ins.AttributesFollow != 1 {
		t.Fatalf("块引用字段不符: %+v", ins)
	}
	if len(ins.Attributes) != 2 {
		t.Fatalf("期望 2 条属性, 得到 %d", len(ins.Attributes))
	}
	if ins.Attributes[0].Tag != "编号" || ins.Attributes[0].Value != "M0921" {
		t.Errorf("首条属性不符: %+v", ins.Attributes[0])
	}
	if ins.Attributes[1].Tag != "尺寸" {
		t.Errorf("次条属性不符: %+v", ins.Attributes[1])
	}
}

func TestInsert_UnterminatedChain(t *testing.T) {
	body := "8\n0\n66\n1\n2\n门\n10\n5\n20\n5\n30\n0\n" +
		"0\nATTRIB\n8\n0\n10\n5\n20\n5\n30\n0\n40\n2.5\n1\nM0921\n2\n编号\n70\n0\n" +
		"0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "INSERT", body)
	if err != nil {
		t.Fatalf("未终结的属性链属于宽容读取范畴: %v", err)
	}
	if len(e.(*Insert).Attributes) != 1 {
		t.Errorf("已读到的属性应保留: %d", len(e.(*Insert).Attributes))
	}
	if diags.Count(core.DiagMissing) != 1 {
		t.Errorf("期望 1 条缺失诊断, 得到 %d", diags.Count(core.DiagMissing))
	}
}

func TestInsert_WriteChain(t *testing.T) {
	ins := NewInsert()
	ins.BlockName = "窗"
	ins.AttributesFollow = 1
	attr := NewAttrib()
	attr.Tag = "编号"
	attr.Value = "C1512"
	ins.Attributes = append(ins.Attributes, attr)

	out, _, err := writeTo(t, core.R2000, ins)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	// 66 哨兵在块名之前，链以 SEQEND 终结
	if !strings.Contains(out, "66\n1\n2\n窗\n") {
		t.Errorf("66 哨兵缺失或位置不对:\n%s", out)
	}
	if !strings.Contains(out, "0\nATTRIB\n") || !strings.HasSuffix(out, "0\nSEQEND\n5\n0\n100\nAcDbEntity\n8\n0\n") {
		t.Errorf("属性链框架不完整:\n%s", out)
	}
}

func TestInsert_WriteRefusesEmptyBlockName(t *testing.T) {
	ins := NewInsert()
	if _, _, err := writeTo(t, core.R2000, ins); err == nil {
		t.Fatal("空块名应拒绝写出")
	}
}

func TestInsert_DefaultScaleOmitted(t *testing.T) {
	ins := NewInsert()
	ins.BlockName = "B"

	out, _, err := writeTo(t, core.R2000, ins)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if strings.Contains(out, "\n41\n") {
		t.Errorf("默认比例 (1,1,1) 不应写出:\n%s", out)
	}

	ins.Scale = core.Point{X: 2, Y: 2, Z: 1}
	out, _, err = writeTo(t, core.R2000, ins)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "41\n2.000000\n42\n2.000000\n43\n1.000000\n") {
		t.Errorf("非默认比例应写出三个分量:\n%s", out)
	}
}

func TestPolyline_VertexChain(t *testing.T) {
	body := "8\n0\n66\n1\n70\n1\n" +
		"0\nVERTEX\n8\n0\n10\n0\n20\n0\n30\n0\n42\n1\n" +
		"0\nVERTEX\n8\n0\n10\n10\n20\n0\n30\n0\n" +
		"0\nSEQEND\n8\n0\n" +
		"0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "POLYLINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("顶点链不应产生诊断: %v", diags.List)
	}

	p := e.(*Polyline)
	if len(p.Vertices) != 2 {
		t.Fatalf("期望 2 个顶点, 得到 %d", len(p.Vertices))
	}
	if p.Vertices[0].Bulge != 1 || p.Vertices[1].Location.X != 10 {
		t.Errorf("顶点字段不符: %+v %+v", p.Vertices[0], p.Vertices[1])
	}
	if p.Flags&PolylineClosed == 0 {
		t.Error("闭合标志丢失")
	}
}

func TestDonut_Expand(t *testing.T) {
	d := NewDonut(core.Point{X: 10, Y: 10}, 2, 4)
	p, err := d.Expand()
	if err != nil {
		t.Fatalf("展开失败: %v", err)
	}

	// 宽度 = (4-2)/2 = 1，路径半径 = (2+4)/4 = 1.5
	if p.StartWidth != 1 || p.EndWidth != 1 {
		t.Errorf("环带宽度不符: %f %f", p.StartWidth, p.EndWidth)
	}
	if len(p.Vertices) != 2 {
		t.Fatalf("期望 2 个顶点, 得到 %d", len(p.Vertices))
	}
	if p.Vertices[0].Location.X != 8.5 || p.Vertices[1].Location.X != 11.5 {
		t.Errorf("顶点位置不符: %+v %+v", p.Vertices[0].Location, p.Vertices[1].Location)
	}
	if p.Vertices[0].Bulge != 1 || p.Vertices[1].Bulge != 1 {
		t.Error("半圆段凸度应为 1")
	}
	if p.Flags&PolylineClosed == 0 {
		t.Error("展开结果应是闭合多段线")
	}
}

func TestDonut_Validate(t *testing.T) {
	cases := []struct {
		inside, outside float64
		ok              bool
	}{
		{0, 1, true},
		{1, 2, true},
		{-1, 2, false},
		{2, 2, false},
		{3, 2, false},
	}
	for _, c := range cases {
		d := NewDonut(core.Point{}, c.inside, c.outside)
		err := d.Validate()
		if c.ok && err != nil {
			t.Errorf("(%f,%f) 应当合法: %v", c.inside, c.outside, err)
		}
		if !c.ok && err == nil {
			t.Errorf("(%f,%f) 应当拒绝", c.inside, c.outside)
		}
	}
}
