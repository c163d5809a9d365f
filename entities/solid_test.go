package entities

import (
	"strings"
	"testing"

	"github.com/zooyer/dxf/core"
)

func TestSolid_TriangleConvention(t *testing.T) {
	// 只给三个角点：第四点取第三点
	body := "8\n0\n10\n0\n20\n0\n30\n0\n11\n4\n21\n0\n31\n0\n12\n2\n22\n3\n32\n0\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "SOLID", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("三角形输入不应产生诊断: %v", diags.List)
	}

	s := e.(*Solid)
	if s.P3 != s.P2 {
		t.Errorf("三角形约定: 期望 P3 == P2 (%+v), 得到 %+v", s.P2, s.P3)
	}

	// 写出时恒为四个角点，13/23/33 重复第三点
	out, _, err := writeTo(t, core.R2010, s)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "13\n2.000000\n23\n3.000000\n33\n0.000000\n") {
		t.Errorf("第四角点应重复第三点:\n%s", out)
	}
}

func TestSolid_Quad(t *testing.T) {
	body := "8\n0\n10\n0\n20\n0\n30\n0\n11\n1\n21\n0\n31\n0\n12\n0\n22\n1\n32\n0\n13\n1\n23\n1\n33\n0\n0\nENDSEC\n"
	e, _, err := parseFrom(t, core.R2010, "SOLID", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	s := e.(*Solid)
	if s.P3 == s.P2 {
		t.Error("四边形不应套用三角形约定")
	}
	if s.P3.X != 1 || s.P3.Y != 1 {
		t.Errorf("第四角点不符: %+v", s.P3)
	}
}

func TestTrace_SharesConvention(t *testing.T) {
	body := "8\n0\n10\n0\n20\n0\n30\n0\n11\n1\n21\n0\n31\n0\n12\n0\n22\n1\n32\n0\n0\nENDSEC\n"
	e, _, err := parseFrom(t, core.R2010, "TRACE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	tr := e.(*Trace)
	if tr.P3 != tr.P2 {
		t.Errorf("TRACE 同样适用三角形约定: %+v vs %+v", tr.P3, tr.P2)
	}

	out, _, err := writeTo(t, core.R2010, tr)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.HasPrefix(out, "0\nTRACE\n") {
		t.Errorf("类型名不符:\n%s", out)
	}
}

func TestFace3D_EdgeFlags(t *testing.T) {
	body := "8\n0\n10\n0\n20\n0\n30\n0\n11\n1\n21\n0\n31\n0\n12\n1\n22\n1\n32\n1\n70\n5\n0\nENDSEC\n"
	e, _, err := parseFrom(t, core.R2010, "3DFACE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	f := e.(*Face3D)
	if f.EdgeFlags != 5 {
		t.Errorf("边不可见标志不符: %d", f.EdgeFlags)
	}
	if f.P3 != f.P2 {
		t.Error("3DFACE 同样适用三角形约定")
	}
}
