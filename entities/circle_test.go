package entities

import (
	"errors"
	"strings"
	"testing"

	"github.com/zooyer/dxf/core"
)

func TestCircle_RoundTrip(t *testing.T) {
	body := "5\n2a\n100\nAcDbEntity\n8\n0\n100\nAcDbCircle\n10\n1.000000\n20\n2.000000\n30\n0.000000\n40\n5.000000\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2000, "CIRCLE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("干净输入不应产生诊断: %v", diags.List)
	}

	c := e.(*Circle)
	if c.Center.X != 1 || c.Center.Y != 2 || c.Radius != 5 {
		t.Fatalf("字段不符: %+v", c)
	}

	// 自产记录再写出应逐字节还原
	out, _, err := writeTo(t, core.R2000, c)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	want := "0\nCIRCLE\n" + body[:len(body)-len("0\nENDSEC\n")]
	if out != want {
		t.Errorf("回写不一致:\n期望:\n%s\n得到:\n%s", want, out)
	}

	// 同一记录重复写出必须逐字节一致
	again, _, err := writeTo(t, core.R2000, c)
	if err != nil {
		t.Fatalf("第二次写出失败: %v", err)
	}
	if out != again {
		t.Error("重复写出结果不一致")
	}
}

func TestCircle_NegativeRadiusOnRead(t *testing.T) {
	body := "8\n0\n10\n0\n20\n0\n30\n0\n40\n-3.5\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "CIRCLE", body)
	if err != nil {
		t.Fatalf("宽容读取不应失败: %v", err)
	}
	if e.(*Circle).Radius != 0 {
		t.Errorf("负半径应钳回 0, 得到 %f", e.(*Circle).Radius)
	}
	if diags.Count(core.DiagInvariant) != 1 {
		t.Errorf("期望 1 条取值诊断, 得到 %d", diags.Count(core.DiagInvariant))
	}
}

func TestCircle_NegativeRadiusOnWrite(t *testing.T) {
	c := NewCircle()
	c.Radius = -1

	_, _, err := writeTo(t, core.R2010, c)
	if err == nil {
		t.Fatal("非法半径应拒绝写出")
	}
	if !errors.Is(err, core.ErrInvalidValue) {
		t.Errorf("错误类型不符: %v", err)
	}
}

func TestCircle_ExtrusionOnlyWhenTilted(t *testing.T) {
	c := NewCircle()
	c.Radius = 2

	out, _, err := writeTo(t, core.R2010, c)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if strings.Contains(out, "\n210\n") {
		t.Errorf("默认挤出方向不应写出 210:\n%s", out)
	}

	c.Attr.Extrusion = core.Point{X: 0.5, Z: 0.866025}
	out, _, err = writeTo(t, core.R2010, c)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "\n210\n") {
		t.Errorf("倾斜挤出方向应写出 210:\n%s", out)
	}
}

func TestArc_SecondMarker(t *testing.T) {
	a := NewArc()
	a.Radius = 1
	a.EndAngle = 90

	out, _, err := writeTo(t, core.R2000, a)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "100\nAcDbCircle\n") || !strings.Contains(out, "100\nAcDbArc\n") {
		t.Errorf("ARC 应带两个子类标记:\n%s", out)
	}

	// R12 目标没有子类标记
	out, _, err = writeTo(t, core.R12, a)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if strings.Contains(out, "100\n") {
		t.Errorf("R12 不应写出子类标记:\n%s", out)
	}
}
