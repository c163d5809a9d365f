package entities

import (
	"errors"
	"strings"
	"testing"

	"github.com/zooyer/dxf/core"
)

func TestTableRecord_WriteRefusals(t *testing.T) {
	vport := NewVPort()
	vport.Name = ""
	view := NewView()
	ucs := NewUCS()
	record := NewBlockRecord()
	block := NewBlock()

	for _, e := range []Entity{vport, view, ucs, record, block} {
		if _, _, err := writeTo(t, core.R2000, e); !errors.Is(err, core.ErrMissingName) {
			t.Errorf("%s 空名称应拒绝写出, 得到 %v", e.Type(), err)
		}
	}
}

func TestUCS_RoundTrip(t *testing.T) {
	u := NewUCS()
	u.Name = "立面"
	u.Attr.Handle = 0x3f
	u.Origin = core.Point{X: 1, Y: 2, Z: 3}
	u.OrthoType = 1
	u.Elevation = 4.5

	out, _, err := writeTo(t, core.R2000, u)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	prefix := "0\nUCS\n5\n3f\n100\nAcDbSymbolTableRecord\n100\nAcDbUCSTableRecord\n2\n立面\n"
	if !strings.HasPrefix(out, prefix) {
		t.Fatalf("记录头不符:\n%s", out)
	}

	e, diags, err := parseFrom(t, core.R2000, "UCS", strings.TrimPrefix(out, "0\nUCS\n")+"0\nENDSEC\n")
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("回读不应产生诊断: %v", diags.List)
	}

	back := e.(*UCS)
	if back.Name != "立面" || back.Origin.Z != 3 || back.OrthoType != 1 || back.Elevation != 4.5 {
		t.Errorf("字段不符: %+v", back)
	}
	if back.XAxis.X != 1 || back.YAxis.Y != 1 {
		t.Errorf("坐标轴缺省不符: %+v %+v", back.XAxis, back.YAxis)
	}

	// R14 目标不写 R2000 才有的 79/146
	old, _, err := writeTo(t, core.R14, u)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if strings.Contains(old, "\n79\n") || strings.Contains(old, "146\n") {
		t.Errorf("R14 不应携带 79/146:\n%s", old)
	}
}

func TestVPort_RoundTrip(t *testing.T) {
	v := NewVPort()
	v.Height = 297
	v.Center = core.Point{X: 100, Y: 50}
	v.CircleSides = 64

	out, _, err := writeTo(t, core.R2000, v)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "2\n*ACTIVE\n") {
		t.Fatalf("活动配置名缺失:\n%s", out)
	}

	e, diags, err := parseFrom(t, core.R2000, "VPORT", strings.TrimPrefix(out, "0\nVPORT\n")+"0\nENDSEC\n")
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("回读不应产生诊断: %v", diags.List)
	}

	back := e.(*VPort)
	if back.Name != "*ACTIVE" || back.Height != 297 || back.Center.X != 100 || back.CircleSides != 64 {
		t.Errorf("字段不符: %+v", back)
	}
	if back.Direction.Z != 1 || back.UCSIcon != 3 {
		t.Errorf("缺省字段不符: %+v", back)
	}
}

func TestView_RoundTrip(t *testing.T) {
	v := NewView()
	v.Name = "首层平面"
	v.Height = 210
	v.Width = 297
	v.Twist = 15

	out, _, err := writeTo(t, core.R2000, v)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}

	e, diags, err := parseFrom(t, core.R2000, "VIEW", strings.TrimPrefix(out, "0\nVIEW\n")+"0\nENDSEC\n")
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("回读不应产生诊断: %v", diags.List)
	}

	back := e.(*View)
	if back.Name != "首层平面" || back.Height != 210 || back.Width != 297 || back.Twist != 15 {
		t.Errorf("字段不符: %+v", back)
	}
}

func TestBlockRecord_PreviewGate(t *testing.T) {
	r := NewBlockRecord()
	r.Name = "门"
	r.InsertUnits = 4
	r.Preview = []string{"89504E47", "0D0A1A0A"}

	out, _, err := writeTo(t, core.R2007, r)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "310\n89504E47\n310\n0D0A1A0A\n") {
		t.Fatalf("预览位图缺失:\n%s", out)
	}

	e, diags, err := parseFrom(t, core.R2007, "BLOCK_RECORD", strings.TrimPrefix(out, "0\nBLOCK_RECORD\n")+"0\nENDSEC\n")
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("回读不应产生诊断: %v", diags.List)
	}

	back := e.(*BlockRecord)
	if len(back.Preview) != 2 || back.InsertUnits != 4 {
		t.Errorf("字段不符: preview=%v units=%d", back.Preview, back.InsertUnits)
	}

	// R2000 目标不写 R2007 起的单位/预览组
	old, _, err := writeTo(t, core.R2000, r)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if strings.Contains(old, "310\n") || strings.Contains(old, "280\n") {
		t.Errorf("R2000 不应携带 70/280/281/310:\n%s", old)
	}
}
