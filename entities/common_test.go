package entities

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zooyer/dxf/core"
)

// parseFrom 模拟文档层的调用：组码 0 已被上层消费，
// 从记录主体开始解析，直到下一条组码 0。
func parseFrom(t *testing.T, version core.Version, kind, body string) (Entity, *core.Diagnostics, error) {
	t.Helper()
	ctx, diags := core.NewContext()
	ctx.Version = version
	e := CreateEntity(kind)
	if e == nil {
		t.Fatalf("未注册的实体类型: %s", kind)
	}
	s := core.NewScanner(strings.NewReader(body))
	err := e.Parse(ctx, s)
	return e, diags, err
}

// writeTo 以指定目标版本写出实体，返回字节流
func writeTo(t *testing.T, version core.Version, e Entity) (string, *core.Diagnostics, error) {
	t.Helper()
	ctx, diags := core.NewContext()
	ctx.Version = version
	var buf bytes.Buffer
	w := core.NewWriter(&buf)
	if err := e.Write(ctx, w); err != nil {
		return "", diags, err
	}
	if err := w.Flush(); err != nil {
		return "", diags, err
	}
	return buf.String(), diags, nil
}

func TestCommon_Absorb(t *testing.T) {
	body := "5\n2a\n100\nAcDbEntity\n8\n墙体\n6\nDASHED\n62\n3\n39\n2.5\n370\n40\n100\nAcDbLine\n10\n0\n20\n0\n30\n0\n11\n1\n21\n1\n31\n0\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2004, "LINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("干净输入不应产生诊断: %v", diags.List)
	}

	attr := e.Common()
	if attr.Handle != 0x2a {
		t.Errorf("句柄不符: 期望 2a, 得到 %x", attr.Handle)
	}
	if attr.Layer != "墙体" || attr.Linetype != "DASHED" {
		t.Errorf("图层/线型不符: %q %q", attr.Layer, attr.Linetype)
	}
	if attr.Color != 3 || attr.Thickness != 2.5 || attr.Lineweight != 40 {
		t.Errorf("颜色/厚度/线宽不符: %d %f %d", attr.Color, attr.Thickness, attr.Lineweight)
	}
}

func TestCommon_VersionGateOnRead(t *testing.T) {
	// R12 文件里出现 R2002 才引入的 370：值照收，但报版本诊断
	body := "8\n0\n370\n40\n10\n0\n20\n0\n30\n0\n11\n1\n21\n0\n31\n0\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R12, "LINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if e.Common().Lineweight != 40 {
		t.Errorf("宽容读取应保留值: 得到 %d", e.Common().Lineweight)
	}
	if diags.Count(core.DiagVersionMismatch) != 1 {
		t.Errorf("期望 1 条版本诊断, 得到 %d", diags.Count(core.DiagVersionMismatch))
	}
}

func TestCommon_LineweightGateOnWrite(t *testing.T) {
	line := NewLine()
	line.End = core.Point{X: 1}
	line.Attr.Lineweight = 40

	// R2000 目标：370 尚未引入，严格写出直接裁剪
	out, _, err := writeTo(t, core.R2000, line)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if strings.Contains(out, "\n370\n") {
		t.Errorf("R2000 不应写出 370:\n%s", out)
	}

	out, _, err = writeTo(t, core.R2004, line)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "370\n40\n") {
		t.Errorf("R2004 应写出 370:\n%s", out)
	}
}

func TestCommon_ClampOnRead(t *testing.T) {
	// 颜色越界与负厚度：钳制并各报一条诊断
	body := "8\n0\n62\n300\n39\n-1\n10\n0\n20\n0\n30\n0\n11\n1\n21\n0\n31\n0\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "LINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	attr := e.Common()
	if attr.Color != ByLayer {
		t.Errorf("越界颜色应钳回 BYLAYER, 得到 %d", attr.Color)
	}
	if attr.Thickness != 0 {
		t.Errorf("负厚度应钳回 0, 得到 %f", attr.Thickness)
	}
	if diags.Count(core.DiagInvariant) != 2 {
		t.Errorf("期望 2 条取值诊断, 得到 %d", diags.Count(core.DiagInvariant))
	}
}

func TestCommon_EmptyLayerDefaultOnWrite(t *testing.T) {
	line := NewLine()
	line.End = core.Point{X: 1}
	line.Attr.Layer = ""

	out, diags, err := writeTo(t, core.R2010, line)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "8\n0\n") {
		t.Errorf("空图层应恢复为默认图层:\n%s", out)
	}
	if diags.Count(core.DiagDefault) != 1 {
		t.Errorf("期望 1 条默认值诊断, 得到 %d", diags.Count(core.DiagDefault))
	}
}

func TestCommon_EmptyLayerTagRoundTrip(t *testing.T) {
	// 显式的空 8 组：读取原样保留，写出时恢复默认并报一条诊断
	body := "8\n\n10\n0\n20\n0\n30\n0\n11\n1\n21\n0\n31\n0\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "LINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("读取侧不应产生诊断: %v", diags.List)
	}
	if e.Common().Layer != "" {
		t.Fatalf("空图层值应原样保留, 得到 %q", e.Common().Layer)
	}

	out, wdiags, err := writeTo(t, core.R2010, e)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	if !strings.Contains(out, "8\n0\n") {
		t.Errorf("空图层应恢复为默认图层:\n%s", out)
	}
	if wdiags.Count(core.DiagDefault) != 1 {
		t.Errorf("期望恰好 1 条默认值诊断, 得到 %d", wdiags.Count(core.DiagDefault))
	}
}

func TestCommon_AppGroups(t *testing.T) {
	body := "5\n1f\n102\n{ACAD_REACTORS\n330\nabc\n102\n}\n102\n{ACAD_XDICTIONARY\n360\ndef\n102\n}\n100\nAcDbEntity\n8\n0\n100\nAcDbLine\n10\n0\n20\n0\n30\n0\n11\n1\n21\n0\n31\n0\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "LINE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Tainted() {
		t.Fatalf("应用组不应产生诊断: %v", diags.List)
	}
	attr := e.Common()
	if attr.OwnerSoft != "abc" || attr.OwnerHard != "def" {
		t.Errorf("应用组句柄不符: %q %q", attr.OwnerSoft, attr.OwnerHard)
	}

	// 写出时按进入顺序还原两个应用组
	out, _, err := writeTo(t, core.R2010, e)
	if err != nil {
		t.Fatalf("写出失败: %v", err)
	}
	reactors := strings.Index(out, "{ACAD_REACTORS")
	xdict := strings.Index(out, "{ACAD_XDICTIONARY")
	if reactors < 0 || xdict < 0 || reactors > xdict {
		t.Errorf("应用组写出顺序不符:\n%s", out)
	}
}

func TestCommon_UnknownTag(t *testing.T) {
	// 实体不认识的组码：报诊断但照常完成解析
	body := "8\n0\n10\n1\n20\n2\n30\n0\n40\n5\n49\n0.5\n0\nENDSEC\n"
	e, diags, err := parseFrom(t, core.R2010, "CIRCLE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	c := e.(*Circle)
	if c.Radius != 5 || c.Center.X != 1 {
		t.Errorf("未知组码不应影响其余字段: %+v", c)
	}
	if diags.Count(core.DiagUnknownTag) != 1 {
		t.Errorf("期望 1 条未知组码诊断, 得到 %d", diags.Count(core.DiagUnknownTag))
	}
}

func TestCommon_Comment(t *testing.T) {
	body := "999\n管线图导出\n8\n0\n10\n1\n20\n2\n30\n0\n40\n5\n0\nENDSEC\n"
	_, diags, err := parseFrom(t, core.R2010, "CIRCLE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Count(core.DiagComment) != 1 {
		t.Errorf("期望 1 条注释诊断, 得到 %d", diags.Count(core.DiagComment))
	}
	if diags.Tainted() {
		t.Error("仅有注释不应视为污染")
	}
}

func TestCommon_SubclassMismatch(t *testing.T) {
	body := "8\n0\n100\nAcDbArc\n10\n1\n20\n2\n30\n0\n40\n5\n0\nENDSEC\n"
	_, diags, err := parseFrom(t, core.R2010, "CIRCLE", body)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if diags.Count(core.DiagSubclass) != 1 {
		t.Errorf("期望 1 条子类标记诊断, 得到 %d", diags.Count(core.DiagSubclass))
	}
}
