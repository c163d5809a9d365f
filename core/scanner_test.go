package core

import (
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
}

func TestScanner_LeadingSpace(t *testing.T) {
	// 组码行允许前导空格（对齐美化），值行保留前导空格
	r := strings.NewReader("  0\nLINE\n 10\n1.5\n")
	scanner := NewNamedScanner(r, "pad.dxf")

	if !scanner.Next() || scanner.LastTag.Code != 0 || scanner.LastTag.Value != "LINE" {
		t.Fatalf("组码行前导空格未被容忍: %+v", scanner.LastTag)
	}
	if !scanner.Next() || scanner.LastTag.Code != 10 {
		t.Fatalf("读取组码 10 失败: %+v", scanner.LastTag)
	}
	if scanner.Line() != 4 {
		t.Errorf("行号不符: 期望 4, 得到 %d", scanner.Line())
	}
}

func TestScanner_BadCodeLine(t *testing.T) {
	r := strings.NewReader("abc\nLINE\n")
	scanner := NewNamedScanner(r, "bad.dxf")

	if scanner.Next() {
		t.Fatal("非整数组码行应当失败")
	}
	if scanner.Err() == nil {
		t.Fatal("应当返回错误")
	}
	if !strings.Contains(scanner.Err().Error(), "bad.dxf:1") {
		t.Errorf("错误信息缺少定位: %v", scanner.Err())
	}
}

func TestScanner_TruncatedValue(t *testing.T) {
	// 只有组码行没有值行，文件不完整
	r := strings.NewReader("0\nLINE\n40")
	scanner := NewScanner(r)

	if !scanner.Next() {
		t.Fatalf("首个标签读取失败: %v", scanner.Err())
	}
	if scanner.Next() {
		t.Fatal("缺值行应当失败")
	}
	if scanner.Err() == nil {
		t.Fatal("截断文件应当返回错误")
	}
}

func TestScanner_BlankLines(t *testing.T) {
	r := strings.NewReader("\n\n0\nEOF\n")
	scanner := NewScanner(r)

	if !scanner.Next() {
		t.Fatalf("空行应当被跳过: %v", scanner.Err())
	}
	if scanner.LastTag.Value != "EOF" {
		t.Errorf("期望 EOF, 得到 %+v", scanner.LastTag)
	}
	if scanner.Next() {
		t.Error("文件结束后不应再有标签")
	}
	if scanner.Err() != nil {
		t.Errorf("干净的 EOF 不应报错: %v", scanner.Err())
	}
}
