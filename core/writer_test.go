package core

import (
	"bytes"
	"testing"
)

func TestWriter_Formats(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Name("CIRCLE")
	w.Hex(5, 0x2A)
	w.Float(40, 5)
	w.Int(62, 256)
	if err := w.Flush(); err != nil {
		t.Fatalf("写出失败: %v", err)
	}

	expected := "0\nCIRCLE\n5\n2a\n40\n5.000000\n62\n256\n"
	if buf.String() != expected {
		t.Errorf("输出不符:\n期望 %q\n得到 %q", expected, buf.String())
	}
}

func TestWriter_Deterministic(t *testing.T) {
	emit := func() string {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.Name("LINE")
		w.Float(10, 1.25)
		w.Float(20, -0.5)
		_ = w.Flush()
		return buf.String()
	}

	first := emit()
	for i := 0; i < 8; i++ {
		if emit() != first {
			t.Fatal("同一记录多次写出字节序列不一致")
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestWriter_ErrorLatched(t *testing.T) {
	w := NewWriter(failWriter{})
	for i := 0; i < 2000; i++ {
		w.Int(62, i) // 填满缓冲，触发底层写入
	}
	if err := w.Flush(); err == nil {
		t.Error("底层写入错误应当被锁存并由 Flush 上报")
	}
}
