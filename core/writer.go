package core

import (
	"bufio"
	"fmt"
	"io"
)

// Writer 按“组码行 + 值行”的节奏写出标签流。
// 同一记录在同一目标版本下的输出字节序列是确定的。
// 第一个写入错误会被锁存，后续写入全部短路，由 Flush 统一上报。
type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// Tag 写出一组原始标签对
func (w *Writer) Tag(code int, value string) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.w, "%d\n%s\n", code, value); err != nil {
		w.err = err
	}
}

// Int 写出整数值标签
func (w *Writer) Int(code, value int) {
	w.Tag(code, fmt.Sprintf("%d", value))
}

// Float 写出浮点值标签，固定六位小数
func (w *Writer) Float(code int, value float64) {
	w.Tag(code, fmt.Sprintf("%f", value))
}

// Hex 写出句柄类标签，小写十六进制
func (w *Writer) Hex(code int, value uint32) {
	w.Tag(code, fmt.Sprintf("%x", value))
}

// Name 写出组码 0 的类型名哨兵
func (w *Writer) Name(value string) {
	w.Tag(0, value)
}

// Err 返回已锁存的写入错误
func (w *Writer) Err() error {
	return w.err
}

// Flush 刷新缓冲并返回首个写入错误
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}
