package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// Kind 代表组码决定的标量类型
type Kind int

const (
	KindName    Kind = iota // 组码 0，实体/段落名哨兵
	KindString              // 文本
	KindDouble              // 浮点数
	KindInt16               // 16 位整数
	KindInt32               // 32 位整数
	KindInt8                // 8 位整数
	KindBool                // 布尔（0/1）
	KindBinary              // 十六进制二进制块（单块 ≤ 254 字符）
	KindHandle              // 句柄（十六进制字符串）
	KindComment             // 组码 999，注释
	KindUnknown             // 未登记的组码
)

// MaxChunk 单个 310 二进制块的最大字符数
const MaxChunk = 254

// GroupKind 按组码区间返回标量类型，区间划分由 DXF 规范固定
func GroupKind(code int) Kind {
	switch {
	case code == 0:
		return KindName
	case code >= 1 && code <= 9:
		return KindString
	case code >= 10 && code <= 59:
		return KindDouble
	case code >= 60 && code <= 79:
		return KindInt32 // 规范允许 16 或 32 位，读取时统一放宽到 32 位
	case code >= 90 && code <= 99:
		return KindInt32
	case code == 100 || code == 102:
		return KindString
	case code == 105:
		return KindHandle
	case code >= 140 && code <= 149:
		return KindDouble
	case code == 160:
		return KindInt32
	case code >= 170 && code <= 179:
		return KindInt16
	case code >= 210 && code <= 239:
		return KindDouble
	case code >= 280 && code <= 289:
		return KindInt8
	case code >= 290 && code <= 299:
		return KindBool
	case code >= 310 && code <= 319:
		return KindBinary
	case code == 330 || code == 340 || code == 350 || code == 360:
		return KindHandle
	case code == 370 || code == 380 || code == 390:
		return KindInt16
	case code == 420 || code == 440:
		return KindInt32
	case code == 430:
		return KindString
	case code == 999:
		return KindComment
	}
	return KindUnknown
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Float 严格版转换，失败时返回错误供诊断
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("group %d: %q is not a double", t.Code, t.Value)
	}
	return f, nil
}

// Int 严格版转换，失败时返回错误供诊断
func (t Tag) Int() (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, fmt.Errorf("group %d: %q is not an integer", t.Code, t.Value)
	}
	return i, nil
}

// Handle 按十六进制解析句柄值
func (t Tag) Handle() (uint32, error) {
	h, err := strconv.ParseUint(strings.TrimSpace(t.Value), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("group %d: %q is not a hex handle", t.Code, t.Value)
	}
	return uint32(h), nil
}

// Bool 按 0/1 解析布尔值
func (t Tag) Bool() (bool, error) {
	switch strings.TrimSpace(t.Value) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("group %d: %q is not a boolean", t.Code, t.Value)
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}
