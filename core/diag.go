package core

import (
	"errors"
	"fmt"
)

// 写入端拒绝输出非法 DXF 时返回的哨兵错误
var (
	ErrMissingName  = errors.New("required name is empty")
	ErrInvalidValue = errors.New("value out of range")
	ErrUnterminated = errors.New("record not terminated")
)

// DiagClass 代表诊断的稳定分类
type DiagClass int

const (
	DiagComment         DiagClass = iota // 999 注释
	DiagUnknownTag                       // 实体不认识的组码
	DiagFormat                           // 值与组码声明的标量类型不符
	DiagInvariant                        // 数值超出文档化的取值范围
	DiagMissing                          // 必填名称为空
	DiagVersionMismatch                  // 标签出现在早于其引入版本的文件中
	DiagDefault                          // 空字符串被恢复为默认值
	DiagSubclass                         // 100 子类标记与实体类型不符
)

var diagNames = [...]string{
	DiagComment:         "comment",
	DiagUnknownTag:      "unknown tag",
	DiagFormat:          "format violation",
	DiagInvariant:       "invariant violation",
	DiagMissing:         "missing requirement",
	DiagVersionMismatch: "version mismatch",
	DiagDefault:         "default restored",
	DiagSubclass:        "subclass mismatch",
}

func (c DiagClass) String() string {
	if int(c) < len(diagNames) {
		return diagNames[c]
	}
	return "unknown"
}

// Diagnostic 代表一条带定位信息的诊断
type Diagnostic struct {
	File    string
	Line    int
	Entity  string
	Class   DiagClass
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s: [%s] %s", d.File, d.Line, d.Entity, d.Class, d.Message)
}

// Sink 由调用方提供，接收解析/写出过程中的全部诊断
type Sink interface {
	Report(Diagnostic)
}

// Diagnostics 默认的诊断收集器
type Diagnostics struct {
	List []Diagnostic
}

func (d *Diagnostics) Report(diag Diagnostic) {
	d.List = append(d.List, diag)
}

// Count 按分类统计诊断数量
func (d *Diagnostics) Count(class DiagClass) int {
	var n int
	for _, diag := range d.List {
		if diag.Class == class {
			n++
		}
	}
	return n
}

// Tainted 返回是否存在注释之外的诊断（记录可用但有瑕疵）
func (d *Diagnostics) Tainted() bool {
	for _, diag := range d.List {
		if diag.Class != DiagComment {
			return true
		}
	}
	return false
}

// Context 贯穿一次编解码调用的上下文：目标版本与各类显式开关。
// 不依赖任何进程级全局状态，同一进程可并行处理多个文件。
type Context struct {
	Version  Version
	Flatland bool // R11 兼容模式，控制组码 38 的写出
	Wide64   bool // 图形数据长度用组码 160（64 位）而不是 92
	Source   string
	Sink     Sink

	Entity string // 当前正在编解码的实体类型名，仅用于诊断定位
	Line   int    // 当前行号，由解析循环随扫描器刷新
}

// NewContext 返回面向最新版本的默认上下文，诊断进入内置收集器
func NewContext() (*Context, *Diagnostics) {
	var diags Diagnostics
	return &Context{
		Version: R2010,
		Sink:    &diags,
	}, &diags
}

// Report 提交一条诊断，自动补全定位信息
func (c *Context) Report(class DiagClass, format string, args ...any) {
	if c.Sink == nil {
		return
	}
	c.Sink.Report(Diagnostic{
		File:    c.Source,
		Line:    c.Line,
		Entity:  c.Entity,
		Class:   class,
		Message: fmt.Sprintf(format, args...),
	})
}

// Sync 将扫描器的位置同步到上下文
func (c *Context) Sync(s *Scanner) {
	if s.Source() != "" {
		c.Source = s.Source()
	}
	c.Line = s.Line()
}

// Float 宽容转换：失败时报一条格式诊断并保留原值
func (c *Context) Float(t Tag, field *float64) {
	f, err := t.Float()
	if err != nil {
		c.Report(DiagFormat, "%v", err)
		return
	}
	*field = f
}

// Int 宽容转换整数字段
func (c *Context) Int(t Tag, field *int) {
	i, err := t.Int()
	if err != nil {
		c.Report(DiagFormat, "%v", err)
		return
	}
	*field = i
}

// Int16 宽容转换 16 位整数字段
func (c *Context) Int16(t Tag, field *int16) {
	i, err := t.Int()
	if err != nil {
		c.Report(DiagFormat, "%v", err)
		return
	}
	*field = int16(i)
}

// Int32 宽容转换 32 位整数字段
func (c *Context) Int32(t Tag, field *int32) {
	i, err := t.Int()
	if err != nil {
		c.Report(DiagFormat, "%v", err)
		return
	}
	*field = int32(i)
}

// Handle 宽容转换句柄字段
func (c *Context) Handle(t Tag, field *uint32) {
	h, err := t.Handle()
	if err != nil {
		c.Report(DiagFormat, "%v", err)
		return
	}
	*field = h
}

// Bool 宽容转换布尔字段
func (c *Context) Bool(t Tag, field *bool) {
	b, err := t.Bool()
	if err != nil {
		c.Report(DiagFormat, "%v", err)
		return
	}
	*field = b
}

// Gate 版本门槛检查：读取早于 min 版本引入的标签时报版本诊断。
// 值仍会被吸收（宽容读取），写出时再按目标版本裁剪。
func (c *Context) Gate(min Version, code int) {
	if c.Version < min {
		c.Report(DiagVersionMismatch, "group %d requires %s or newer", code, min.Name())
	}
}
