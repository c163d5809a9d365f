package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner 按“组码行 + 值行”的节奏读取标签流，并记录行号用于诊断
type Scanner struct {
	reader  *bufio.Reader
	source  string
	line    int
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// NewNamedScanner 带来源名（通常是文件名）的扫描器
func NewNamedScanner(r io.Reader, source string) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		source: source,
	}
}

// Source 返回来源名
func (s *Scanner) Source() string {
	return s.source
}

// Line 返回最近一个标签的组码所在行号（1 起始）
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	// 1. 读取 Code 行
	codeLine, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF || strings.TrimSpace(codeLine) != "" {
			s.err = err
			if err == io.EOF {
				s.err = fmt.Errorf("%s:%d: unterminated tag pair at end of file", s.source, s.line+1)
			}
		}
		return false
	}
	s.line++

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.Next()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = fmt.Errorf("%s:%d: group code line %q is not an integer", s.source, s.line, codeStr)
		return false
	}
	codeAt := s.line

	// 2. 读取 Value 行
	valueLine, err := s.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		s.err = err
		return false
	}
	if valueLine == "" && err == io.EOF {
		// Value 行缺失，文件不完整
		s.err = fmt.Errorf("%s:%d: group %d has no value line", s.source, codeAt, code)
		return false
	}
	s.line++

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

func (s *Scanner) Err() error {
	return s.err
}
