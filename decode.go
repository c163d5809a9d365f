package dxf

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// encodingFor $DWGCODEPAGE 值到解码器的映射。
// R2007 起文件本身已是 UTF-8，返回 nil 表示无需转码。
func encodingFor(codepage string) encoding.Encoding {
	switch strings.ToUpper(codepage) {
	case "ANSI_936", "GBK":
		return simplifiedchinese.GBK
	case "ANSI_950", "BIG5":
		return traditionalchinese.Big5
	case "ANSI_932", "DOS932":
		return japanese.ShiftJIS
	case "ANSI_949":
		return korean.EUCKR
	case "ANSI_1250":
		return charmap.Windows1250
	case "ANSI_1251":
		return charmap.Windows1251
	case "ANSI_1252":
		return charmap.Windows1252
	case "ANSI_1254":
		return charmap.Windows1254
	case "ANSI_1257":
		return charmap.Windows1257
	}
	return nil
}

// sniffCodepage 在解码前从原始字节里找出 $DWGCODEPAGE 的值
func sniffCodepage(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "$DWGCODEPAGE" {
			continue
		}
		// 跳过组码行，下一行是值
		if !scanner.Scan() || !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

// Decode 与 Load 相同，但先按 $DWGCODEPAGE 声明的代码页
// 把字节流转成 UTF-8，旧版中文/日文图纸的文字才能正确还原。
func Decode(reader io.Reader) (*Document, error) {
	return DecodeNamed(reader, "")
}

// DecodeFile 按代码页转码后解析文件
func DecodeFile(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return DecodeNamed(file, filename)
}

// DecodeNamed 与 Decode 相同，诊断带上来源文件名
func DecodeNamed(reader io.Reader, source string) (*Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if enc := encodingFor(sniffCodepage(data)); enc != nil {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err == nil {
			data = decoded
		}
	}

	return LoadNamed(bytes.NewReader(data), source)
}
