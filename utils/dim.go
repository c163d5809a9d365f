package utils

import (
	"math"
	"strings"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/entities"
)

// GetDimValue 解析标注的最终显示值：
// 手动覆盖文字优先，否则按标注样式声明的精度对实测值取整。
func GetDimValue(doc *dxf.Document, dim *entities.Dimension) float64 {
	// "<>" 占位符代表实测值本身，不算覆盖
	if dim.Text != "" && !strings.Contains(dim.Text, "<>") {
		return dim.GetCleanVal()
	}

	precision := 0 // 默认取整
	if style := doc.DimStyle(dim.StyleName); style != nil {
		precision = style.Precision
	}

	p := math.Pow(10, float64(precision))

	return math.Round(dim.ActualMeasurement*p) / p
}
