package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/peterstace/simplefeatures/geom"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
	"github.com/zooyer/dxf/utils"
)

var log zerolog.Logger

var errNoPath = errors.New("实体没有路径几何")

// loadConfig 读取可选的 dxf.yaml，未配置时走默认值
func loadConfig() error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("report.csv", true)
	viper.SetDefault("convert.enabled", false)
	viper.SetDefault("convert.version", "AC1015")
	viper.SetDefault("convert.suffix", "_converted")
	viper.SetDefault("convert.flatland", false)
	viper.SetDefault("convert.wide64", false)

	viper.SetConfigName("dxf")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		// 没有配置文件不算错误
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("读取配置失败: %w", err)
		}
	}

	return nil
}

func initLogger() {
	level, err := zerolog.ParseLevel(viper.GetString("logLevel"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// pickFile 命令行没给文件时弹出选择框
func pickFile() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}

	return zenity.SelectFile(
		zenity.Title("请选择 DXF 图纸"),
		zenity.FileFilters{
			{Name: "DXF 图纸", Patterns: []string{"*.dxf"}, CaseFold: true},
		},
	)
}

// typeCounts 按实体类型统计数量，名称升序
func typeCounts(doc *dxf.Document) (names []string, counts map[string]int) {
	counts = make(map[string]int)
	for _, e := range doc.Entities {
		counts[e.Type()]++
	}
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	return
}

// diagSummary 诊断按分类汇总成一行
func diagSummary(diags *core.Diagnostics) string {
	classes := []core.DiagClass{
		core.DiagComment, core.DiagUnknownTag, core.DiagFormat,
		core.DiagInvariant, core.DiagMissing, core.DiagVersionMismatch,
		core.DiagDefault, core.DiagSubclass,
	}

	var parts []string
	for _, class := range classes {
		if n := diags.Count(class); n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", class, n))
		}
	}
	if len(parts) == 0 {
		return "无"
	}

	return strings.Join(parts, " ")
}

// writeReport 把图元清单写成 CSV：类型、图层、句柄、包围盒、度量
func writeReport(doc *dxf.Document, filename string) error {
	const header = "类型,图层,句柄,最小X,最小Y,最大X,最大Y,长度,面积\n"

	if err := os.WriteFile(filename, []byte(header), 0644); err != nil {
		return err
	}

	for _, entity := range doc.Entities {
		var length, area float64

		var ls geom.LineString
		var lsErr error

		switch e := entity.(type) {
		case *entities.Line:
			ls, lsErr = utils.LineToGeom(e)
		case *entities.LWPolyline:
			ls, lsErr = utils.LWPolylineToGeom(e)
			area = utils.PolylineArea(e)
		case *entities.Polyline:
			ls, lsErr = utils.PolylineToGeom(e)
		case *entities.Leader:
			ls, lsErr = utils.LeaderToGeom(e)
		default:
			lsErr = errNoPath
		}
		if lsErr == nil {
			length = utils.PathLength(ls)
		}

		box := utils.GetEntityBBoxWCS(doc, entity)

		line := fmt.Sprintf("%s,%s,%x,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f\n",
			entity.Type(), entity.Layer(), entity.Common().Handle,
			box.Min.X, box.Min.Y, box.Max.X, box.Max.Y, length, area,
		)

		if err := xos.AppendFile(filename, []byte(line), 0644); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	defer xos.PauseExit()

	if err := loadConfig(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	initLogger()

	filename, err := pickFile()
	if err != nil {
		log.Fatal().Err(err).Msg("未选择文件")
	}

	doc, err := dxf.DecodeFile(filename)
	if err != nil {
		log.Fatal().Err(err).Str("file", filename).Msg("解析失败")
	}

	log.Info().
		Str("file", filename).
		Str("version", doc.Version.Name()).
		Str("codepage", doc.Codepage).
		Int("entities", len(doc.Entities)).
		Int("blocks", len(doc.BlockList)).
		Msg("读取完成")

	// 1. 实体统计
	names, counts := typeCounts(doc)
	for _, name := range names {
		fmt.Printf("%-16s %d\n", name, counts[name])
	}

	// 2. 整图范围
	if len(doc.Entities) > 0 {
		box := utils.GetDocumentBBox(doc)
		fmt.Printf("范围: (%.2f, %.2f) - (%.2f, %.2f)\n",
			box.Min.X, box.Min.Y, box.Max.X, box.Max.Y,
		)
	}

	// 3. 块定义与引用属性
	for _, block := range doc.BlockList {
		fmt.Printf("块 %-16s %d 个实体\n", block.Name(), len(block.Entities))
	}
	for _, ins := range doc.Inserts() {
		if len(ins.Attributes) == 0 {
			continue
		}
		fmt.Printf("引用 %s:", ins.BlockName)
		for tag, value := range utils.GetAttrs(ins) {
			fmt.Printf(" %s=%s", tag, value)
		}
		fmt.Println()
	}

	// 4. 标注读数（按样式精度取整）
	for _, dim := range doc.Dimensions() {
		fmt.Printf("标注 [%s] %.2f\n", dim.StyleName, utils.GetDimValue(doc, dim))
	}

	// 5. 诊断汇总
	fmt.Println("诊断:", diagSummary(doc.Diags))

	// 6. CSV 报表
	if viper.GetBool("report.csv") {
		report := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".csv"
		if err = writeReport(doc, report); err != nil {
			log.Error().Err(err).Msg("报表写入失败")
		} else {
			log.Info().Str("file", report).Msg("报表写入完成")
		}
	}

	// 7. 版本转换
	if viper.GetBool("convert.enabled") {
		version := core.ParseVersion(viper.GetString("convert.version"))
		doc.Flatland = viper.GetBool("convert.flatland")
		doc.Wide64 = viper.GetBool("convert.wide64")
		output := strings.TrimSuffix(filename, filepath.Ext(filename)) +
			viper.GetString("convert.suffix") + ".dxf"

		if err = doc.Save(output, version); err != nil {
			log.Fatal().Err(err).Msg("转换失败")
		}
		log.Info().Str("file", output).Str("version", version.Name()).Msg("转换完成")
	}
}
