package core

// Version 代表目标 AutoCAD 版本，数值有序，可直接比较
type Version int

const (
	R10 Version = iota
	R11
	R12
	R13
	R14
	R2000
	R2002
	R2004
	R2007
	R2008
	R2009
	R2010
)

// acadVer 与 $ACADVER 变量值的对应关系
var acadVer = map[Version]string{
	R10:   "AC1006",
	R11:   "AC1009",
	R12:   "AC1009", // R11 与 R12 共用同一数据库版本号
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2002: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2008: "AC1021",
	R2009: "AC1021",
	R2010: "AC1024",
}

var versionNames = [...]string{"R10", "R11", "R12", "R13", "R14", "R2000", "R2002", "R2004", "R2007", "R2008", "R2009", "R2010"}

// Name 返回可读的版本名，用于诊断
func (v Version) Name() string {
	if v >= 0 && int(v) < len(versionNames) {
		return versionNames[v]
	}
	return "R2010"
}

// String 返回 $ACADVER 形式的版本号
func (v Version) String() string {
	if s, ok := acadVer[v]; ok {
		return s
	}
	return "AC1024"
}

// ParseVersion 解析 $ACADVER 变量值，未知值按最新版本处理（宽容读取）
func ParseVersion(s string) Version {
	switch s {
	case "AC1006":
		return R10
	case "AC1009":
		return R12
	case "AC1012":
		return R13
	case "AC1014":
		return R14
	case "AC1015":
		return R2000
	case "AC1018":
		return R2004
	case "AC1021":
		return R2007
	case "AC1024":
		return R2010
	}
	return R2010
}
