package xlogfactory

import "strings"

// ShortName 返回限定名的最后一个非空段
//
// 末尾的 "." 被忽略；去掉末尾的 "." 后不含分隔符的输入原样返回。
//
//	ShortName("a.b.c") == "c"
//	ShortName("c")     == "c"
//	ShortName("")      == ""
//	ShortName("a.b.")  == "b"
//	ShortName("a..")   == "a.."
//	ShortName(".")     == "."
func ShortName(qualified string) string {
	trimmed := strings.TrimRight(qualified, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 {
		return qualified
	}
	return trimmed[i+1:]
}
