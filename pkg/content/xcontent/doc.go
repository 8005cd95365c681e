// Package xcontent 描述内容识别的结果。
//
// [ContentType] 是已知内容类型表（名称、MIME 类型、扩展名），未知类型为 [Other]。
// [Info] 是一次识别的不可变结果：MIME 类型可识别时，名称和扩展名取自类型表，
// 覆盖调用方给出的名称；否则保留调用方名称，扩展名缺失。
//
//	info := xcontent.New("PNG image data", "image/png", "PNG image data, 16 x 16", false)
//	info.Name()           // "png"
//	info.FileExtensions() // ["png"]
//
// 字符串字段以空串表示缺失，扩展名以 nil 表示缺失。
package xcontent
