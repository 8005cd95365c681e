package xcontent

import "strings"

// Info 一次内容识别的结果，创建后不可变
type Info struct {
	contentType ContentType
	name        string
	mimeType    string
	message     string
	extensions  []string
	partial     bool
}

// New 创建识别结果
//
// mimeType 可识别时，名称与扩展名取自类型表，name 被忽略；
// 否则名称为 name 原值，扩展名缺失。mimeType 与 message 为空表示缺失。
// partial 表示只匹配了类型的主特征，没有匹配到更具体的变体。
func New(name, mimeType, message string, partial bool) Info {
	t := FromMimeType(mimeType)
	info := Info{
		contentType: t,
		name:        name,
		mimeType:    mimeType,
		message:     message,
		partial:     partial,
	}
	if t != Other {
		info.name = t.Name()
		info.extensions = t.FileExtensions()
	}
	return info
}

// NewFromType 由已知类型创建识别结果，MIME 类型为该类型的规范值
func NewFromType(t ContentType) Info {
	if t >= numTypes {
		t = Other
	}
	return Info{
		contentType: t,
		name:        t.Name(),
		mimeType:    t.MimeType(),
		extensions:  t.FileExtensions(),
	}
}

// ContentType 识别出的类型，未知时为 Other
func (i Info) ContentType() ContentType {
	return i.contentType
}

// Name 简短名称
func (i Info) Name() string {
	return i.name
}

// MimeType MIME 类型，缺失时为空
func (i Info) MimeType() string {
	return i.mimeType
}

// Message 识别过程给出的完整描述，缺失时为空
func (i Info) Message() string {
	return i.message
}

// FileExtensions 扩展名副本，缺失时为 nil
func (i Info) FileExtensions() []string {
	return cloneStrings(i.extensions)
}

// Partial 是否为部分匹配
func (i Info) Partial() bool {
	return i.partial
}

// String 形如 "png, type PNG, mime 'image/png', msg 'PNG image data'"
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.name)
	sb.WriteString(", type ")
	sb.WriteString(i.contentType.String())
	if i.mimeType != "" {
		sb.WriteString(", mime '")
		sb.WriteString(i.mimeType)
		sb.WriteByte('\'')
	}
	if i.message != "" {
		sb.WriteString(", msg '")
		sb.WriteString(i.message)
		sb.WriteByte('\'')
	}
	return sb.String()
}
