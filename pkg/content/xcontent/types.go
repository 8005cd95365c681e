package xcontent

import "strings"

// ContentType 已知内容类型
type ContentType uint8

// 已知内容类型，Other 表示无法识别
const (
	Other ContentType = iota
	AAC
	AIFF
	AVI
	BMP
	Bzip2
	CSS
	DOCX
	ELF
	Excel
	FLAC
	GIF
	Gzip
	HTML
	ICO
	JavaClass
	JPEG
	JSON
	MIDI
	MP3
	MP4
	OGG
	PDF
	PNG
	PostScript
	PowerPoint
	QuickTime
	RAR
	RTF
	SevenZip
	SQLite
	SVG
	TAR
	Text
	TIFF
	WAV
	WebM
	WebP
	Word
	XLSX
	XML
	XZ
	ZIP
	numTypes
)

// typeInfo 类型表条目，mimeTypes[0] 为规范 MIME 类型，其余为别名
type typeInfo struct {
	label      string
	name       string
	mimeTypes  []string
	extensions []string
}

var typeTable = [numTypes]typeInfo{
	Other:      {label: "OTHER", name: "other"},
	AAC:        {"AAC", "aac", []string{"audio/aac", "audio/x-aac"}, []string{"aac"}},
	AIFF:       {"AIFF", "aiff", []string{"audio/x-aiff", "audio/aiff"}, []string{"aiff", "aif", "aifc"}},
	AVI:        {"AVI", "avi", []string{"video/x-msvideo", "video/avi"}, []string{"avi"}},
	BMP:        {"BMP", "bmp", []string{"image/bmp", "image/x-ms-bmp"}, []string{"bmp"}},
	Bzip2:      {"BZIP2", "bzip2", []string{"application/x-bzip2"}, []string{"bz2", "tbz2"}},
	CSS:        {"CSS", "css", []string{"text/css"}, []string{"css"}},
	DOCX:       {"DOCX", "docx", []string{"application/vnd.openxmlformats-officedocument.wordprocessingml.document"}, []string{"docx"}},
	ELF:        {"ELF", "elf", []string{"application/x-executable", "application/x-elf", "application/x-sharedlib"}, nil},
	Excel:      {"EXCEL", "excel", []string{"application/vnd.ms-excel"}, []string{"xls", "xlt"}},
	FLAC:       {"FLAC", "flac", []string{"audio/flac", "audio/x-flac"}, []string{"flac"}},
	GIF:        {"GIF", "gif", []string{"image/gif"}, []string{"gif"}},
	Gzip:       {"GZIP", "gzip", []string{"application/gzip", "application/x-gzip"}, []string{"gz", "tgz"}},
	HTML:       {"HTML", "html", []string{"text/html"}, []string{"html", "htm"}},
	ICO:        {"ICO", "ico", []string{"image/x-icon", "image/vnd.microsoft.icon"}, []string{"ico"}},
	JavaClass:  {"JAVA_CLASS", "java", []string{"application/x-java-applet", "application/java-vm"}, []string{"class"}},
	JPEG:       {"JPEG", "jpeg", []string{"image/jpeg", "image/pjpeg"}, []string{"jpeg", "jpg", "jpe"}},
	JSON:       {"JSON", "json", []string{"application/json", "text/json"}, []string{"json"}},
	MIDI:       {"MIDI", "midi", []string{"audio/midi", "audio/x-midi"}, []string{"mid", "midi"}},
	MP3:        {"MP3", "mp3", []string{"audio/mpeg", "audio/mp3"}, []string{"mp3"}},
	MP4:        {"MP4", "mp4", []string{"video/mp4"}, []string{"mp4", "m4v"}},
	OGG:        {"OGG", "ogg", []string{"application/ogg", "audio/ogg", "video/ogg"}, []string{"ogg", "oga", "ogv"}},
	PDF:        {"PDF", "pdf", []string{"application/pdf"}, []string{"pdf"}},
	PNG:        {"PNG", "png", []string{"image/png"}, []string{"png"}},
	PostScript: {"POSTSCRIPT", "postscript", []string{"application/postscript"}, []string{"ps", "eps"}},
	PowerPoint: {"POWERPOINT", "powerpoint", []string{"application/vnd.ms-powerpoint"}, []string{"ppt", "pps"}},
	QuickTime:  {"QUICKTIME", "quicktime", []string{"video/quicktime"}, []string{"mov", "qt"}},
	RAR:        {"RAR", "rar", []string{"application/x-rar-compressed", "application/vnd.rar", "application/x-rar"}, []string{"rar"}},
	RTF:        {"RTF", "rtf", []string{"text/rtf", "application/rtf"}, []string{"rtf"}},
	SevenZip:   {"SEVEN_ZIP", "7zip", []string{"application/x-7z-compressed"}, []string{"7z"}},
	SQLite:     {"SQLITE", "sqlite", []string{"application/x-sqlite3", "application/vnd.sqlite3"}, []string{"sqlite", "db"}},
	SVG:        {"SVG", "svg", []string{"image/svg+xml"}, []string{"svg", "svgz"}},
	TAR:        {"TAR", "tar", []string{"application/x-tar"}, []string{"tar"}},
	Text:       {"TEXT", "text", []string{"text/plain"}, []string{"txt", "text"}},
	TIFF:       {"TIFF", "tiff", []string{"image/tiff"}, []string{"tiff", "tif"}},
	WAV:        {"WAV", "wav", []string{"audio/x-wav", "audio/wav", "audio/vnd.wave"}, []string{"wav"}},
	WebM:       {"WEBM", "webm", []string{"video/webm"}, []string{"webm"}},
	WebP:       {"WEBP", "webp", []string{"image/webp"}, []string{"webp"}},
	Word:       {"WORD", "word", []string{"application/msword"}, []string{"doc", "dot"}},
	XLSX:       {"XLSX", "xlsx", []string{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}, []string{"xlsx"}},
	XML:        {"XML", "xml", []string{"application/xml", "text/xml"}, []string{"xml", "xsd", "xsl"}},
	XZ:         {"XZ", "xz", []string{"application/x-xz"}, []string{"xz", "txz"}},
	ZIP:        {"ZIP", "zip", []string{"application/zip", "application/x-zip-compressed"}, []string{"zip"}},
}

// 查找索引，包初始化时由 typeTable 生成
var (
	byMimeType  = make(map[string]ContentType)
	byExtension = make(map[string]ContentType)
)

func init() {
	for i := ContentType(1); i < numTypes; i++ {
		for _, m := range typeTable[i].mimeTypes {
			byMimeType[m] = i
		}
		for _, ext := range typeTable[i].extensions {
			// 扩展名冲突时先登记者优先
			if _, dup := byExtension[ext]; !dup {
				byExtension[ext] = i
			}
		}
	}
}

// Types 返回全部已知类型（不含 Other）
func Types() []ContentType {
	out := make([]ContentType, 0, numTypes-1)
	for i := ContentType(1); i < numTypes; i++ {
		out = append(out, i)
	}
	return out
}

// FromMimeType 按 MIME 类型查找内容类型
//
// 大小写不敏感，忽略 "; charset=utf-8" 之类的参数。无法识别时返回 Other。
func FromMimeType(mimeType string) ContentType {
	base, _, _ := strings.Cut(mimeType, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		return Other
	}
	if t, ok := byMimeType[base]; ok {
		return t
	}
	return Other
}

// FromFileExtension 按文件扩展名查找内容类型
//
// 接受 "png"、".png"、"PNG" 等形式。无法识别时返回 Other。
func FromFileExtension(ext string) ContentType {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if t, ok := byExtension[ext]; ok {
		return t
	}
	return Other
}

func (t ContentType) info() typeInfo {
	if t >= numTypes {
		return typeTable[Other]
	}
	return typeTable[t]
}

// Name 类型的简短名称，如 "png"
func (t ContentType) Name() string {
	return t.info().name
}

// MimeType 规范 MIME 类型，Other 为空
func (t ContentType) MimeType() string {
	if m := t.info().mimeTypes; len(m) > 0 {
		return m[0]
	}
	return ""
}

// FileExtensions 常用扩展名（不含点号）的副本，没有时为 nil
func (t ContentType) FileExtensions() []string {
	return cloneStrings(t.info().extensions)
}

// String 返回类型标识，如 "PNG"、"OTHER"
func (t ContentType) String() string {
	return t.info().label
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
