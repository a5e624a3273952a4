package utils

// ContentTypeExtensionTable maps a declared Content-Type to the extension used
// for the default output name. Keys are matched exactly, parameters included.
var ContentTypeExtensionTable = map[string]string{
	// text
	"text/plain":      "txt",
	"text/html":       "html",
	"text/css":        "css",
	"text/csv":        "csv",
	"text/javascript": "js",
	"text/markdown":   "md",
	"text/xml":        "xml",
	"text/calendar":   "ics",

	// application
	"application/json":              "json",
	"application/ld+json":           "jsonld",
	"application/xml":               "xml",
	"application/javascript":        "js",
	"application/xhtml+xml":         "xhtml",
	"application/pdf":               "pdf",
	"application/rtf":               "rtf",
	"application/zip":               "zip",
	"application/gzip":              "gz",
	"application/x-gzip":            "gz",
	"application/x-tar":             "tar",
	"application/x-bzip2":           "bz2",
	"application/x-7z-compressed":   "7z",
	"application/vnd.rar":           "rar",
	"application/java-archive":      "jar",
	"application/octet-stream":      "bin",
	"application/wasm":              "wasm",
	"application/x-sh":              "sh",
	"application/yaml":              "yaml",
	"application/toml":              "toml",
	"application/msword":            "doc",
	"application/vnd.ms-excel":      "xls",
	"application/vnd.ms-powerpoint": "ppt",
	"application/epub+zip":          "epub",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",

	// image
	"image/png":                "png",
	"image/jpeg":               "jpg",
	"image/gif":                "gif",
	"image/webp":               "webp",
	"image/svg+xml":            "svg",
	"image/bmp":                "bmp",
	"image/tiff":               "tiff",
	"image/avif":               "avif",
	"image/x-icon":             "ico",
	"image/vnd.microsoft.icon": "ico",

	// audio
	"audio/mpeg": "mp3",
	"audio/ogg":  "ogg",
	"audio/wav":  "wav",
	"audio/webm": "weba",
	"audio/aac":  "aac",
	"audio/flac": "flac",
	"audio/mp4":  "m4a",

	// video
	"video/mp4":        "mp4",
	"video/mpeg":       "mpeg",
	"video/webm":       "webm",
	"video/ogg":        "ogv",
	"video/quicktime":  "mov",
	"video/x-msvideo":  "avi",
	"video/x-matroska": "mkv",

	// font
	"font/woff":  "woff",
	"font/woff2": "woff2",
	"font/ttf":   "ttf",
	"font/otf":   "otf",
}
