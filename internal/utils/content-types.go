package utils

import (
	"net/http"
)

func ResolveExtension(contentType string) string {
	if ext, ok := ContentTypeExtensionTable[contentType]; ok {
		return ext
	}
	return DefaultExtension
}

// ResolveOutputPath returns userPath untouched when set. Otherwise the name is
// output.<ext> with ext taken from the first Content-Type value; a missing or
// non-text header gives output.txt.
func ResolveOutputPath(userPath string, header http.Header) string {
	if userPath != "" {
		return userPath
	}
	values := header.Values("Content-Type")
	if len(values) == 0 || !isHeaderText(values[0]) {
		return DefaultOutputName + "." + DefaultExtension
	}
	return DefaultOutputName + "." + ResolveExtension(values[0])
}

// visible ASCII plus space and tab
func isHeaderText(value string) bool {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
