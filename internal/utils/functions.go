package utils

import (
	"fmt"
	"net/http"
	"strings"
)

var requestMethods = map[string]string{
	"get":    http.MethodGet,
	"post":   http.MethodPost,
	"put":    http.MethodPut,
	"delete": http.MethodDelete,
	"head":   http.MethodHead,
}

func ParseMethod(name string) (string, error) {
	method, ok := requestMethods[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, name)
	}
	return method, nil
}

// ParseHeader splits a raw "name:value" string on its first colon and drops
// every double quote from both halves. Whitespace is kept as given.
func ParseHeader(raw string) (Header, error) {
	name, value, found := strings.Cut(raw, ":")
	if !found {
		return Header{}, fmt.Errorf("%w: %q has no ':' separator", ErrMalformedHeader, raw)
	}
	name = strings.ReplaceAll(name, `"`, "")
	value = strings.ReplaceAll(value, `"`, "")
	if name == "" {
		return Header{}, fmt.Errorf("%w: %q has an empty name", ErrMalformedHeader, raw)
	}
	return Header{Name: name, Value: value}, nil
}

func Percent(written, total int64) int {
	if total <= 0 || written <= 0 {
		return 0
	}
	if written >= total {
		return 100
	}
	return int(written * 100 / total)
}

func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
