package storage

import (
	"strings"
	"unicode/utf8"
)

const maxObjectKeyLen = 200

// IsRemoteURL reports whether ref is an absolute http(s) link rather than an object key.
func IsRemoteURL(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// IsValidObjectKey 拒绝路径穿越、反斜杠、空段以及过长的对象 Key。
func IsValidObjectKey(key string) bool {
	if key == "" || !utf8.ValidString(key) {
		return false
	}
	if strings.HasPrefix(key, "/") {
		return false
	}
	if strings.Contains(key, "..") || strings.Contains(key, "\\") || strings.Contains(key, "//") {
		return false
	}
	return len(key) <= maxObjectKeyLen
}
