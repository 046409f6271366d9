package util

import (
	"io"
	"net/http"
	"strings"
)

// SniffMimeType 读取前 512 字节判断真实 MIME 类型，并校验是否在允许的前缀内
func SniffMimeType(reader io.Reader, allowedPrefixes ...string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])
	for _, allowed := range allowedPrefixes {
		if strings.HasPrefix(mimeType, allowed) {
			return mimeType, nil
		}
	}

	return mimeType, NewValidationError("invalid file type: %s", mimeType)
}
