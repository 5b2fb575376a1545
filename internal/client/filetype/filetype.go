// Package filetype guesses a file's MIME type: by extension first, then by
// sniffing its content.
package filetype

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Fallback is returned when neither the extension nor the content is known.
const Fallback = "application/octet-stream"

var byExtension = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".txt":  "text/plain",
	".md":   "text/plain",
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".mjs":  "text/javascript",
	".json": "application/json",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".zip":  "application/zip",
	".rar":  "application/x-rar-compressed",
	".7z":   "application/x-7z-compressed",
}

// sniffed values that differ from the names used for classification.
var aliases = map[string]string{
	"audio/x-wav":            "audio/wav",
	"application/vnd.rar":    "application/x-rar-compressed",
	"application/javascript": "text/javascript",
}

// FromName returns the type registered for name's extension, or "".
func FromName(name string) string {
	return byExtension[strings.ToLower(filepath.Ext(name))]
}

func normalize(m *mimetype.MIME) string {
	base, _, _ := strings.Cut(m.String(), ";")
	base = strings.TrimSpace(base)
	if a, ok := aliases[base]; ok {
		return a
	}
	return base
}

// Detect classifies an in-memory file.
func Detect(name string, data []byte) string {
	if t := FromName(name); t != "" {
		return t
	}
	if len(data) == 0 {
		return Fallback
	}
	return normalize(mimetype.Detect(data))
}

// DetectFile classifies the file at path, reading only its header when the
// extension is unknown.
func DetectFile(path string) (string, error) {
	if t := FromName(path); t != "" {
		return t, nil
	}
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return normalize(m), nil
}
