// Package category classifies files by MIME type for filtering and colouring.
package category

// Symbolic colour tags; the renderer maps them to terminal colours.
const (
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorGray   = "gray"
	ColorPurple = "purple"
	ColorPink   = "pink"
	ColorYellow = "yellow"
	ColorCyan   = "cyan"
)

const (
	PDF          = "PDF"
	Document     = "Document"
	Spreadsheet  = "Spreadsheet"
	Presentation = "Presentation"
	Text         = "Text"
	Code         = "Code"
	Image        = "Image"
	Video        = "Video"
	Audio        = "Audio"
	Archive      = "Archive"
	Other        = "Other"
)

type CategoryInfo struct {
	Category string
	ColorTag string
}

var table = map[string]CategoryInfo{
	"application/pdf":    {PDF, ColorRed},
	"application/msword": {Document, ColorBlue},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {Document, ColorBlue},
	"application/vnd.ms-excel": {Spreadsheet, ColorGreen},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {Spreadsheet, ColorGreen},
	"application/vnd.ms-powerpoint":                                             {Presentation, ColorOrange},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {Presentation, ColorOrange},
	"text/plain":                   {Text, ColorGray},
	"text/html":                    {Code, ColorPurple},
	"text/css":                     {Code, ColorPurple},
	"text/javascript":              {Code, ColorPurple},
	"application/json":             {Code, ColorPurple},
	"image/jpeg":                   {Image, ColorPink},
	"image/png":                    {Image, ColorPink},
	"image/gif":                    {Image, ColorPink},
	"image/svg+xml":                {Image, ColorPink},
	"video/mp4":                    {Video, ColorYellow},
	"video/quicktime":              {Video, ColorYellow},
	"audio/mpeg":                   {Audio, ColorCyan},
	"audio/wav":                    {Audio, ColorCyan},
	"application/zip":              {Archive, ColorGray},
	"application/x-rar-compressed": {Archive, ColorGray},
	"application/x-7z-compressed":  {Archive, ColorGray},
}

var fallback = CategoryInfo{Category: Other, ColorTag: ColorGray}

// GetFileCategory looks mimeType up exactly; there is no prefix matching,
// so "image/bmp" is Other.
func GetFileCategory(mimeType string) CategoryInfo {
	if info, ok := table[mimeType]; ok {
		return info
	}
	return fallback
}
