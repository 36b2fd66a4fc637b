package constants

import "strings"

// MaxUploadBytes is the hard upload size cap (50 MiB).
const MaxUploadBytes = 50 << 20

// MediaTypePDF marks paginated documents handled by the rasterizer.
const MediaTypePDF = "application/pdf"

// AllowedMediaTypes holds the accepted upload MIME types.
var AllowedMediaTypes = map[string]struct{}{
	"image/jpeg":   {},
	"image/jpg":    {},
	"image/png":    {},
	"image/gif":    {},
	"image/webp":   {},
	"image/bmp":    {},
	MediaTypePDF:   {},
}

// IsAllowedMediaType reports whether mt is in the accepted upload set.
func IsAllowedMediaType(mt string) bool {
	_, ok := AllowedMediaTypes[mt]
	return ok
}

// IsPDF reports whether mt is the paginated-document media type.
func IsPDF(mt string) bool {
	return mt == MediaTypePDF
}

// AllowedMediaTypeList returns the accepted types for error messages.
func AllowedMediaTypeList() string {
	return "JPEG, PNG, GIF, WebP, BMP, PDF"
}

var extMediaTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"pdf":  MediaTypePDF,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MediaTypeForExt maps a file extension to its upload media type.
// Returns "" when the extension is not in the accepted set.
func MediaTypeForExt(ext string) string {
	return extMediaTypes[NormalizeExt(ext)]
}
