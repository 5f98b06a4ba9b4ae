package util

const (
	DateFormat      = "2006-01-02"
	TimeFormat      = "2006-01-02 15:04:05"
	TimestampFormat = "20060102_150405"
)

// Export labels.
const (
	// NoneLabel is written to the selected_file column for an explicit
	// "no preference" answer.
	NoneLabel = "none"
)

// CSVHeader is the fixed export header.
var CSVHeader = []string{"participant", "folder", "selected_file"}

// ResultsDirName is the subdirectory of the study root that receives
// exported CSV files.
const ResultsDirName = "results"

// ImageExtensions is the fixed set of extensions a catalog entry may carry.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".tiff"}

// DefaultAllowedImages is the default two-entry filename allowlist. Only
// files whose exact name appears here are eligible for display, regardless
// of what else a folder contains.
var DefaultAllowedImages = []string{
	"Mirror Change Top Layers _ Alpha_ 0_5.png",
	"No Intervension _ Alpha_ 0_5.png",
}

// ImageMimeTypes maps catalog extensions to response content types.
var ImageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
}
