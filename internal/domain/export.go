package domain

import "strings"

// DataFormat is an encoding for history and favorites exports.
type DataFormat string

// Export encodings. History supports json, csv and xlsx; favorites support
// json, md and txt.
const (
	DataJSON     DataFormat = "json"
	DataCSV      DataFormat = "csv"
	DataXLSX     DataFormat = "xlsx"
	DataMarkdown DataFormat = "md"
	DataText     DataFormat = "txt"
)

// HistoryExportFormats lists the encodings accepted for history exports.
func HistoryExportFormats() []DataFormat {
	return []DataFormat{DataJSON, DataCSV, DataXLSX}
}

// FavoriteExportFormats lists the encodings accepted for favorites exports.
func FavoriteExportFormats() []DataFormat {
	return []DataFormat{DataJSON, DataMarkdown, DataText}
}

// ParseDataFormat accepts a format name from allowed. Empty input selects
// the first allowed format.
func ParseDataFormat(s string, allowed []DataFormat) (DataFormat, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "markdown" {
		key = string(DataMarkdown)
	}

	if key == "" && len(allowed) > 0 {
		return allowed[0], nil
	}

	for _, f := range allowed {
		if string(f) == key {
			return f, nil
		}
	}

	return "", NewValidationErrorWithValue("format", "unsupported export format", s)
}

// ContentType returns the MIME type for f.
func (f DataFormat) ContentType() string {
	switch f {
	case DataCSV:
		return "text/csv; charset=utf-8"
	case DataXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case DataMarkdown:
		return "text/markdown; charset=utf-8"
	case DataText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}
