package ports

import (
	"io"

	"descstats/domain/descriptive"
)

// ReportExporter serializes a completed analysis for download or archival.
// Implementations read the analysis output structures only; they never see
// raw input or mutate the analysis.
type ReportExporter interface {
	// ContentType returns the MIME type of the serialized report
	ContentType() string

	// FileExtension returns the extension without the leading dot
	FileExtension() string

	// Export writes the full report (summary plus frequency table) to w
	Export(w io.Writer, analysis descriptive.Analysis) error
}
