package extract

import (
	"context"

	"github.com/vidnote/audiofetch/internal/model"
)

// Extractor is the port for the external extraction capability. Any
// implementation that can resolve a title without downloading, and
// download plus transcode audio into a directory, is substitutable.
type Extractor interface {
	// ResolveMetadata fetches canonical metadata for the URL without
	// downloading media. Failures are reported as ErrMetadataUnavailable.
	ResolveMetadata(ctx context.Context, url string) (model.ResolvedMetadata, error)

	// Download fetches the best-available audio for the URL into destDir,
	// transcoded to the configured audio format. A non-nil part restricts
	// the download to that 1-indexed sub-item of a multi-part source.
	// Failures are reported as ErrExtractionFailed; partial files may
	// remain in destDir after a failed run.
	Download(ctx context.Context, url, destDir string, part *int) error
}
