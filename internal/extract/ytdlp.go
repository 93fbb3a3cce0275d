package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/vidnote/audiofetch/internal/model"
)

// Default extraction settings, mirrored in config defaults.
const (
	DefaultSourceFormat   = "bestaudio/best"
	DefaultAudioFormat    = "mp3"
	DefaultAudioQuality   = "192K"
	DefaultOutputTemplate = "%(title)s.%(ext)s"
	DefaultSocketTimeout  = 30 * time.Second
	DefaultRetries        = 3
)

// Options configures the yt-dlp adapter. Zero-valued fields fall back to
// the package defaults.
type Options struct {
	// SourceFormat is the yt-dlp format selector for the source stream.
	SourceFormat string

	// AudioFormat is the post-processing target codec.
	AudioFormat string

	// AudioQuality is the post-processing target bitrate.
	AudioQuality string

	// OutputTemplate names produced files inside the destination
	// directory, in yt-dlp template syntax.
	OutputTemplate string

	// SocketTimeout bounds each network read during extraction.
	SocketTimeout time.Duration

	// Retries is the number of transport-level retries yt-dlp performs
	// for transient I/O errors. This is the only automatic retry in the
	// system; the pipeline itself never re-invokes a stage.
	Retries int
}

func (o Options) withDefaults() Options {
	if o.SourceFormat == "" {
		o.SourceFormat = DefaultSourceFormat
	}
	if o.AudioFormat == "" {
		o.AudioFormat = DefaultAudioFormat
	}
	if o.AudioQuality == "" {
		o.AudioQuality = DefaultAudioQuality
	}
	if o.OutputTemplate == "" {
		o.OutputTemplate = DefaultOutputTemplate
	}
	if o.SocketTimeout <= 0 {
		o.SocketTimeout = DefaultSocketTimeout
	}
	if o.Retries <= 0 {
		o.Retries = DefaultRetries
	}
	return o
}

// YTDLP drives the yt-dlp binary through go-ytdlp. It satisfies the
// Extractor port for both supported platforms.
type YTDLP struct {
	opts Options
}

// NewYTDLP creates a yt-dlp backed extractor with the given options.
func NewYTDLP(opts Options) *YTDLP {
	return &YTDLP{opts: opts.withDefaults()}
}

// ResolveMetadata runs yt-dlp in skip-download mode and returns the
// reported title. All capability errors collapse into a single
// ErrMetadataUnavailable; yt-dlp's own error taxonomy is not stable
// enough to classify further.
func (y *YTDLP) ResolveMetadata(ctx context.Context, url string) (model.ResolvedMetadata, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		SocketTimeout(y.opts.SocketTimeout.Seconds()).
		Retries(strconv.Itoa(y.opts.Retries)).
		Quiet()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return model.ResolvedMetadata{}, model.NewError(model.ErrMetadataUnavailable,
			"resolve metadata for %s: %v", url, err)
	}

	title, err := titleFrom(result)
	if err != nil {
		return model.ResolvedMetadata{}, model.NewError(model.ErrMetadataUnavailable,
			"resolve metadata for %s: %v", url, err)
	}

	return model.ResolvedMetadata{Title: title}, nil
}

// Download fetches and transcodes the best-available audio into destDir.
// Failed runs are not rolled back; whatever yt-dlp wrote stays on disk.
func (y *YTDLP) Download(ctx context.Context, url, destDir string, part *int) error {
	dl := ytdlp.New().
		Format(y.opts.SourceFormat).
		ExtractAudio().
		AudioFormat(y.opts.AudioFormat).
		AudioQuality(y.opts.AudioQuality).
		Output(filepath.Join(destDir, y.opts.OutputTemplate)).
		SocketTimeout(y.opts.SocketTimeout.Seconds()).
		Retries(strconv.Itoa(y.opts.Retries)).
		NoProgress()

	if part != nil {
		dl = dl.PlaylistItems(PartRange(*part))
	}

	if _, err := dl.Run(ctx, url); err != nil {
		return model.NewError(model.ErrExtractionFailed,
			"download audio for %s: %v", url, err)
	}
	return nil
}

// PartRange formats a 1-indexed part selector as a single-item yt-dlp
// playlist range.
func PartRange(part int) string {
	return fmt.Sprintf("%d:%d", part, part)
}

// titleFrom pulls the title out of the extracted info of a metadata run.
func titleFrom(result *ytdlp.Result) (string, error) {
	info, err := result.GetExtractedInfo()
	if err != nil {
		return "", fmt.Errorf("parse extracted info: %w", err)
	}
	if len(info) == 0 || info[0].Title == nil || *info[0].Title == "" {
		return "", fmt.Errorf("no title reported for source")
	}
	return *info[0].Title, nil
}
