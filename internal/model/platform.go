package model

// Platform identifies the video platform an admitted URL belongs to.
type Platform string

const (
	// PlatformBilibili covers bilibili.com sources.
	PlatformBilibili Platform = "bilibili"

	// PlatformYouTube covers youtube.com and youtu.be sources.
	PlatformYouTube Platform = "youtube"

	// PlatformUnsupported means the host matched no allow-list entry.
	PlatformUnsupported Platform = "unsupported"
)

// String returns the string representation of Platform.
func (p Platform) String() string {
	return string(p)
}

// Supported returns true if the platform may enter the pipeline.
func (p Platform) Supported() bool {
	return p == PlatformBilibili || p == PlatformYouTube
}

// AdmittedURL is the output of URL admission: the normalized URL with
// tracking parameters removed, and the platform it was matched to.
type AdmittedURL struct {
	Normalized string
	Platform   Platform
}

// ResolvedMetadata holds the canonical metadata reported by the
// extraction capability for one source. Resolved once per request and
// read-only afterward; no cache is shared across requests.
type ResolvedMetadata struct {
	// Title is the display title as reported by the platform. It names
	// the session directory after storage-boundary sanitation.
	Title string
}
