package model

// MediaAsset is one file produced inside a session directory. Sizes are
// reported by the filesystem at listing time, not tracked by the pipeline.
type MediaAsset struct {
	Path      string
	SizeBytes int64
}

// PipelineResult is the final return value of one pipeline invocation.
// Exactly one of the success and failure field sets is populated.
type PipelineResult struct {
	Success bool

	// Populated on success.
	Assets      []MediaAsset
	SessionPath string
	Title       string

	// Populated on failure.
	ErrKind ErrorKind
	Message string
}

// Ok builds a successful result manifest.
func Ok(assets []MediaAsset, sessionPath, title string) PipelineResult {
	return PipelineResult{
		Success:     true,
		Assets:      assets,
		SessionPath: sessionPath,
		Title:       title,
	}
}

// Fail builds a failed result from a classified pipeline error.
func Fail(err *PipelineError) PipelineResult {
	return PipelineResult{
		Success: false,
		ErrKind: err.Kind,
		Message: err.Message,
	}
}
