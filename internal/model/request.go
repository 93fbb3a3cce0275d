package model

// SourceRequest is the caller-supplied input to the pipeline. It is
// immutable once admitted; downstream stages never mutate it.
type SourceRequest struct {
	// URL is the raw media source URL as supplied by the caller.
	URL string

	// PartSelector selects one 1-indexed part of a multi-part source.
	// Nil means "all parts".
	PartSelector *int
}
