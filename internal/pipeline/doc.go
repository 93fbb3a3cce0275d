// Package pipeline orchestrates one retrieval invocation end to end:
// admission, metadata resolution, session allocation, delegated
// extraction, and result aggregation. Stages run strictly in order and
// every failure resolves to a typed result; Run never surfaces an
// unstructured error.
package pipeline
