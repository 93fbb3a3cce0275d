// Package server is the thin HTTP request layer in front of the
// pipeline. It parses incoming calls, rejects obviously invalid input
// before the pipeline is invoked, and maps pipeline results to JSON
// responses compatible with the original API surface.
package server
