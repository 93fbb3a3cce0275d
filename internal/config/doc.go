// Package config loads and validates the service configuration: the HTTP
// listen address, the session work root, the platform allow-list, and the
// extraction settings handed to the yt-dlp adapter. Configuration is an
// explicit value injected into component constructors; nothing lives in
// package-level mutable state.
package config
