// Package extract defines the extraction capability boundary: resolving
// metadata for a source URL and downloading its best-available audio into
// a target directory. The yt-dlp adapter is the production implementation;
// pipeline tests substitute an in-memory fake.
package extract
