// Package admission validates and normalizes incoming source URLs
// against a platform allow-list before the pipeline touches the network.
package admission
