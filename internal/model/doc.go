// Package model contains the value types shared across the retrieval
// pipeline: the caller request, the admitted URL, the resolved metadata,
// produced media assets, the final result manifest, and the pipeline
// failure taxonomy.
package model
