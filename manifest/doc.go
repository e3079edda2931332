// Package manifest loads and applies batch-truncation manifests.
//
// A manifest is a declarative list of files and the sizes they should
// be truncated to, written in YAML, TOML, or JSON:
//
//	entries:
//	  - path: logs/app.log
//	    size: 0
//	  - path: cache/blob.bin
//	    size: 4096
//
// The format is chosen by file extension. Loading validates the
// document; Apply runs the truncations through the trunc package:
//
//	m, err := manifest.Load("shrink.yaml")
//	if err != nil { ... }
//	if err := m.Apply(); err != nil { ... }
//
// Schema returns a JSON Schema for the manifest document, suitable for
// editor integration or CI validation of manifests.
package manifest
