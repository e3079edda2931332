// Package trunckit provides a uniform truncation contract for byte
// sequences, together with tooling built on top of it.
//
// trunckit is organized as independent subpackages that can be imported
// à la carte:
//
//   - trunc: the Truncator contract and its in-memory, borrowed-view,
//     file, and cursor implementations
//   - manifest: declarative batch-truncation manifests (YAML, TOML, JSON)
//   - watch: detect external truncation of files on disk
//   - cmd/trunc: a truncate(1)-style command built on the above
//
// # Quick Start
//
// Truncating an owned buffer:
//
//	import "github.com/iokit/trunckit/trunc"
//	buf := trunc.NewBuffer([]byte{0, 1, 2, 3})
//	err := buf.Truncate(3) // buf.Bytes() == []byte{0, 1, 2}
//
// Narrowing a borrowed view without copying:
//
//	v := trunc.View([]byte{0, 1, 2, 3})
//	err := v.Truncate(3)
//
// Files satisfy the contract natively:
//
//	var t trunc.Truncator = f // f is an *os.File
//	err := t.Truncate(1024)
//
// # Design Philosophy
//
//   - One small interface; concrete types for each representation
//   - In-memory representations only ever shrink; files follow the
//     platform's resize semantics, which may grow
//   - Errors are never swallowed or translated on the way up
//   - Each package usable independently
package trunckit
