// Package source holds the file set, byte-offset spans, and string interner
// shared by every phase of the pipeline, from the lexer down to the SMT
// emitter. Nothing in this package knows about the verifier's syntax or
// semantics; it exists purely to give every later IR a stable way to point
// back at the program text.
package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata recorded while loading a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks a file that was added from memory (tests, stdin)
	// rather than read from disk.
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose leading UTF-8 BOM was stripped.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were
	// rewritten to LF.
	FileNormalizedCRLF
	// FileNormalizedNFC marks a file whose content was rewritten to
	// Unicode NFC normal form.
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position within a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
