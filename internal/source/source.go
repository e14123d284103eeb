package source

import (
	"os"
	"unicode/utf8"

	"mcc/internal/diag"
)

// Buffer holds one source file, opened and decoded up front. Once
// loaded it is read-only for the rest of the compilation; scanner and
// parser share it by reference and never copy token text out of it.
type Buffer struct {
	path string
	text string
}

// Load reads and decodes the file at path. Open and decode failures
// are SourceLoad faults; no cursor exists yet, so they carry no
// line or column.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Fault{
			Class:   diag.SourceLoad,
			Path:    path,
			Message: "could not open file, please provide a valid file path",
		}
	}
	if !utf8.Valid(data) {
		return nil, diag.Fault{
			Class:   diag.SourceLoad,
			Path:    path,
			Message: "could not decode file as UTF-8 text",
		}
	}
	return &Buffer{path: path, text: string(data)}, nil
}

// FromString wraps in-memory text as a buffer. The REPL and tests use
// it; path is only a name for diagnostics.
func FromString(path, text string) *Buffer {
	return &Buffer{path: path, text: text}
}

func (b *Buffer) Path() string { return b.path }

func (b *Buffer) Text() string { return b.text }

func (b *Buffer) Len() int { return len(b.text) }

// At returns the byte at offset idx. The caller checks Has first.
func (b *Buffer) At(idx int) byte { return b.text[idx] }

// Has reports whether offset idx lies inside the buffer.
func (b *Buffer) Has(idx int) bool { return idx < len(b.text) }

// Slice returns the source text in [begin, end).
func (b *Buffer) Slice(begin, end int) string { return b.text[begin:end] }
