// Package memsource implements an in-memory parquet.PageSource: a
// pre-built slice of pages replayed in order, each optionally routed
// through a compression codec looked up by its format.CompressionCodec the
// way a real column chunk's pages arrive compressed on disk. Every codec
// subpackage is imported for its registration side effect, so a Source can
// replay a page compressed with any of them.
package memsource

import (
	"bytes"
	"fmt"
	"io"

	"github.com/colbuf/parquet"
	"github.com/colbuf/parquet/compress"
	_ "github.com/colbuf/parquet/compress/gzip"
	_ "github.com/colbuf/parquet/compress/snappy"
	_ "github.com/colbuf/parquet/compress/uncompressed"
	_ "github.com/colbuf/parquet/compress/zstd"
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// PageSpec describes one page a Source replays. Data is the page's
// on-wire bytes; when Compression is anything other than
// format.Uncompressed, Data is decompressed through the codec registered
// for that code (see compress.Lookup) before reaching the decoding
// pipeline, exactly as a real PageSource would do after reading a page
// header off disk.
type PageSpec struct {
	Kind        parquet.PageKind
	Data        []byte
	Compression format.CompressionCodec

	NumValues int
	Encoding  format.Encoding
	IsSorted  bool

	DefLevelEncoding format.Encoding
	RepLevelEncoding format.Encoding
}

// Source replays a fixed sequence of pages. It implements
// parquet.PageSource.
type Source struct {
	pages []PageSpec
	pos   int
}

// New returns a Source that replays pages in order.
func New(pages []PageSpec) *Source {
	return &Source{pages: pages}
}

// NextPage implements parquet.PageSource.
func (s *Source) NextPage() (*parquet.Page, error) {
	if s.pos >= len(s.pages) {
		return nil, nil
	}
	spec := s.pages[s.pos]
	s.pos++

	data := spec.Data
	if spec.Compression != format.Uncompressed {
		codec, err := compress.Lookup(spec.Compression)
		if err != nil {
			return nil, fmt.Errorf("memsource: %w", err)
		}
		r, err := codec.NewReader(bytes.NewReader(spec.Data))
		if err != nil {
			return nil, fmt.Errorf("memsource: %s: %w", codec, err)
		}
		decompressed, err := io.ReadAll(r)
		closeErr := r.Close()
		if err != nil {
			return nil, fmt.Errorf("memsource: %s: %w", codec, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("memsource: %s: %w", codec, closeErr)
		}
		data = decompressed
	}

	return &parquet.Page{
		Kind:             spec.Kind,
		Buf:              buffer.New(data),
		NumValues:        spec.NumValues,
		Encoding:         spec.Encoding,
		IsSorted:         spec.IsSorted,
		DefLevelEncoding: spec.DefLevelEncoding,
		RepLevelEncoding: spec.RepLevelEncoding,
	}, nil
}
