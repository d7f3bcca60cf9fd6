package parquet

import (
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// PageKind discriminates the variants of Page the decoding pipeline acts
// on; every other page kind a PageSource might surface (data page V2,
// index pages, ...) is represented as PageOther and skipped.
type PageKind int

const (
	// DictionaryPage carries a column chunk's deduplicated value set,
	// PLAIN-encoded, referenced by later data pages via integer indices.
	DictionaryPage PageKind = iota
	// DataPageV1 carries a run of (optional repetition levels, optional
	// definition levels, values) for part of a column chunk.
	DataPageV1
	// PageOther is any page kind the core does not decode; the dispatcher
	// skips it.
	PageOther
)

func (k PageKind) String() string {
	switch k {
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV1:
		return "DATA_PAGE_V1"
	default:
		return "OTHER"
	}
}

// Page is the unit a PageSource yields: a self-describing, already
// decompressed byte payload plus the metadata the decoding pipeline needs
// to interpret it. Decompression of the codec a page was written with
// happens before the page reaches this package; see the compress package.
type Page struct {
	Kind PageKind
	Buf  buffer.Buffer

	// NumValues is the number of logical values (not bytes) the page
	// carries: dictionary entries for a DictionaryPage, or level entries
	// for a DataPageV1 (null positions of an optional column included,
	// though they carry no bytes in the value block).
	NumValues int

	// Encoding labels a DictionaryPage as PLAIN_DICTIONARY or
	// RLE_DICTIONARY (any other value is rejected with
	// ErrUnsupportedEncoding; the entries themselves are always read as
	// PLAIN), or gives the value encoding for a DataPageV1.
	Encoding format.Encoding

	// IsSorted reports whether a DictionaryPage's entries are sorted by
	// value; unused by the decoding pipeline itself, carried for callers
	// that implement predicate pushdown outside this package.
	IsSorted bool

	// DefLevelEncoding and RepLevelEncoding are the level-stream
	// encodings of a DataPageV1; meaningless for other page kinds.
	DefLevelEncoding format.Encoding
	RepLevelEncoding format.Encoding
}

// PageSource produces the pages of a single column chunk, in file order.
// NextPage is called exactly when the ColumnReader needs more data; a nil
// Page and nil error together signal that the chunk is exhausted. A
// non-nil error propagates to the ColumnReader's caller unchanged.
type PageSource interface {
	NextPage() (*Page, error)
}
