package memsource

import (
	"bytes"
	"testing"

	"github.com/colbuf/parquet"
	"github.com/colbuf/parquet/compress"
	"github.com/colbuf/parquet/format"
)

func TestSourceUncompressed(t *testing.T) {
	raw := []byte{42, 0, 0, 0, 18, 0, 0, 0}
	src := New([]PageSpec{
		{
			Kind:      parquet.DataPageV1,
			Data:      raw,
			NumValues: 2,
			Encoding:  format.Plain,
		},
	})

	page, err := src.NextPage()
	if err != nil {
		t.Fatalf("NextPage() error: %v", err)
	}
	if page == nil {
		t.Fatal("NextPage() = nil, want a page")
	}
	if !bytes.Equal(page.Buf.Bytes(), raw) {
		t.Fatalf("page.Buf = %v, want %v", page.Buf.Bytes(), raw)
	}
	if page.NumValues != 2 || page.Encoding != format.Plain {
		t.Fatalf("page metadata = (%d,%s), want (2,PLAIN)", page.NumValues, page.Encoding)
	}

	page, err = src.NextPage()
	if err != nil || page != nil {
		t.Fatalf("exhausted NextPage() = (%v,%v), want (nil,nil)", page, err)
	}
}

// TestSourceCompressed exercises every compression codec the registry
// knows about, resolving each the same way NextPage does: by
// format.CompressionCodec, through compress.Lookup, never by importing a
// specific codec subpackage by name.
func TestSourceCompressed(t *testing.T) {
	raw := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox jumps over the lazy dog")

	codecs := []format.CompressionCodec{
		format.Snappy,
		format.Gzip,
		format.Zstd,
	}

	for _, code := range codecs {
		t.Run(code.String(), func(t *testing.T) {
			codec, err := compress.Lookup(code)
			if err != nil {
				t.Fatalf("compress.Lookup(%s) error: %v", code, err)
			}

			var buf bytes.Buffer
			w, err := codec.NewWriter(&buf)
			if err != nil {
				t.Fatalf("NewWriter() error: %v", err)
			}
			if _, err := w.Write(raw); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() error: %v", err)
			}

			src := New([]PageSpec{
				{
					Kind:        parquet.DataPageV1,
					Data:        buf.Bytes(),
					Compression: code,
					NumValues:   1,
					Encoding:    format.Plain,
				},
			})

			page, err := src.NextPage()
			if err != nil {
				t.Fatalf("NextPage() error: %v", err)
			}
			if !bytes.Equal(page.Buf.Bytes(), raw) {
				t.Fatalf("decompressed page.Buf = %q, want %q", page.Buf.Bytes(), raw)
			}
		})
	}
}

func TestSourceUnregisteredCodec(t *testing.T) {
	src := New([]PageSpec{
		{
			Kind:        parquet.DataPageV1,
			Data:        []byte{0},
			Compression: format.CompressionCodec(99),
			NumValues:   1,
			Encoding:    format.Plain,
		},
	})
	if _, err := src.NextPage(); err == nil {
		t.Fatal("NextPage() with an out-of-range compression code: want an error, got nil")
	}
}
