package compress_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/colbuf/parquet/compress"
	"github.com/colbuf/parquet/compress/gzip"
	"github.com/colbuf/parquet/compress/snappy"
	"github.com/colbuf/parquet/compress/uncompressed"
	"github.com/colbuf/parquet/compress/zstd"
	"github.com/colbuf/parquet/format"
)

func TestCompressionCodec(t *testing.T) {
	tests := []struct {
		scenario string
		codec    compress.Codec
	}{
		{
			scenario: "uncompressed",
			codec:    new(uncompressed.Codec),
		},

		{
			scenario: "snappy",
			codec:    new(snappy.Codec),
		},

		{
			scenario: "gzip",
			codec:    new(gzip.Codec),
		},

		{
			scenario: "zstd",
			codec:    new(zstd.Codec),
		},
	}

	buffer := new(bytes.Buffer)
	output := new(bytes.Buffer)
	random := bytes.Repeat([]byte("1234567890qwertyuiopasdfghjklzxcvbnm"), 1000)

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			w, err := test.codec.NewWriter(nil)
			if err != nil {
				t.Fatal(err)
			}
			defer w.Close()

			r, err := test.codec.NewReader(nil)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()

			for i := 0; i < 10; i++ {
				buffer.Reset()
				output.Reset()

				if err := w.Reset(buffer); err != nil {
					t.Fatal(err)
				}
				if _, err := io.Copy(w, iotest.OneByteReader(bytes.NewReader(random))); err != nil {
					t.Fatal(err)
				}
				if err := w.Close(); err != nil {
					t.Fatal(err)
				}

				if err := r.Reset(buffer); err != nil {
					t.Fatal(err)
				}
				if _, err := io.Copy(output, iotest.OneByteReader(r)); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(random, output.Bytes()) {
					t.Errorf("content mismatch after compressing and decompressing:\n%q\n%q", random, output.Bytes())
				}

				if err := w.Reset(nil); err != nil {
					t.Fatal(err)
				}
				if err := r.Reset(nil); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}

// TestLookupRegistersEveryImportedCodec checks that each codec subpackage
// imported above has registered itself under the format.CompressionCodec it
// reports, since that's what a PageSource looks up a codec by rather than a
// concrete type.
func TestLookupRegistersEveryImportedCodec(t *testing.T) {
	for _, code := range []format.CompressionCodec{
		format.Uncompressed,
		format.Snappy,
		format.Gzip,
		format.Zstd,
	} {
		if _, err := compress.Lookup(code); err != nil {
			t.Errorf("Lookup(%s): %v", code, err)
		}
	}
}

func TestLookupUnregisteredCodec(t *testing.T) {
	_, err := compress.Lookup(format.CompressionCodec(99))
	if !errors.Is(err, compress.ErrUnsupportedCodec) {
		t.Fatalf("Lookup() error = %v, want ErrUnsupportedCodec", err)
	}
}
