// Package compress provides the generic APIs implemented by parquet compression
// codecs.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/colbuf/parquet/format"
)

// The Codec interface represents parquet compression codecs implemented by the
// compress sub-packages.
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// Returns a human-readable name for the codec.
	String() string

	// Returns the code of the compression codec in the parquet format.
	CompressionCodec() format.CompressionCodec

	// NewReader wraps r with a stream that decompresses bytes read from it.
	// A nil r yields a reader producing the codec's representation of an
	// empty input, so a reader can be reset and reused across streams.
	NewReader(r io.Reader) (Reader, error)

	// NewWriter wraps w with a stream that compresses bytes written to it.
	// A nil w discards output, which is how pooled writers are parked
	// between uses.
	NewWriter(w io.Writer) (Writer, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

type Writer interface {
	io.WriteCloser
	Reset(io.Writer) error
}

// ErrUnsupportedCodec is returned by Lookup when no Codec has been
// registered for a format.CompressionCodec, which happens when the
// subpackage implementing it was never imported (registration is a side
// effect of that package's init function).
var ErrUnsupportedCodec = errors.New("compress: unsupported compression codec")

// registry holds the Codec registered for each format.CompressionCodec,
// indexed by its own code.
var registry [6]Codec

// Register binds codec under the format.CompressionCodec it reports from
// its own CompressionCodec method. Codec subpackages call this from an
// init function so that a column chunk reader never has to import every
// codec subpackage by name: importing one for its side effect (even with a
// blank identifier) is what makes Lookup able to find it, mirroring how
// column_reader.go resolves a value decoder by format.Encoding rather than
// by a compile-time reference to a concrete decoder type.
func Register(codec Codec) {
	code := codec.CompressionCodec()
	if int(code) < 0 || int(code) >= len(registry) {
		panic(fmt.Sprintf("compress: codec %s reports out-of-range compression code %d", codec, code))
	}
	registry[code] = codec
}

// Lookup returns the Codec registered for code.
func Lookup(code format.CompressionCodec) (Codec, error) {
	if int(code) >= 0 && int(code) < len(registry) {
		if c := registry[code]; c != nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", code, ErrUnsupportedCodec)
}

type Compressor struct {
	writers sync.Pool
}

func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, _ := c.writers.Get().(Writer)
	if w != nil {
		if err := w.Reset(output); err != nil {
			return dst, err
		}
	} else {
		var err error
		if w, err = newWriter(output); err != nil {
			return dst, err
		}
	}
	defer c.writers.Put(w)
	defer w.Reset(io.Discard)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}
