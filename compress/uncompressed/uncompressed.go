package uncompressed

import (
	"io"

	"github.com/colbuf/parquet/compress"
	"github.com/colbuf/parquet/format"
)

type Codec struct {
}

func init() {
	compress.Register(&Codec{})
}

func (c *Codec) String() string {
	return "UNCOMPRESSED"
}

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Uncompressed
}

func (c *Codec) NewReader(r io.Reader) (compress.Reader, error) {
	if r == nil {
		r = io.LimitReader(nil, 0)
	}
	return &reader{r}, nil
}

func (c *Codec) NewWriter(w io.Writer) (compress.Writer, error) {
	if w == nil {
		w = io.Discard
	}
	return &writer{w}, nil
}

type reader struct{ io.Reader }

func (r *reader) Close() error { return nil }
func (r *reader) Reset(rr io.Reader) error {
	if rr == nil {
		rr = io.LimitReader(nil, 0)
	}
	r.Reader = rr
	return nil
}

type writer struct{ io.Writer }

func (w *writer) Close() error             { return nil }
func (w *writer) Reset(ww io.Writer) error { w.Writer = ww; return nil }
