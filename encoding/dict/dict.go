// Package dict implements dictionary-indirected decoding (PLAIN_DICTIONARY
// / RLE_DICTIONARY): a data page of bit-packed indices resolved against a
// dictionary populated once from a preceding dictionary page.
package dict

import (
	"errors"
	"fmt"
	"io"

	"github.com/colbuf/parquet/encoding/rle"
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
	"github.com/colbuf/parquet/internal/errs"
)

// ErrDictionaryAlreadySet is returned by SetDict when a Decoder already
// has a dictionary bound; a column chunk may carry at most one dictionary
// page.
var ErrDictionaryAlreadySet = errors.New("dict: dictionary already set")

// ErrNoDictionary is returned by SetData when called before SetDict.
var ErrNoDictionary = errors.New("dict: data page seen before a dictionary was set")

// Decoder decodes a dictionary-indexed data page: a one-byte bit width
// followed by an RLE/bit-packed hybrid stream of indices into a
// dictionary supplied once via SetDict.
type Decoder[T any] struct {
	dict      []T
	hasDict   bool
	hybrid    rle.HybridDecoder
	numValues int
}

// NewDecoder returns an unbound Decoder.
func NewDecoder[T any]() *Decoder[T] {
	return &Decoder[T]{}
}

// SetDict binds the decoder's dictionary. It must be called exactly once
// before the first SetData.
func (d *Decoder[T]) SetDict(dict []T) error {
	if d.hasDict {
		return ErrDictionaryAlreadySet
	}
	d.dict = dict
	d.hasDict = true
	return nil
}

func (d *Decoder[T]) SetData(buf buffer.Buffer, numValues int) error {
	if !d.hasDict {
		return ErrNoDictionary
	}
	if buf.Len() < 1 {
		return fmt.Errorf("dict: bit width: %w", io.ErrUnexpectedEOF)
	}
	bitWidth := uint(buf.Bytes()[0])
	if bitWidth > 64 {
		return fmt.Errorf("dict: bit width %d exceeds 64: %w", bitWidth, errs.ErrInvalidHeader)
	}
	d.hybrid.SetData(buf.From(1), bitWidth)
	d.numValues = numValues
	return nil
}

func (d *Decoder[T]) Decode(out []T) (int, error) {
	n := len(out)
	if n > d.numValues {
		n = d.numValues
	}
	read, err := rle.GetBatchWithDict(&d.hybrid, d.dict, out[:n])
	d.numValues -= read
	if err != nil {
		return read, fmt.Errorf("dict: %w", err)
	}
	return read, nil
}

func (d *Decoder[T]) ValuesLeft() int { return d.numValues }

func (d *Decoder[T]) Encoding() format.Encoding { return format.RLEDictionary }
