package parquet

import (
	"fmt"
	"io"

	"github.com/colbuf/parquet/encoding/dict"
	"github.com/colbuf/parquet/encoding/rle"
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/internal/buffer"
)

// valueDecoder is the capability every per-encoding value decoder in the
// encoding/* subpackages implements, whatever their concrete type: plain,
// dictionary, RLE-boolean and delta decoders all share this shape.
type valueDecoder[T any] interface {
	SetData(buf buffer.Buffer, numValues int) error
	Decode(out []T) (int, error)
	ValuesLeft() int
	Encoding() format.Encoding
}

func normalizeEncoding(enc format.Encoding) format.Encoding {
	if enc == format.PlainDictionary {
		return format.RLEDictionary
	}
	return enc
}

// ColumnReader decodes one column chunk's pages into aligned definition
// level, repetition level and value streams. It is specialized at
// construction to the column's physical Go type T by one of the New*
// ColumnReader functions; there is no downcasting anywhere in its
// implementation.
type ColumnReader[T any] struct {
	descr ColumnDescriptor
	src   PageSource

	// newDecoder constructs a fresh value decoder for an encoding other
	// than RLE_DICTIONARY (which is always built via newPlain + dict.Decoder).
	newDecoder func(format.Encoding) (valueDecoder[T], error)
	// newPlain constructs a PLAIN decoder, reused both for PLAIN data
	// pages and to read a dictionary page's entries.
	newPlain func() valueDecoder[T]

	defDec *rle.LevelDecoder
	repDec *rle.LevelDecoder

	valueDec        valueDecoder[T]
	currentEncoding format.Encoding
	cache           map[format.Encoding]valueDecoder[T]

	numBuffered int
	numDecoded  int
}

func newColumnReader[T any](descr ColumnDescriptor, src PageSource,
	newDecoder func(format.Encoding) (valueDecoder[T], error),
	newPlain func() valueDecoder[T]) *ColumnReader[T] {
	return &ColumnReader[T]{
		descr:      descr,
		src:        src,
		newDecoder: newDecoder,
		newPlain:   newPlain,
		cache:      make(map[format.Encoding]valueDecoder[T]),
	}
}

// readNewPage pulls pages from the source until it finds a data page to
// decode, configuring dictionary and level state along the way. It
// returns false once the source is exhausted.
func (r *ColumnReader[T]) readNewPage() (bool, error) {
	for {
		page, err := r.src.NextPage()
		if err != nil {
			return false, err
		}
		if page == nil {
			return false, nil
		}

		switch page.Kind {
		case DictionaryPage:
			if err := r.configureDictionary(page); err != nil {
				return false, err
			}
		case DataPageV1:
			if err := r.configureDataPage(page); err != nil {
				return false, err
			}
			return true, nil
		default:
			// Skip page kinds the core does not decode.
		}
	}
}

func (r *ColumnReader[T]) configureDictionary(page *Page) error {
	enc := normalizeEncoding(page.Encoding)
	if enc != format.RLEDictionary {
		return fmt.Errorf("parquet: dictionary page encoding %s: %w", enc, ErrUnsupportedEncoding)
	}
	if _, exists := r.cache[format.RLEDictionary]; exists {
		return ErrDuplicateDictionary
	}

	plainDec := r.newPlain()
	if err := plainDec.SetData(page.Buf, page.NumValues); err != nil {
		return fmt.Errorf("parquet: dictionary page: %w", err)
	}
	values := make([]T, page.NumValues)
	n, err := plainDec.Decode(values)
	if err != nil {
		return fmt.Errorf("parquet: dictionary page: %w", err)
	}
	if n != page.NumValues {
		return fmt.Errorf("parquet: dictionary page: decoded %d of %d entries: %w", n, page.NumValues, io.ErrUnexpectedEOF)
	}

	dictDec := dict.NewDecoder[T]()
	if err := dictDec.SetDict(values); err != nil {
		return fmt.Errorf("parquet: %w", err)
	}
	r.cache[format.RLEDictionary] = dictDec
	return nil
}

func (r *ColumnReader[T]) configureDataPage(page *Page) error {
	r.numBuffered = page.NumValues
	r.numDecoded = 0

	p := page.Buf

	if r.descr.MaxRepetitionLevel > 0 {
		repDec := rle.NewLevelDecoder()
		consumed, err := repDec.SetData(page.RepLevelEncoding, p, r.descr.MaxRepetitionLevel, page.NumValues)
		if err != nil {
			return fmt.Errorf("parquet: repetition levels: %w", err)
		}
		p = p.From(consumed)
		r.repDec = repDec
	} else {
		r.repDec = nil
	}

	if r.descr.MaxDefinitionLevel > 0 {
		defDec := rle.NewLevelDecoder()
		consumed, err := defDec.SetData(page.DefLevelEncoding, p, r.descr.MaxDefinitionLevel, page.NumValues)
		if err != nil {
			return fmt.Errorf("parquet: definition levels: %w", err)
		}
		p = p.From(consumed)
		r.defDec = defDec
	} else {
		r.defDec = nil
	}

	enc := normalizeEncoding(page.Encoding)

	var valueDec valueDecoder[T]
	if enc == format.RLEDictionary {
		cached, ok := r.cache[format.RLEDictionary]
		if !ok {
			return ErrMissingDictionary
		}
		valueDec = cached
	} else if cached, ok := r.cache[enc]; ok {
		valueDec = cached
	} else {
		fresh, err := r.newDecoder(enc)
		if err != nil {
			return err
		}
		r.cache[enc] = fresh
		valueDec = fresh
	}

	if err := valueDec.SetData(p, page.NumValues); err != nil {
		return fmt.Errorf("parquet: %s: %w", enc, err)
	}

	r.valueDec = valueDec
	r.currentEncoding = enc
	return nil
}

func (r *ColumnReader[T]) hasNext() (bool, error) {
	for r.numBuffered == 0 || r.numBuffered == r.numDecoded {
		// A configured data page with numBuffered==0 is legal (an empty
		// DataPageV1); it carries no values of its own, but later pages
		// in the chunk might, so keep pulling rather than reporting done.
		ok, err := r.readNewPage()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// ReadBatch decodes up to batchSize values (and their associated levels)
// from the column chunk, writing into defLevels, repLevels and values.
// defLevels/repLevels may be nil when the caller already knows the column
// is required/non-repeated and wants to skip level decoding.
//
// It returns the number of values and the number of levels actually
// decoded; both can be less than batchSize at end of chunk. values needs
// room for batchSize entries. defLevels and repLevels receive one entry
// per level decoded, and for an optional or repeated column that count can
// exceed batchSize, since null levels carry no value and the loop runs
// until batchSize values are read. Nothing is written past the bounds the
// caller supplied: a slice too short for the next step makes ReadBatch
// panic instead.
func (r *ColumnReader[T]) ReadBatch(batchSize int, defLevels, repLevels []int16, values []T) (valuesRead, levelsRead int, err error) {
	for valuesRead < batchSize {
		ok, err := r.hasNext()
		if err != nil {
			return valuesRead, levelsRead, err
		}
		if !ok {
			break
		}

		step := batchSize - valuesRead
		if avail := r.numBuffered - r.numDecoded; avail < step {
			step = avail
		}

		haveDefLevels := r.descr.MaxDefinitionLevel > 0 && defLevels != nil
		haveRepLevels := r.descr.MaxRepetitionLevel > 0 && repLevels != nil

		valuesToRead := step
		numDefLevelsRead := 0
		if haveDefLevels {
			n, err := r.defDec.Get(defLevels[levelsRead : levelsRead+step])
			if err != nil {
				return valuesRead, levelsRead, fmt.Errorf("parquet: definition levels: %w", err)
			}
			numDefLevelsRead = n
			valuesToRead = 0
			for _, lvl := range defLevels[levelsRead : levelsRead+n] {
				if int(lvl) == r.descr.MaxDefinitionLevel {
					valuesToRead++
				}
			}
		}

		numRepLevelsRead := 0
		if haveRepLevels {
			n, err := r.repDec.Get(repLevels[levelsRead : levelsRead+step])
			if err != nil {
				return valuesRead, levelsRead, fmt.Errorf("parquet: repetition levels: %w", err)
			}
			numRepLevelsRead = n
			if haveDefLevels && numRepLevelsRead != numDefLevelsRead {
				return valuesRead, levelsRead, ErrLevelMismatch
			}
		}

		switch {
		case haveDefLevels:
			levelsRead += numDefLevelsRead
		case haveRepLevels:
			levelsRead += numRepLevelsRead
		}

		valuesDecoded, err := r.valueDec.Decode(values[valuesRead : valuesRead+valuesToRead])
		if err != nil {
			return valuesRead, levelsRead, fmt.Errorf("parquet: %s: %w", r.currentEncoding, err)
		}

		if haveDefLevels {
			r.numDecoded += numDefLevelsRead
		} else {
			r.numDecoded += valuesDecoded
		}
		valuesRead += valuesDecoded
	}
	return valuesRead, levelsRead, nil
}
