// Command coldump decodes a synthetic INT32 column chunk through the
// library's ColumnReader and prints the decoded values, either as a table
// or as JSON. It exists to exercise memsource.Source end to end; it does
// not read parquet files from disk, since footer and schema parsing sit
// outside this module's scope.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"

	"github.com/colbuf/parquet"
	"github.com/colbuf/parquet/format"
	"github.com/colbuf/parquet/memsource"
)

func main() {
	jsonOutput := flag.Bool("json", false, "print decoded values as JSON instead of a table")
	dictionary := flag.Bool("dict", false, "demo a dictionary-encoded column instead of a plain one")
	flag.Parse()

	requestID := uuid.New()

	values, err := dump(*dictionary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coldump[%s]: %s\n", requestID, err)
		os.Exit(1)
	}

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(values); err != nil {
			fmt.Fprintf(os.Stderr, "coldump[%s]: encoding JSON: %s\n", requestID, err)
			os.Exit(1)
		}
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"request", "index", "value"})
	for i, v := range values {
		table.Append([]string{requestID.String(), fmt.Sprint(i), fmt.Sprint(v)})
	}
	table.Render()
}

// dump decodes a small demo column chunk: three PLAIN int32 values, or five
// RLE-dictionary encoded values indexing a three-entry dictionary (with
// repetition), depending on which demo the caller asked for.
func dump(useDictionary bool) ([]int32, error) {
	descr := parquet.ColumnDescriptor{PhysicalType: format.Int32}

	var src *memsource.Source
	var batchSize int
	if useDictionary {
		src, batchSize = dictionaryDemoSource()
	} else {
		src, batchSize = plainDemoSource()
	}

	r := parquet.NewInt32ColumnReader(descr, src)
	out := make([]int32, batchSize)
	n, _, err := r.ReadBatch(batchSize, nil, nil, out)
	if err != nil {
		return nil, fmt.Errorf("reading column: %w", err)
	}
	return out[:n], nil
}

func plainInt32Bytes(values []int32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
	}
	return out
}

func plainDemoSource() (*memsource.Source, int) {
	values := []int32{42, 18, 52}
	src := memsource.New([]memsource.PageSpec{
		{
			Kind:      parquet.DataPageV1,
			Data:      plainInt32Bytes(values),
			NumValues: len(values),
			Encoding:  format.Plain,
		},
	})
	return src, len(values)
}

func dictionaryDemoSource() (*memsource.Source, int) {
	dict := []int32{100, 200, 300}
	indices := []int32{0, 1, 2, 0, 1, 0, 0, 0} // padded to a full bit-packed group of 8
	packed := packBitsLSB(indices, 2)
	runHeader := byte(1<<1 | 1) // one bit-packed group of 8, VLQ-encoded
	payload := append([]byte{2 /* bit width */}, append([]byte{runHeader}, packed...)...)

	src := memsource.New([]memsource.PageSpec{
		{
			Kind:      parquet.DictionaryPage,
			Data:      plainInt32Bytes(dict),
			NumValues: len(dict),
			Encoding:  format.PlainDictionary,
		},
		{
			Kind:      parquet.DataPageV1,
			Data:      payload,
			NumValues: 5,
			Encoding:  format.RLEDictionary,
		},
	})
	return src, 5
}

// packBitsLSB packs values (each < 1<<width) 8 at a time LSB-first,
// matching the RLE/bit-packed hybrid's wire format.
func packBitsLSB(values []int32, width uint) []byte {
	byteLen := (len(values)*int(width) + 7) / 8
	out := make([]byte, byteLen)
	bitPos := uint(0)
	for _, v := range values {
		for b := uint(0); b < width; b++ {
			if (v>>b)&1 != 0 {
				out[bitPos/8] |= 1 << (bitPos % 8)
			}
			bitPos++
		}
	}
	return out
}
