// Package xpt streams observations out of a SAS XPORT (XPT) version 5
// transport file: a sequence of 80-byte record-structured headers followed
// by fixed-width observation rows.
package xpt

import (
	"io"
	"iter"
	"strings"

	"github.com/go-xpt/xpt/errs"
	"github.com/go-xpt/xpt/header"
	"github.com/go-xpt/xpt/ibmfloat"
	"github.com/go-xpt/xpt/internal/hash"
)

// Metadata is the file-level information captured once during header
// parsing: format version, originating OS, and the library's creation and
// modification timestamps.
type Metadata = header.Metadata

// Reader streams observations from an XPT byte source. It eagerly parses
// every header block at construction time; rows are then produced lazily,
// one at a time, by Next.
//
// A Reader is single-pass and not safe for concurrent use: it holds
// exclusive use of the underlying source for its lifetime. The caller owns
// the source and is responsible for closing it.
type Reader struct {
	src io.Reader

	meta      header.Metadata
	variables []header.Variable
	fieldPos  map[uint64]int

	rowSize int
	count   int
	done    bool
}

// Open constructs a Reader over src, eagerly validating and parsing the
// library header, member header, and namestr table. It fails with
// ErrInvalidHeader or ErrInvalidDate on any malformed header block.
func Open(src io.Reader) (*Reader, error) {
	meta, err := header.ParseLibraryHeader(src)
	if err != nil {
		return nil, err
	}

	namestrSize, err := header.ParseMemberHeader(src)
	if err != nil {
		return nil, err
	}

	numVars, err := header.ParseNamestrHeader(src)
	if err != nil {
		return nil, err
	}

	variables, _, err := header.ParseNamestrRecords(src, numVars, namestrSize)
	if err != nil {
		return nil, err
	}

	if err := readObsHeader(src); err != nil {
		return nil, err
	}

	fieldPos := make(map[uint64]int, len(variables))
	rowSize := 0
	for i, v := range variables {
		fieldPos[hash.FieldID(v.Name)] = i
		rowSize += v.Size
	}

	return &Reader{
		src:       src,
		meta:      meta,
		variables: variables,
		fieldPos:  fieldPos,
		rowSize:   rowSize,
	}, nil
}

// readObsHeader validates the single 80-byte OBS header block that precedes
// the observation stream.
func readObsHeader(src io.Reader) error {
	line := make([]byte, header.RecordSize)
	if _, err := io.ReadFull(src, line); err != nil {
		return errs.ErrInvalidHeader
	}
	const obsPrefix = "HEADER RECORD*******OBS     HEADER RECORD!!!!!!!"
	if !strings.HasPrefix(string(line), obsPrefix) {
		return errs.ErrInvalidHeader
	}
	return nil
}

// Fields returns the declared variable names, in declaration order.
func (r *Reader) Fields() []string {
	names := make([]string, len(r.variables))
	for i, v := range r.variables {
		names[i] = v.Name
	}
	return names
}

// Metadata returns the file-level version/OS/timestamp information captured
// from the library header.
func (r *Reader) Metadata() header.Metadata {
	return r.meta
}

// Variables returns the parsed variable descriptors, in declaration order.
func (r *Reader) Variables() []header.Variable {
	return r.variables
}

// FieldPosition returns the declaration-order index of the named field and
// true, or (0, false) if no such field exists.
func (r *Reader) FieldPosition(name string) (int, bool) {
	i, ok := r.fieldPos[hash.FieldID(name)]
	return i, ok
}

// RowSize returns the fixed byte width of one observation block, the sum of
// every variable's declared size.
func (r *Reader) RowSize() int {
	return r.rowSize
}

// Next reads and decodes the next observation. It returns (Row{}, false,
// nil) once the stream is exhausted, and a non-nil error on any malformed
// trailing data.
func (r *Reader) Next() (Row, bool, error) {
	if r.done {
		return Row{}, false, nil
	}

	block := make([]byte, r.rowSize)
	n, err := io.ReadFull(r.src, block)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		r.done = true
		return r.handleShortRead(block[:n])
	}
	if err != nil {
		return Row{}, false, err
	}

	if allSpaces(block) {
		r.done = true
		return r.handleSentinel()
	}

	row, err := r.decodeRow(block)
	if err != nil {
		return Row{}, false, err
	}
	r.count++
	return row, true, nil
}

func (r *Reader) handleShortRead(partial []byte) (Row, bool, error) {
	if !allSpaces(partial) {
		return Row{}, false, errs.ErrIncompleteRecord
	}
	total := r.count*r.rowSize + len(partial)
	if len(partial) != 0 && total%header.RecordSize != 0 {
		return Row{}, false, errs.ErrInsufficientPadding
	}
	return Row{}, false, nil
}

func (r *Reader) handleSentinel() (Row, bool, error) {
	remainder, err := io.ReadAll(r.src)
	if err != nil {
		return Row{}, false, err
	}
	if !allSpaces(remainder) {
		return Row{}, false, errs.ErrMultipleMembersUnsupported
	}

	// The sentinel block plus whatever trailed it must bring the total
	// observation-section byte count to a multiple of 80.
	total := r.count*r.rowSize + r.rowSize + len(remainder)
	if total%header.RecordSize != 0 {
		return Row{}, false, errs.ErrIncorrectPadding
	}
	return Row{}, false, nil
}

func (r *Reader) decodeRow(block []byte) (Row, error) {
	row := Row{
		kinds:      make([]bool, len(r.variables)),
		numericIdx: make([]int, len(r.variables)),
		textIdx:    make([]int, len(r.variables)),
	}

	for i, v := range r.variables {
		field := block[v.Position : v.Position+v.Size]
		row.kinds[i] = v.Numeric

		if v.Numeric {
			val, err := ibmfloat.Decode(field)
			if err != nil {
				return Row{}, err
			}
			row.numericIdx[i] = len(row.Numerics)
			row.Numerics = append(row.Numerics, val)
		} else {
			text := strings.TrimRight(decodeLatin1(field), " ")
			row.textIdx[i] = len(row.Texts)
			row.Texts = append(row.Texts, text)
		}
	}

	return row, nil
}

// decodeLatin1 converts a raw ISO-8859-1 byte string into a Go string.
// Latin-1's code points map 1:1 onto the first 256 Unicode code points, so
// each byte widens directly to its matching rune rather than surviving as
// invalid UTF-8.
func decodeLatin1(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}

// Rows returns a single-pass sequence over the remaining observations.
// Iteration stops early, without error, if the underlying range func's
// yield returns false; any decode error aborts the whole stream and is
// silently dropped by range-over-func (use Next directly to observe it).
//
// Example:
//
//	for row := range r.Rows() {
//	    fmt.Println(row)
//	}
func (r *Reader) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for {
			row, ok, err := r.Next()
			if err != nil || !ok {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}

// DictRows returns a single-pass sequence pairing each row with the
// declared field names, in declaration order.
func (r *Reader) DictRows() iter.Seq2[[]string, Row] {
	fields := r.Fields()
	return func(yield func([]string, Row) bool) {
		for {
			row, ok, err := r.Next()
			if err != nil || !ok {
				return
			}
			if !yield(fields, row) {
				return
			}
		}
	}
}

func allSpaces(b []byte) bool {
	for _, c := range b {
		if c != ' ' {
			return false
		}
	}
	return true
}
