package header

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/go-xpt/xpt/errs"
	"github.com/go-xpt/xpt/internal/collision"
	"github.com/go-xpt/xpt/internal/hash"
	"github.com/go-xpt/xpt/internal/pool"
)

// Variable describes one column of an XPT dataset. It is immutable after
// construction: built once while parsing the namestr table and never
// mutated while rows are streamed.
type Variable struct {
	Name     string
	Numeric  bool
	Position int
	Size     int
}

// namestr record field offsets, grounded on the reference decoder's exact
// struct layout rather than on approximate prose ranges.
const (
	offType         = 0
	offLength       = 4
	offName         = 8
	offNameEnd      = 16
	offFormatName   = 56
	offInformatName = 72
	offPosition     = 84
)

// ParseNamestrHeader reads the 80-byte namestr header block and returns the
// declared variable count.
func ParseNamestrHeader(r io.Reader) (int, error) {
	line := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line); err != nil {
		return 0, errs.ErrInvalidHeader
	}
	if !bytes.HasPrefix(line, []byte(namestrPrefix)) {
		return 0, errs.ErrInvalidHeader
	}
	countField := strings.TrimSpace(string(line[54:58]))
	n, err := atoiStrict(countField)
	if err != nil {
		return 0, errs.ErrInvalidHeader
	}
	return n, nil
}

// ParseNamestrRecords reads n namestr records of the given size (136 or
// 140), builds the ordered variable table, and consumes the trailing
// padding that restores 80-byte alignment.
//
// The returned Tracker holds each field name's xxHash64 in declaration
// order and flags any collision between distinct names; a name declared
// twice fails with ErrDuplicateFieldName.
func ParseNamestrRecords(r io.Reader, n int, recordSize int) ([]Variable, *collision.Tracker, error) {
	if recordSize != NamestrRecordSize136 && recordSize != NamestrRecordSize140 {
		return nil, nil, errs.ErrInvalidHeader
	}

	rec := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(rec)

	variables := make([]Variable, 0, n)
	tracker := collision.NewTracker(n)

	for i := 0; i < n; i++ {
		rec.Reset()
		rec.Grow(recordSize)
		buf := rec.Bytes()[:recordSize]
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, nil, errs.ErrInvalidHeader
		}

		v, err := parseNamestrRecord(buf)
		if err != nil {
			return nil, nil, err
		}

		if err := tracker.Track(v.Name, hash.FieldID(v.Name)); err != nil {
			return nil, nil, err
		}

		variables = append(variables, v)
	}

	spillover := (n * recordSize) % RecordSize
	if spillover != 0 {
		padding := make([]byte, RecordSize-spillover)
		if _, err := io.ReadFull(r, padding); err != nil {
			return nil, nil, errs.ErrInvalidHeader
		}
	}

	return variables, tracker, nil
}

func parseNamestrRecord(buf []byte) (Variable, error) {
	varType := int16(binary.BigEndian.Uint16(buf[offType : offType+2]))
	length := int16(binary.BigEndian.Uint16(buf[offLength : offLength+2]))
	name := strings.TrimRight(string(buf[offName:offNameEnd]), " ")
	position := int32(binary.BigEndian.Uint32(buf[offPosition : offPosition+4]))

	v := Variable{
		Name:     name,
		Numeric:  varType == 1,
		Position: int(position),
		Size:     int(length),
	}

	if v.Numeric && (v.Size < 2 || v.Size > 8) {
		return Variable{}, errs.ErrUnsupportedNumericWidth
	}
	if !v.Numeric && v.Size < 1 {
		return Variable{}, errs.ErrUnsupportedNumericWidth
	}

	return v, nil
}
