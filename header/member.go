package header

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-xpt/xpt/errs"
)

// ParseMemberHeader reads the four 80-byte member header records from r and
// returns the declared namestr record size (136 or 140).
//
// The dataset name, label, type, and per-member version/OS/timestamps are
// validated for well-formedness but not surfaced; file-level Metadata comes
// from the library header alone, matching the source reader this package is
// ported from.
func ParseMemberHeader(r io.Reader) (namestrSize int, err error) {
	line1 := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line1); err != nil {
		return 0, errs.ErrInvalidHeader
	}
	if !bytes.HasPrefix(line1, []byte(memberPrefix)) {
		return 0, errs.ErrInvalidHeader
	}
	sizeField := strings.TrimSpace(string(line1[74:78]))
	namestrSize, err = atoiStrict(sizeField)
	if err != nil {
		return 0, errs.ErrInvalidHeader
	}
	if namestrSize != NamestrRecordSize136 && namestrSize != NamestrRecordSize140 {
		return 0, errs.ErrInvalidHeader
	}

	line2 := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line2); err != nil {
		return 0, errs.ErrInvalidHeader
	}
	if !bytes.HasPrefix(line2, []byte(dscrptrPrefix)) {
		return 0, errs.ErrInvalidHeader
	}

	line3 := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line3); err != nil {
		return 0, errs.ErrInvalidHeader
	}
	if string(line3[0:8]) != sasTag || string(line3[16:24]) != sasdataLiteral {
		return 0, errs.ErrInvalidHeader
	}
	if _, _, err := parseVersion(strings.TrimSpace(string(line3[24:32]))); err != nil {
		return 0, err
	}
	if _, err := parseDate(line3[64:80]); err != nil {
		return 0, err
	}

	line4 := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line4); err != nil {
		return 0, errs.ErrInvalidHeader
	}
	if _, err := parseDate(line4[0:16]); err != nil {
		return 0, err
	}

	return namestrSize, nil
}
