// Package errs defines the sentinel errors returned across the xpt module.
//
// Callers should match on these with errors.Is, since most call sites wrap
// them with fmt.Errorf("...: %w", ...) to attach positional context (byte
// offset, field name, record kind).
package errs

import "errors"

// Header and date parsing errors (section 4.B).
var (
	// ErrInvalidHeader is returned when a fixed-prefix or fixed-literal
	// header byte string does not match what the XPT format requires.
	ErrInvalidHeader = errors.New("xpt: invalid header record")
	// ErrInvalidDate is returned when a 16-byte date field fails the
	// DDMONYY:HH:MM:SS parse.
	ErrInvalidDate = errors.New("xpt: invalid date field")
)

// Variable descriptor errors (section 4.C).
var (
	// ErrUnsupportedNumericWidth is returned when a numeric variable
	// declares a field length outside [2, 8] bytes.
	ErrUnsupportedNumericWidth = errors.New("xpt: unsupported numeric field width")
	// ErrDuplicateFieldName is returned when two variable descriptors in
	// the same namestr table declare the same trimmed name.
	ErrDuplicateFieldName = errors.New("xpt: duplicate field name")
)

// Float codec errors (section 4.A).
var (
	// ErrInvalidMissingValue is returned when a zero-fraction IBM value
	// has neither an all-zero first byte nor a recognized missing-value
	// sentinel character.
	ErrInvalidMissingValue = errors.New("xpt: invalid missing value sentinel")
	// ErrOverflow is returned by ibmfloat.Encode when the unbiased IEEE
	// exponent exceeds what IBM hex-float excess-64 can represent.
	ErrOverflow = errors.New("xpt: ibm float overflow")
	// ErrUnderflow is returned by ibmfloat.Encode when the unbiased IEEE
	// exponent falls below what IBM hex-float excess-64 can represent.
	ErrUnderflow = errors.New("xpt: ibm float underflow")
	// ErrInfinityUnsupported is returned by ibmfloat.Encode when asked to
	// encode ±Inf; IBM hex float has no infinity representation.
	ErrInfinityUnsupported = errors.New("xpt: ibm float has no representation for infinity")
)

// Observation stream errors (section 4.D).
var (
	// ErrIncompleteRecord is returned when a short read ends mid-row and
	// the partial bytes read are not all ASCII spaces.
	ErrIncompleteRecord = errors.New("xpt: incomplete observation record")
	// ErrInsufficientPadding is returned when the terminal padding after
	// a short read does not restore 80-byte block alignment.
	ErrInsufficientPadding = errors.New("xpt: insufficient trailing padding")
	// ErrIncorrectPadding is returned when the padding following an
	// all-spaces sentinel block does not restore 80-byte alignment. (A
	// non-space byte there is reported as ErrMultipleMembersUnsupported.)
	ErrIncorrectPadding = errors.New("xpt: incorrect trailing padding")
	// ErrMultipleMembersUnsupported is returned when a second member's
	// header is detected after the first member's observation data.
	ErrMultipleMembersUnsupported = errors.New("xpt: multiple member datasets are not supported")
)

// Materialization errors (xptmat, section 4.E of SPEC_FULL.md).
var (
	// ErrFieldNotFound is returned by Materialize when WithCompressedColumns
	// names a field absent from the dataset's schema. ValueAt and TextAt
	// report an unknown field with a false result instead.
	ErrFieldNotFound = errors.New("xpt: field not found")
	// ErrRowOutOfRange names a materialized row index that is negative or
	// at/beyond the materialized row count. No function in this module
	// returns it: ValueAt, TextAt and RowAt report that case with a false
	// result.
	ErrRowOutOfRange = errors.New("xpt: row index out of range")
	// ErrUnsupportedCompression is returned when a materialize option
	// names a compression type the codec registry does not recognize.
	ErrUnsupportedCompression = errors.New("xpt: unsupported compression type")
	// ErrWrongColumnKind names a ValueAt call on a character column or a
	// TextAt call on a numeric column. No function in this module returns
	// it: both accessors report that case with a false result.
	ErrWrongColumnKind = errors.New("xpt: field is not of the requested kind")
)
