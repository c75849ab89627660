package xptmat

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/go-xpt/xpt/ibmfloat"
	"github.com/go-xpt/xpt/xpt"
	"github.com/stretchr/testify/require"
)

func padTo(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	for i := len(s); i < n; i++ {
		b[i] = ' '
	}
	return b
}

func itoa4(n int) string {
	digits := [4]byte{}
	for i := 3; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[:])
}

func buildLibraryHeader() []byte {
	var buf bytes.Buffer
	buf.Write([]byte("HEADER RECORD*******LIBRARY HEADER RECORD!!!!!!!"))
	buf.Write(padTo("000000000000000000000000000000", 32))

	buf.Write(padTo("SAS", 8))
	buf.Write(padTo("SAS", 8))
	buf.Write(padTo("SASLIB", 8))
	buf.Write(padTo("5.0", 8))
	buf.Write(padTo("unix", 8))
	buf.Write(padTo("", 24))
	buf.Write(padTo("16FEB11:10:07:55", 16))

	buf.Write(padTo("17FEB11:09:00:00", 16))
	buf.Write(padTo("", 64))
	return buf.Bytes()
}

func buildMemberHeader(namestrSize int) []byte {
	var buf bytes.Buffer
	buf.Write([]byte("HEADER RECORD*******MEMBER  HEADER RECORD!!!!!!!"))
	buf.Write(padTo("", 26))
	buf.Write(padTo(itoa4(namestrSize), 4))
	buf.Write(padTo("", 2))

	buf.Write([]byte("HEADER RECORD*******DSCRPTR HEADER RECORD!!!!!!!"))
	buf.Write(padTo("", 32))

	buf.Write(padTo("SAS", 8))
	buf.Write(padTo("DSETNAME", 8))
	buf.Write(padTo("SASDATA", 8))
	buf.Write(padTo("5.0", 8))
	buf.Write(padTo("unix", 8))
	buf.Write(padTo("", 24))
	buf.Write(padTo("16FEB11:10:07:55", 16))

	buf.Write(padTo("17FEB11:09:00:00", 16))
	buf.Write(padTo("", 16))
	buf.Write(padTo("", 40))
	buf.Write(padTo("", 8))
	return buf.Bytes()
}

func buildNamestrHeader(numVars int) []byte {
	var buf bytes.Buffer
	buf.Write([]byte("HEADER RECORD*******NAMESTR HEADER RECORD!!!!!!!"))
	buf.Write(padTo("", 6))
	buf.Write(padTo(itoa4(numVars), 4))
	buf.Write(padTo("", 22))
	return buf.Bytes()
}

func buildNamestrRecord(size int, varType int16, length int16, name string, position int32) []byte {
	buf := make([]byte, size)
	binary.BigEndian.PutUint16(buf[0:2], uint16(varType))
	binary.BigEndian.PutUint16(buf[4:6], uint16(length))
	copy(buf[8:16], padTo(name, 8))
	binary.BigEndian.PutUint32(buf[84:88], uint32(position))
	for i := 88; i < size; i++ {
		buf[i] = ' '
	}
	return buf
}

func buildObsHeader() []byte {
	var buf bytes.Buffer
	buf.Write([]byte("HEADER RECORD*******OBS     HEADER RECORD!!!!!!!"))
	buf.Write(padTo("", 32))
	return buf.Bytes()
}

// buildFixture assembles a complete library+member+namestr+obs header
// sequence for a WEIGHT (numeric, 8) + NAME (character, 4) dataset.
func buildFixture() *bytes.Buffer {
	var buf bytes.Buffer
	buf.Write(buildLibraryHeader())
	buf.Write(buildMemberHeader(140))
	buf.Write(buildNamestrHeader(2))
	buf.Write(buildNamestrRecord(140, 1, 8, "WEIGHT", 0))
	buf.Write(buildNamestrRecord(140, 2, 4, "NAME", 8))
	// 2 * 140 = 280, 280 % 80 = 40, padding needed = 40
	buf.Write(make([]byte, 40))
	buf.Write(buildObsHeader())
	return &buf
}

func encodeFloat(t *testing.T, v float64) []byte {
	t.Helper()
	b, err := ibmfloat.Encode(v)
	require.NoError(t, err)
	return b
}

// buildCorruptDataset returns the raw bytes of a WEIGHT/NAME dataset whose
// single row's WEIGHT field decodes to neither zero nor a missing-value
// sentinel, so that consuming it must halt with an error.
func buildCorruptDataset() []byte {
	buf := buildFixture()

	weight := make([]byte, 8)
	weight[0] = 0x30 // not zero, not a missing-value sentinel letter
	buf.Write(weight)
	buf.WriteString("Amy ")

	buf.Write(bytes.Repeat([]byte{' '}, 68))
	return buf.Bytes()
}

// buildThreeRowDataset returns an Open-ready reader over a WEIGHT/NAME
// dataset of three rows, trailed by the padding needed to round the
// observation section up to 80 bytes (36 data bytes + 44 padding = 80).
func buildThreeRowDataset(t *testing.T) *xpt.Reader {
	t.Helper()
	buf := buildFixture()

	buf.Write(encodeFloat(t, 150.5))
	buf.WriteString("Amy ")
	buf.Write(encodeFloat(t, 200.0))
	buf.WriteString("Bob ")
	buf.Write(encodeFloat(t, 99.25))
	buf.WriteString("Cat ")

	buf.Write(bytes.Repeat([]byte{' '}, 44))

	r, err := xpt.Open(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return r
}
