package header

import (
	"bytes"
	"encoding/binary"
)

// padTo right-pads s with ASCII spaces to exactly n bytes.
func padTo(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	for i := len(s); i < n; i++ {
		b[i] = ' '
	}
	return b
}

func buildLibraryHeader(version, os, created, modified string) []byte {
	var buf bytes.Buffer

	buf.Write([]byte(libraryPrefix))
	buf.Write(padTo("000000000000000000000000000000", 32)) // 30 zeros, padded w/ spaces to 32

	buf.Write(padTo("SAS", 8))
	buf.Write(padTo("SAS", 8))
	buf.Write(padTo("SASLIB", 8))
	buf.Write(padTo(version, 8))
	buf.Write(padTo(os, 8))
	buf.Write(padTo("", 24))
	buf.Write(padTo(created, 16))

	buf.Write(padTo(modified, 16))
	buf.Write(padTo("", 64))

	return buf.Bytes()
}

func buildMemberHeader(namestrSize int, version, os, created, modified string) []byte {
	var buf bytes.Buffer

	buf.Write([]byte(memberPrefix))
	buf.Write(padTo("", 26))
	buf.Write(padTo(itoa4(namestrSize), 4))
	buf.Write(padTo("", 2))

	buf.Write([]byte(dscrptrPrefix))
	buf.Write(padTo("", 32))

	buf.Write(padTo("SAS", 8))
	buf.Write(padTo("DSETNAME", 8))
	buf.Write(padTo("SASDATA", 8))
	buf.Write(padTo(version, 8))
	buf.Write(padTo(os, 8))
	buf.Write(padTo("", 24))
	buf.Write(padTo(created, 16))

	buf.Write(padTo(modified, 16))
	buf.Write(padTo("", 16))
	buf.Write(padTo("", 40))
	buf.Write(padTo("", 8))

	return buf.Bytes()
}

func buildNamestrHeader(numVars int) []byte {
	var buf bytes.Buffer
	buf.Write([]byte(namestrPrefix))
	buf.Write(padTo("", 6))
	buf.Write(padTo(itoa4(numVars), 4))
	buf.Write(padTo("", 22))
	return buf.Bytes()
}

// buildNamestrRecord constructs one namestr record of the given size (136 or
// 140) following the exact field offsets parseNamestrRecord expects.
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

func itoa4(n int) string {
	digits := [4]byte{}
	for i := 3; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[:])
}
