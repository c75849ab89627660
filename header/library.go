package header

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/go-xpt/xpt/errs"
)

// Metadata captures the file-level information surfaced once per XPT stream:
// the declared format version, originating OS, and the two header
// timestamps.
type Metadata struct {
	VersionMajor int
	VersionMinor int
	OS           string
	Created      time.Time
	Modified     time.Time
}

// ParseLibraryHeader reads the three 80-byte library header records from r
// and returns the version/OS/created metadata, with Modified taken from the
// first 16 bytes of the third record.
func ParseLibraryHeader(r io.Reader) (Metadata, error) {
	var meta Metadata

	line1 := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line1); err != nil {
		return meta, errs.ErrInvalidHeader
	}
	if !bytes.HasPrefix(line1, []byte(libraryPrefix)) {
		return meta, errs.ErrInvalidHeader
	}
	rest := line1[len(libraryPrefix):]
	if strings.TrimRight(string(rest), " ") != strings.Repeat("0", 30) {
		return meta, errs.ErrInvalidHeader
	}

	line2 := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line2); err != nil {
		return meta, errs.ErrInvalidHeader
	}
	if string(line2[0:8]) != sasTag || string(line2[8:16]) != sasTag || string(line2[16:24]) != saslibTag {
		return meta, errs.ErrInvalidHeader
	}
	version := strings.TrimSpace(string(line2[24:32]))
	major, minor, err := parseVersion(version)
	if err != nil {
		return meta, err
	}
	meta.VersionMajor = major
	meta.VersionMinor = minor
	meta.OS = strings.TrimRight(string(line2[32:40]), " ")
	// line2[40:64] reserved
	created, err := parseDate(line2[64:80])
	if err != nil {
		return meta, err
	}
	meta.Created = created

	line3 := make([]byte, RecordSize)
	if _, err := io.ReadFull(r, line3); err != nil {
		return meta, errs.ErrInvalidHeader
	}
	modified, err := parseDate(line3[0:16])
	if err != nil {
		return meta, err
	}
	meta.Modified = modified
	// line3[16:80] reserved

	return meta, nil
}

// parseVersion splits a dotted version string like "5.0" into its major and
// minor components.
func parseVersion(s string) (major, minor int, err error) {
	parts := strings.SplitN(s, ".", 2)
	major, err = atoiStrict(parts[0])
	if err != nil {
		return 0, 0, errs.ErrInvalidHeader
	}
	if len(parts) == 2 {
		minor, err = atoiStrict(parts[1])
		if err != nil {
			return 0, 0, errs.ErrInvalidHeader
		}
	}
	return major, minor, nil
}

func atoiStrict(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, errs.ErrInvalidHeader
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errs.ErrInvalidHeader
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
