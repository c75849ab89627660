package header

import (
	"strings"
	"time"

	"github.com/go-xpt/xpt/errs"
)

// dateLayout matches XPT's fixed date encoding, e.g. "16FEB11:10:07:55".
const dateLayout = "02Jan06:15:04:05"

// parseDate decodes a 16-byte XPT date field. XPT months are always
// uppercase three-letter English abbreviations; time.Parse expects
// title case, so the month is normalized before parsing.
func parseDate(raw []byte) (time.Time, error) {
	text := strings.TrimRight(string(raw), " ")
	if len(text) < 9 {
		return time.Time{}, errs.ErrInvalidDate
	}

	// Normalize "16FEB11" -> "16Feb11" so time.Parse's month token matches.
	normalized := []byte(text)
	if len(normalized) >= 5 {
		normalized[3] = normalized[3] - 'A' + 'a'
		normalized[4] = normalized[4] - 'A' + 'a'
	}

	t, err := time.Parse(dateLayout, string(normalized))
	if err != nil {
		return time.Time{}, errs.ErrInvalidDate
	}
	return t, nil
}
