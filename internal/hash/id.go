// Package hash provides the field-name hashing used to build O(1) name
// lookups over an XPT dataset's variable list.
package hash

import "github.com/cespare/xxhash/v2"

// FieldID computes the xxHash64 of a variable name, used by the header
// package's collision tracking and as the key for xpt.Reader's field index
// and xptmat's column lookup map.
func FieldID(name string) uint64 {
	return xxhash.Sum64String(name)
}
