// Package collision tracks xxHash64 collisions among a dataset's field
// names, flagging the (astronomically unlikely) occasion two distinct names
// hash identically. It reports the collision; it does not repair any
// hash-keyed name index.
package collision

import (
	"github.com/go-xpt/xpt/errs"
)

// Tracker records a field name's hash as its namestr record is parsed and
// flags any collision between two distinct names. Unlike a hard error, a
// collision here just means the caller should stop trusting the hash index
// for lookups and fall back to a linear scan over the declared names.
type Tracker struct {
	byHash   map[uint64]string // hash → first name seen with that hash
	names    []string          // declared order
	collided bool
}

// NewTracker creates an empty collision tracker sized for an expected
// variable count.
func NewTracker(expected int) *Tracker {
	return &Tracker{
		byHash: make(map[uint64]string, expected),
		names:  make([]string, 0, expected),
	}
}

// Track records name and its hash. It returns ErrDuplicateFieldName if the
// exact same name was already tracked; a distinct name sharing a hash with
// a previously tracked name sets the collision flag instead of failing.
func (t *Tracker) Track(name string, hash uint64) error {
	if existing, ok := t.byHash[hash]; ok {
		if existing == name {
			return errs.ErrDuplicateFieldName
		}
		t.collided = true
	} else {
		t.byHash[hash] = name
	}

	t.names = append(t.names, name)

	return nil
}

// HasCollision reports whether two distinct field names were ever found to
// share a hash.
func (t *Tracker) HasCollision() bool {
	return t.collided
}

// Names returns the tracked field names in declaration order.
func (t *Tracker) Names() []string {
	return t.names
}
