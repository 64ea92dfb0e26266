package result

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Record is one correspondence: the original vertex IDs of a common
// substructure in graph A and in graph B.
type Record struct {
	A []int `json:"first"`
	B []int `json:"second"`
}

// Size returns the larger side's vertex count.
func (r Record) Size() int { return max(len(r.A), len(r.B)) }

// Canonical returns a copy of r with both sides sorted ascending.
func (r Record) Canonical() Record {
	c := Record{A: slices.Clone(r.A), B: slices.Clone(r.B)}
	slices.Sort(c.A)
	slices.Sort(c.B)

	return c
}

// Key is the canonical signature of r, e.g. "3,7|2,9". Two records are
// duplicates iff their keys are equal.
func (r Record) Key() string {
	c := r.Canonical()
	var sb strings.Builder
	joinInts(&sb, c.A)
	sb.WriteByte('|')
	joinInts(&sb, c.B)

	return sb.String()
}

// Fingerprint is a 64-bit hash of Key, stable across runs and platforms.
func (r Record) Fingerprint() uint64 { return xxhash.Sum64String(r.Key()) }

// Equal reports whether r and o are the same record up to ordering.
func (r Record) Equal(o Record) bool { return r.Key() == o.Key() }

func joinInts(sb *strings.Builder, ids []int) {
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
}
