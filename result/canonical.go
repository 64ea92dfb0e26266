package result

// DedupeStats reports how many records Dedupe received and kept.
type DedupeStats struct {
	Before int
	After  int
}

// Removed is the number of dropped duplicates.
func (s DedupeStats) Removed() int { return s.Before - s.After }

// Dedupe canonicalises each record (both sides sorted ascending) and drops
// every record whose canonical form was already seen. The first occurrence
// keeps its position. Dedupe is idempotent.
func Dedupe(records []Record) ([]Record, DedupeStats) {
	keep, stats := DedupeIndices(records)
	out := make([]Record, len(keep))
	for i, k := range keep {
		out[i] = records[k].Canonical()
	}

	return out, stats
}

// DedupeIndices is Dedupe reporting positions: it returns, ascending, the
// indices of the records Dedupe keeps. Callers use it to carry data that
// travels alongside each record.
func DedupeIndices(records []Record) ([]int, DedupeStats) {
	keep := make([]int, 0, len(records))
	seen := make(map[string]struct{}, len(records)) // canonical signatures

	var key string
	for i, r := range records {
		key = r.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	return keep, DedupeStats{Before: len(records), After: len(keep)}
}
