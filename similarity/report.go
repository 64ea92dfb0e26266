package similarity

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/protsim/clique"
	"github.com/katalvlaran/protsim/result"
)

// Report is the outcome of one Compare call.
type Report struct {
	RunID uuid.UUID

	// Rule and Policy echo the configuration for logs and output.
	Rule   string
	Policy string

	ProductVertices int
	ProductEdges    int

	// Cliques is the number of maximal cliques enumerated, Selected the
	// number the policy kept.
	Cliques  int
	Selected int

	// Records are the correspondences in output order.
	Records []result.Record

	// Mappings[i] aligns Records[i] vertex by vertex; nil when Config.Align
	// is off or no consistent alignment exists.
	Mappings []result.Mapping

	// Filtered is set when Dedupe ran; Dedupe then holds its counts.
	Filtered bool
	Dedupe   result.DedupeStats

	// Partial is set when the search stopped early for Reason.
	Partial bool
	Reason  clique.StopReason

	Enumeration time.Duration
	Elapsed     time.Duration
}

// Empty reports a complete run that found no common substructure. A partial
// run is never empty: its search was aborted, not exhausted.
func (r *Report) Empty() bool {
	return !r.Partial && len(r.Records) == 0
}

// Largest returns the vertex count of the biggest record.
func (r *Report) Largest() int {
	best := 0
	for _, rec := range r.Records {
		if s := rec.Size(); s > best {
			best = s
		}
	}

	return best
}
