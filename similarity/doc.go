// Package similarity runs the maximum common substructure search between two
// graphs end to end:
//
//	Rule ─▶ productgraph.Build ─▶ clique.Enumerate ─▶ result.Select
//	     ─▶ result.Project ─▶ result.Dedupe (optional) ─▶ Report
//
// Compare takes an immutable Config by value. An invalid rule aborts the run
// before any graph work with an error matching compat.ErrInvalidRule.
// A search cut short by Timeout or MaxCliques is not an error: the Report is
// marked Partial. A complete search without records is an empty Report;
// Report.Empty tells the two apart.
package similarity
