package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/protsim/core"
)

var statsCell = lipgloss.NewStyle().PaddingRight(2)

func newStatsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats GRAPH.gml...",
		Short: "Print vertex, edge and component counts of GML graphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.HiddenBorder()).
				BorderTop(false).
				BorderBottom(false).
				BorderLeft(false).
				BorderRight(false).
				BorderHeader(false).
				BorderColumn(false).
				StyleFunc(func(_, _ int) lipgloss.Style { return statsCell }).
				Headers("FILE", "NAME", "VERTICES", "EDGES", "COMPONENTS", "MAX DEGREE")
			for _, path := range args {
				g, err := loadGraph(path)
				if err != nil {
					return runtimeError(err)
				}
				st := g.Stats()
				t.Row(path, st.Name,
					strconv.Itoa(st.VertexCount),
					strconv.Itoa(st.EdgeCount),
					strconv.Itoa(len(core.Components(g))),
					strconv.Itoa(st.MaxDegree))
			}
			if _, err := fmt.Fprintln(root.stdout, t.Render()); err != nil {
				return runtimeError(err)
			}

			return nil
		},
	}
}
