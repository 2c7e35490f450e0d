package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/subcommands"

	"github.com/mmynk/devarc/internal/lifecycle"
	"github.com/mmynk/devarc/internal/render"
	"github.com/mmynk/devarc/pkg/api"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the dashboard counters and upcoming due dates" }
func (*statsCmd) Usage() string {
	return `devarc stats

  Displays active projects, pending tasks, recurring revenue and money received,
  followed by the next due dates and the expense overview.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (*statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		st, err := s.stats.GetStats(s.ctx, connect.NewRequest(&api.GetStatsRequest{}))
		if err != nil {
			return err
		}
		fin, err := s.stats.GetFinancials(s.ctx, connect.NewRequest(&api.GetFinancialsRequest{}))
		if err != nil {
			return err
		}
		printMarkdown(statsMarkdown(st.Msg, fin.Msg))
		return nil
	})
}

func statsMarkdown(st *api.GetStatsResponse, fin *api.GetFinancialsResponse) string {
	var b strings.Builder
	b.WriteString("# Dashboard\n\n")
	b.WriteString("| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Projetos ativos | %d |\n", st.Stats.ActiveProjectCount)
	fmt.Fprintf(&b, "| Tarefas pendentes | %d |\n", st.Stats.PendingTaskCount)
	fmt.Fprintf(&b, "| Receita recorrente | %s |\n", render.Currency(st.Stats.MonthlyRecurringRevenue))
	fmt.Fprintf(&b, "| Total recebido | %s |\n", render.Currency(st.Stats.TotalReceived))

	if len(st.UpcomingDue) > 0 {
		b.WriteString("\n## Próximos vencimentos\n\n")
		for _, p := range st.UpcomingDue {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", render.Date(p.DueDate), p.Name, p.ClientName)
		}
	}

	if fin != nil {
		f := fin.Financials
		b.WriteString("\n## Financeiro\n\n")
		b.WriteString("| | |\n|---|---:|\n")
		fmt.Fprintf(&b, "| Receita contratada | %s |\n", render.Currency(f.Revenue))
		fmt.Fprintf(&b, "| Despesas | %s |\n", render.Currency(f.Expenses))
		fmt.Fprintf(&b, "| Lucro | %s |\n", render.Currency(f.Profit))
		for _, c := range f.ByCategory {
			if !c.Total.IsZero() {
				fmt.Fprintf(&b, "| %s | %s |\n", c.Category, render.Currency(c.Total))
			}
		}
	}
	return b.String()
}

type boardCmd struct{}

func (*boardCmd) Name() string     { return "board" }
func (*boardCmd) Synopsis() string { return "display projects grouped by status" }
func (*boardCmd) Usage() string {
	return `devarc board

  Lists projects in the Pendente, Em Andamento and Concluído columns.
  Late projects are marked with (!).
`
}

func (*boardCmd) SetFlags(f *flag.FlagSet) {}

func (*boardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		resp, err := s.projects.GetBoard(s.ctx, connect.NewRequest(&api.GetBoardRequest{}))
		if err != nil {
			return err
		}
		printMarkdown(boardMarkdown(resp.Msg.Columns))
		return nil
	})
}

func boardMarkdown(columns []lifecycle.BoardColumn) string {
	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s (%d)\n\n", col.Title, len(col.Cards))
		for _, card := range col.Cards {
			late := ""
			if card.Overdue {
				late = " (!)"
			}
			fmt.Fprintf(&b, "- %s%s: %s, %s, %d tarefas pendentes `%s`\n",
				card.Project.Name, late, card.Project.ClientName, render.Currency(card.Project.Value),
				card.PendingTasks, card.Project.ID)
		}
	}
	return b.String()
}
