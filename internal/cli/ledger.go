package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/subcommands"

	"github.com/mmynk/devarc/internal/lifecycle"
	"github.com/mmynk/devarc/internal/money"
	"github.com/mmynk/devarc/internal/render"
	"github.com/mmynk/devarc/pkg/api"
)

type addPaymentCmd struct {
	project string
	value   string
	date    string
	note    string
}

func (*addPaymentCmd) Name() string     { return "add-payment" }
func (*addPaymentCmd) Synopsis() string { return "record money received for a project" }
func (*addPaymentCmd) Usage() string {
	return `devarc add-payment -p <project> -v <value> [-d <date>] [-n <note>]

  Appends an entry to the project's ledger and updates its total paid.
  The date defaults to today.
`
}

func (c *addPaymentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Project id")
	f.StringVar(&c.value, "v", "", "Amount received, e.g. 1500.50")
	f.StringVar(&c.date, "d", "", "Date received (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.note, "n", "", "Optional note")
}

func (c *addPaymentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlag("p", c.project); err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitUsageError
	}
	value, err := money.Parse(c.value)
	if err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		on := c.date
		if on == "" {
			on = s.today.String()
		}
		resp, err := s.ledger.AddPayment(s.ctx, connect.NewRequest(&api.AddPaymentRequest{
			ProjectID: c.project,
			Value:     value,
			Date:      on,
			Note:      c.note,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded %s on %s (%s). Total paid: %s (%.0f%%)\n",
			render.Currency(resp.Msg.Payment.Value), render.Date(resp.Msg.Payment.Date), resp.Msg.Payment.ID,
			render.Currency(resp.Msg.TotalPaid), resp.Msg.ProgressPercent)
		return nil
	})
}

type removePaymentCmd struct {
	project string
	payment string
}

func (*removePaymentCmd) Name() string     { return "remove-payment" }
func (*removePaymentCmd) Synopsis() string { return "delete a ledger entry" }
func (*removePaymentCmd) Usage() string {
	return `devarc remove-payment -p <project> -id <payment>

  Deletes the entry and recomputes the project's total paid from what is left.
`
}

func (c *removePaymentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Project id")
	f.StringVar(&c.payment, "id", "", "Payment id")
}

func (c *removePaymentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for name, v := range map[string]string{"p": c.project, "id": c.payment} {
		if err := requireFlag(name, v); err != nil {
			fmt.Fprintln(f.Output(), err)
			return subcommands.ExitUsageError
		}
	}
	return run(ctx, func(s *session) error {
		resp, err := s.ledger.RemovePayment(s.ctx, connect.NewRequest(&api.RemovePaymentRequest{
			ProjectID: c.project,
			PaymentID: c.payment,
		}))
		if err != nil {
			return err
		}
		printMarkdown(ledgerMarkdown(resp.Msg))
		return nil
	})
}

func ledgerMarkdown(l *api.LedgerResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total paid: %s (%.0f%%)\n\n", render.Currency(l.TotalPaid), l.ProgressPercent)
	if len(l.Payments) == 0 {
		b.WriteString("No payments.\n")
		return b.String()
	}
	b.WriteString("| Data | Valor | Nota | ID |\n|---|---:|---|---|\n")
	for _, p := range l.Payments {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", render.Date(p.Date), render.Currency(p.Value), p.Note, p.ID)
	}
	return b.String()
}

type reconcileCmd struct {
	project string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "repair cached totals that disagree with their ledger" }
func (*reconcileCmd) Usage() string {
	return `devarc reconcile [-p <project>]

  Recomputes total paid from the ledger for one project, or for every project
  when -p is omitted, and reports the ones that had to be fixed.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Project id (all projects when empty)")
}

func (c *reconcileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		ids := []string{c.project}
		if c.project == "" {
			resp, err := s.projects.ListProjects(s.ctx, connect.NewRequest(&api.ListProjectsRequest{}))
			if err != nil {
				return err
			}
			ids = ids[:0]
			for _, p := range resp.Msg.Projects {
				ids = append(ids, p.ID)
			}
		}

		repaired := 0
		for _, id := range ids {
			resp, err := s.ledger.ReconcileProject(s.ctx, connect.NewRequest(&api.ReconcileProjectRequest{ProjectID: id}))
			if err != nil {
				return err
			}
			if resp.Msg.Repaired {
				repaired++
				fmt.Fprintf(out, "%s: total paid set to %s\n", id, render.Currency(resp.Msg.TotalPaid))
			}
		}
		fmt.Fprintf(out, "%d of %d projects repaired\n", repaired, len(ids))
		return nil
	})
}

type moveCmd struct {
	project string
	to      string
}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "move a project to another board column" }
func (*moveCmd) Usage() string {
	return `devarc move -p <project> -to <status>

  Moves the project card to the Pending, Active or Completed column, like a drag
  on the board. Moving to the column the card is already in changes nothing.
`
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Project id")
	f.StringVar(&c.to, "to", "", "Destination status")
}

func (c *moveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for name, v := range map[string]string{"p": c.project, "to": c.to} {
		if err := requireFlag(name, v); err != nil {
			fmt.Fprintln(f.Output(), err)
			return subcommands.ExitUsageError
		}
	}
	return run(ctx, func(s *session) error {
		current, err := s.projects.GetProject(s.ctx, connect.NewRequest(&api.GetProjectRequest{ID: c.project}))
		if err != nil {
			return err
		}
		from := string(lifecycle.Column(current.Msg.Project.Status))
		resp, err := s.projects.MoveCard(s.ctx, connect.NewRequest(&api.MoveCardRequest{
			ID: c.project,
			Drag: lifecycle.Drag{
				Source:      lifecycle.Position{Column: from},
				Destination: &lifecycle.Position{Column: c.to},
			},
		}))
		if err != nil {
			return err
		}
		if !resp.Msg.Changed {
			fmt.Fprintf(out, "%s is already in %s\n", resp.Msg.Project.Name, from)
			return nil
		}
		fmt.Fprintf(out, "%s: %s -> %s\n", resp.Msg.Project.Name, from, resp.Msg.Project.Status)
		return nil
	})
}
