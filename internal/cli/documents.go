package cli

import (
	"context"
	"flag"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/subcommands"

	"github.com/mmynk/devarc/pkg/api"
)

type contractCmd struct {
	project string
}

func (*contractCmd) Name() string     { return "contract" }
func (*contractCmd) Synopsis() string { return "render the service contract of a project" }
func (*contractCmd) Usage() string {
	return `devarc contract -p <project>

  Fills the contract template saved in the company settings (or the default one)
  with the project, its client and today's date.
`
}

func (c *contractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Project id")
}

func (c *contractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlag("p", c.project); err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		resp, err := s.documents.RenderContract(s.ctx, connect.NewRequest(&api.RenderContractRequest{ProjectID: c.project}))
		if err != nil {
			return err
		}
		printMarkdown(resp.Msg.Text)
		return nil
	})
}

type messageCmd struct {
	project string
	kind    string
}

func (*messageCmd) Name() string     { return "message" }
func (*messageCmd) Synopsis() string { return "compose a billing message and its WhatsApp link" }
func (*messageCmd) Usage() string {
	return `devarc message -p <project> [-k invoice|reminder|overdue]

  Prints the message text followed by the wa.me link that sends it to the client.
`
}

func (c *messageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "p", "", "Project id")
	f.StringVar(&c.kind, "k", "invoice", "Message kind: invoice, reminder or overdue")
}

func (c *messageCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlag("p", c.project); err != nil {
		fmt.Fprintln(f.Output(), err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		resp, err := s.documents.ComposeBillingMessage(s.ctx, connect.NewRequest(&api.ComposeBillingMessageRequest{
			ProjectID: c.project,
			Kind:      c.kind,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n\n%s\n", resp.Msg.Message.Text, resp.Msg.Message.Link)
		return nil
	})
}
