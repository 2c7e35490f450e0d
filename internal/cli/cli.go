// Package cli implements the devarc command line tool. Commands open the database directly
// and call the same services the server exposes, so a command racing the server on one
// ledger fails with a conflict instead of corrupting it.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"connectrpc.com/connect"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mmynk/devarc/internal/auth"
	"github.com/mmynk/devarc/internal/config"
	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/feed"
	"github.com/mmynk/devarc/internal/middleware"
	"github.com/mmynk/devarc/internal/service"
	"github.com/mmynk/devarc/internal/storage/sqlite"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&statsCmd{}, "reports")
	c.Register(&boardCmd{}, "reports")
	c.Register(&contractCmd{}, "documents")
	c.Register(&messageCmd{}, "documents")
	c.Register(&addPaymentCmd{}, "ledger")
	c.Register(&removePaymentCmd{}, "ledger")
	c.Register(&reconcileCmd{}, "ledger")
	c.Register(&moveCmd{}, "projects")
}

var (
	dbPath    = flag.String("db", "", "Path to the SQLite database (defaults to DB_PATH or ./data/devarc.db)")
	userEmail = flag.String("user", os.Getenv("DEVARC_USER"), "E-mail of the account to act as (defaults to DEVARC_USER)")
	pretty    = flag.Bool("pretty", false, "Render markdown output for the terminal")
)

// out is where commands print; tests swap it.
var out io.Writer = os.Stdout

// session is an open database acting on behalf of one user.
type session struct {
	ctx   context.Context
	store *sqlite.SQLiteStore
	today date.Date // in the configured TIMEZONE

	projects  *service.ProjectService
	ledger    *service.LedgerService
	documents *service.DocumentService
	stats     *service.StatsService
}

func open(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	path := cfg.DBPath
	if *dbPath != "" {
		path = *dbPath
	}
	if *userEmail == "" {
		return nil, errors.New("no user: pass -user or set DEVARC_USER")
	}

	store, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}
	user, err := store.GetUserByEmail(ctx, auth.NormalizeEmail(*userEmail))
	if err != nil {
		store.Close()
		return nil, err
	}
	if user == nil {
		store.Close()
		return nil, fmt.Errorf("no account for %s in %s", *userEmail, path)
	}

	backend := service.NewBackend(store, feed.NewHub(), nil, cfg.Location)
	return &session{
		ctx:       middleware.WithUser(ctx, user.ID, user.Email),
		store:     store,
		today:     date.Today(cfg.Location),
		projects:  service.NewProjectService(backend),
		ledger:    service.NewLedgerService(backend),
		documents: service.NewDocumentService(backend),
		stats:     service.NewStatsService(backend),
	}, nil
}

func (s *session) Close() error { return s.store.Close() }

// run opens a session, runs fn and maps the outcome to an exit status.
func run(ctx context.Context, fn func(*session) error) subcommands.ExitStatus {
	s, err := open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := fn(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", describe(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func describe(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		if connectErr.Code() == connect.CodeAborted {
			return connectErr.Message() + " (the ledger was changed by someone else, run the command again)"
		}
		return connectErr.Message()
	}
	return err.Error()
}

// printMarkdown writes md, rendered for the terminal when -pretty is set.
func printMarkdown(md string) {
	if *pretty {
		rendered, err := glamour.Render(md, "dark")
		if err == nil {
			md = rendered
		}
	}
	fmt.Fprint(out, md)
}

// requireFlag reports a missing mandatory flag.
func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("-%s is required", name)
	}
	return nil
}
