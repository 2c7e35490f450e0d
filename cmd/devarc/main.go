// Command devarc inspects and edits a DevArc database from the terminal.
package main

import (
	"cmp"
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mmynk/devarc/internal/cli"
	"github.com/mmynk/devarc/pkg/logging"
)

func main() {
	// Service logs are noise on a terminal unless asked for.
	logging.Configure(cmp.Or(os.Getenv("LOG_LEVEL"), "warn"), os.Getenv("LOG_FORMAT"))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
