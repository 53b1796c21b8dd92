package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/yuppyjoe/Finance-tracker/cmd"
)

func main() {
	cmd.Complete()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// An unknown verb may be an ft-<verb> extension living in the PATH.
	if sub := flag.Arg(0); sub != "" && !cmd.Known(sub) {
		if ran, code := cmd.RunExtension(sub, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
