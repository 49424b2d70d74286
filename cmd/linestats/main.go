package main

import (
	gocontext "context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" env:"LINESTATS_WORKSPACE" help:"Sqlite file that caches evaluated commits between runs. Empty disables the cache."`
	Verbose   bool   `short:"v" env:"LINESTATS_VERBOSE" help:"Log skipped files and other details."`
	Progress  bool   `default:"true" negatable:"" help:"Show a progress bar while evaluating commits."`

	Collect CollectCmd `cmd:"" help:"Collect statistics of a repository and write them to a spreadsheet."`
	Show    ShowCmd    `cmd:"" help:"Collect statistics of a repository and print them as a table."`
}

type context struct {
	ctx      gocontext.Context
	ws       *workspace.Workspace
	progress bool
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("linestats"),
		kong.Description("Inserted lines per author and day, flagging days below the expected activity."),
		kong.ShortUsageOnError(),
		kong.Configuration(kong.JSON, ".linestats.json", "~/.linestats.json"),
	)

	ws, err := workspace.NewWorkspace(consoles.NewStdOutConsole(cli.Verbose), cli.Workspace)
	ctx.FatalIfErrorf(err)

	signalCtx, stop := signal.NotifyContext(gocontext.Background(), os.Interrupt)

	err = ctx.Run(&context{
		ctx:      signalCtx,
		ws:       ws,
		progress: cli.Progress,
	})

	stop()
	closeErr := ws.Close()

	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(closeErr)
}
