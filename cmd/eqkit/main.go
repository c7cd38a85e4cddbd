package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/yamixs/eq-toolkit/catalog"
	"github.com/yamixs/eq-toolkit/rename"
	"github.com/yamixs/eq-toolkit/version"
)

type VersionCmd struct{}

func (VersionCmd) Run() error {
	fmt.Println(version.FromBuildInfo())

	return nil
}

func main() {
	var cli struct {
		Rename      rename.Cmd             `cmd:"" name:"rename" help:"Append the .png extension to extensionless entries in a sprite directory."`
		BuildTitles catalog.BuildTitlesCmd `cmd:"" name:"build-titles" help:"Build the equipment title list from the wiki slot categories."`
		BuildItems  catalog.BuildItemsCmd  `cmd:"" name:"build-items" help:"Process one batch of titles and update the equipment catalog."`
		Version     VersionCmd             `cmd:"" name:"version" help:"Show version information."`
	}

	ctx := kong.Parse(
		&cli,
		kong.Name("eqkit"),
		kong.Description("Equipment catalog toolkit."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
