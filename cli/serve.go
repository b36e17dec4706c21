package cli

import (
	"github.com/go-barry/exercises"
	"github.com/urfave/cli/v2"
)

var MadlibsCommand = &cli.Command{
	Name:  "madlibs",
	Usage: "Serve the Madlibs form and story pages",
	Flags: append(configFlags(), storyFlags()...),
	Action: func(c *cli.Context) error {
		return serve(c, exercises.AppMadlibs)
	},
}

var CalcCommand = &cli.Command{
	Name:  "calc",
	Usage: "Serve the calculator and greeting routes",
	Flags: configFlags(),
	Action: func(c *cli.Context) error {
		return serve(c, exercises.AppCalc)
	},
}

func serve(c *cli.Context, app exercises.App) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return exercises.Start(exercises.RuntimeConfig{App: app, Config: cfg})
}
