package cli

import (
	"fmt"
	"strings"

	"github.com/go-barry/exercises/madlibs"
	"github.com/urfave/cli/v2"
)

var GenerateCommand = &cli.Command{
	Name:      "generate",
	Usage:     "Print a story filled from prompt=value arguments",
	ArgsUsage: "[prompt=value ...]",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "story", Usage: "YAML story file (prompts + template)"},
	},
	Action: func(c *cli.Context) error {
		story, err := madlibs.LoadStory(c.String("story"))
		if err != nil {
			return err
		}

		supplied := map[string]string{}
		for _, arg := range c.Args().Slice() {
			key, val, ok := strings.Cut(arg, "=")
			if !ok || key == "" {
				return cli.Exit(fmt.Sprintf("expected prompt=value, got %q", arg), 2)
			}
			supplied[key] = val
		}

		answers := story.Answers(func(p string) string { return supplied[p] })
		fmt.Fprintln(c.App.Writer, story.Generate(answers))
		return nil
	},
}
