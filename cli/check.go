package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/go-barry/exercises/core"
	"github.com/go-barry/exercises/madlibs"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the Madlibs templates and story",
	Flags: storyFlags(),
	Action: func(c *cli.Context) error {
		out := c.App.Writer
		var failed bool

		story, err := madlibs.LoadStory(c.String("story"))
		if err != nil {
			fmt.Fprintf(out, "❌ story → %v\n", err)
			return cli.Exit("story failed to load", 1)
		}

		for _, tok := range story.Undeclared() {
			failed = true
			fmt.Fprintf(out, "❌ {%s} → no prompt fills this marker\n", tok)
		}
		for _, p := range story.Unused() {
			fmt.Fprintf(out, "⚠️  %s → prompt never appears in the template\n", p)
		}

		var templates fs.FS = madlibs.Templates()
		if dir := c.String("templates"); dir != "" {
			templates = os.DirFS(dir)
		}

		renderer, err := core.NewRenderer(templates, core.RendererOptions{Env: "dev"})
		if err != nil {
			fmt.Fprintf(out, "❌ templates → parse error: %v\n", err)
			return cli.Exit("some templates failed to compile", 1)
		}

		samples := map[string]any{
			"index.html": map[string]any{"Prompts": story.Prompts},
			"story.html": map[string]any{"Story": story.Template},
		}
		for _, name := range []string{"index.html", "story.html"} {
			if _, err := renderer.Execute(name, samples[name]); err != nil {
				failed = true
				fmt.Fprintf(out, "❌ %s → exec error: %v\n", name, err)
				continue
			}
			fmt.Fprintf(out, "✅ %s\n", name)
		}

		if failed {
			return cli.Exit("some checks failed", 1)
		}

		fmt.Fprintln(out, "✅ Story and templates validated successfully.")
		return nil
	},
}
