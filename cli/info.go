package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-barry/exercises/calc"
	"github.com/go-barry/exercises/core"
	"github.com/go-barry/exercises/madlibs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print configuration, story prompts and routes",
	Flags: append(configFlags(), storyFlags()...),
	Action: func(c *cli.Context) error {
		out := c.App.Writer

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		story, err := madlibs.LoadStory(cfg.StoryFile)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "🌐 Address:", cfg.Addr())
		fmt.Fprintln(out, "🔧 Env:", cfg.Env)
		fmt.Fprintln(out, "🔁 Debug Headers Enabled:", cfg.DebugHeaders)
		fmt.Fprintln(out, "🔁 Gzip Enabled:", cfg.Gzip)
		fmt.Fprintln(out, "📈 Metrics Enabled:", cfg.Metrics)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "📝 Story Prompts:", strings.Join(story.Prompts, ", "))
		names := make([]string, 0, len(calc.Operations()))
		for _, op := range calc.Operations() {
			names = append(names, op.String())
		}
		fmt.Fprintln(out, "🧮 Operations:", strings.Join(names, ", "))
		fmt.Fprintln(out)

		madlibsRoutes := core.NewRouter()
		madlibs.NewHandler(story, nil, zap.NewNop()).Routes(madlibsRoutes)
		printRoutes(out, "madlibs", madlibsRoutes)

		calcRoutes := core.NewRouter()
		calc.NewHandler(zap.NewNop(), prometheus.NewRegistry()).Routes(calcRoutes)
		printRoutes(out, "calc", calcRoutes)

		return nil
	},
}

func printRoutes(out io.Writer, app string, r *core.Router) {
	routes := r.Routes()
	fmt.Fprintf(out, "🗂️  %s Routes: %d\n", app, len(routes))
	for _, route := range routes {
		fmt.Fprintln(out, "   ", route)
	}
}
