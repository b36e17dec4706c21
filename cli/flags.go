package cli

import (
	"github.com/go-barry/exercises/core"
	"github.com/urfave/cli/v2"
)

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   core.DefaultConfigFile,
			Usage:   "path to the YAML config file",
		},
		&cli.StringFlag{Name: "env", Usage: "dev or prod"},
		&cli.StringFlag{Name: "host", Usage: "address to bind"},
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "port to bind"},
		&cli.BoolFlag{Name: "debug", Usage: "debug logging and debug headers"},
	}
}

func storyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "story", Usage: "YAML story file (prompts + template)"},
		&cli.StringFlag{Name: "templates", Usage: "directory with index.html and story.html overrides"},
	}
}

// loadConfig reads --config and applies any flags the user set on top.
func loadConfig(c *cli.Context) (core.Config, error) {
	cfg, err := core.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("env") {
		cfg.Env = c.String("env")
		if cfg.Env != "dev" && cfg.Env != "prod" {
			return cfg, cli.Exit("--env must be dev or prod", 2)
		}
	}
	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
		cfg.DebugHeaders = cfg.DebugHeaders || cfg.Debug
	}
	if c.IsSet("story") {
		cfg.StoryFile = c.String("story")
	}
	if c.IsSet("templates") {
		cfg.TemplateDir = c.String("templates")
	}
	return cfg, nil
}
