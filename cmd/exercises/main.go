package main

import (
	"log"
	"os"

	excli "github.com/go-barry/exercises/cli"
	"github.com/joho/godotenv"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "exercises",
		Usage: "Madlibs and calculator demo servers",
		Commands: []*clilib.Command{
			excli.MadlibsCommand,
			excli.CalcCommand,
			excli.GenerateCommand,
			excli.CheckCommand,
			excli.InfoCommand,
		},
	}
	return app.Run(args)
}

func main() {
	// a missing .env is fine; EXERCISES_* may come from the real environment
	_ = godotenv.Load()

	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
