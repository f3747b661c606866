package main

import (
	"fmt"
	"os"

	"github.com/adf-tools/adfdoc/clicommand"
	"github.com/adf-tools/adfdoc/version"
	"github.com/urfave/cli"
)

const appHelpTemplate = `Usage:

  {{.Name}} <command> [options...]

Available commands are:

  {{range .Commands}}{{.Name}}{{ "\t" }}{{.Usage}}
  {{end}}
Use "{{.Name}} <command> --help" for more information about a command.

`

func main() {
	cli.AppHelpTemplate = appHelpTemplate

	app := cli.NewApp()
	app.Name = "adfdoc"
	app.Version = version.FullVersion()
	app.Usage = "Generate Markdown documentation from Azure Data Factory pipeline exports"
	app.Commands = clicommand.ADFDocCommands

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
