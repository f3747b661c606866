package clicommand

import "github.com/urfave/cli"

var ADFDocCommands = []cli.Command{
	RenderCommand,
	ValidateCommand,
}
