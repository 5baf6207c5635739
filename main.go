package main

import (
	"fmt"

	"os"

	"github.com/deanrtaylor1/govsm/cli"
	"github.com/deanrtaylor1/govsm/corpus"
	"github.com/deanrtaylor1/govsm/util"
)

func help() {
	fmt.Println("GoVSM - A vector space model text similarity engine written in Go")
	fmt.Println("Version: 0.1")
	fmt.Println("License: MIT")
	fmt.Println("default start: govsm launches the interactive corpus ranking cli")

	fmt.Println("CLI Usage: PROGRAM [SUBCOMMAND] [OPTIONS]")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    cli:                            start the interactive cli")
	fmt.Println("    help:                            list all commands")

}

func main() {
	args := os.Args[1:]

	if len(args) >= 1 && args[0] == "help" {
		help()
		os.Exit(0)
	}

	if len(args) >= 1 && args[0] != "cli" {
		help()
		os.Exit(1)
	}

	fmt.Println(util.TerminalCyan + "Initializing interactive cli with empty model" + util.TerminalReset)
	model := corpus.NewEmptyModel()
	cli.ConfigureModel(model)
	cli.InitialPrompt(model)
}
