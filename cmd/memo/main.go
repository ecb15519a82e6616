package main

import (
	"fmt"
	"os"
)

const usageText = `memo is a terminal client for a remote notes service.

Usage:
  memo <command> [flags]

Commands:
  ui       run the terminal UI (default)
  ls       list notes
  add      create a note
  rm       delete a note
  version  print version
  help     show help

Flags:
  -h, --help   show help

Environment:
  MEMO_API_URL    base URL of the notes service (primary)
  NOTES_API_URL   base URL of the notes service (fallback)

Examples:
  memo ls --filter milk
  memo add "shopping" "milk, eggs"
  memo rm note_42
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("ui", commands["ui"].Run(nil), wiring.stderr)
		return
	}
	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
