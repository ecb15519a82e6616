package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"memo/internal/config"
	"memo/internal/notes"
)

type AddCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
}

func NewAddCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error)) *AddCommand {
	return &AddCommand{stdout: stdout, stderr: stderr, loadConfig: loadConfig}
}

func (c *AddCommand) Run(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	title := strings.TrimSpace(fs.Arg(0))
	if title == "" {
		title = "Untitled"
	}
	content := ""
	if fs.NArg() > 1 {
		content = strings.Join(fs.Args()[1:], " ")
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	api := newAPIClient(cfg, c.stderr)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout())
	defer cancel()
	record, err := api.CreateNote(ctx, title, content)
	if err != nil {
		return err
	}

	created := notes.Normalize(record)
	if created.ID == "" {
		fmt.Fprintln(c.stdout, "created")
		return nil
	}
	fmt.Fprintf(c.stdout, "created %s\n", created.ID)
	return nil
}
