package main

import (
	"context"
	"flag"
	"io"

	"memo/internal/config"
	"memo/internal/notes"
)

type LSCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
}

func NewLSCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error)) *LSCommand {
	return &LSCommand{stdout: stdout, stderr: stderr, loadConfig: loadConfig}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	filter := fs.String("filter", "", "substring filter on title or content")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	api := newAPIClient(cfg, c.stderr)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout())
	defer cancel()
	records, err := api.ListNotes(ctx)
	if err != nil {
		return err
	}

	store := notes.NewStore()
	store.Load(records, false)
	store.SetQuery(*filter)
	printNotes(c.stdout, store.Visible())
	return nil
}
