package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"memo/internal/client"
	"memo/internal/config"
)

type RMCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
}

func NewRMCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error)) *RMCommand {
	return &RMCommand{stdout: stdout, stderr: stderr, loadConfig: loadConfig}
}

func (c *RMCommand) Run(args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id := strings.TrimSpace(fs.Arg(0))
	if id == "" {
		return errors.New("usage: memo rm <id>")
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	api := newAPIClient(cfg, c.stderr)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout())
	defer cancel()
	if err := api.DeleteNote(ctx, id); err != nil {
		if apiErr := client.AsAPIError(err); apiErr != nil && apiErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("note not found: %s", id)
		}
		return err
	}
	fmt.Fprintf(c.stdout, "deleted %s\n", id)
	return nil
}
