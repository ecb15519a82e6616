package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"memo/internal/app"
	"memo/internal/client"
	"memo/internal/config"
	"memo/internal/logging"
)

type UICommand struct {
	stderr     io.Writer
	loadConfig func() (config.Config, error)
}

func NewUICommand(stderr io.Writer, loadConfig func() (config.Config, error)) *UICommand {
	return &UICommand{stderr: stderr, loadConfig: loadConfig}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	log, closeLog := openUILogger(cfg)
	defer closeLog()

	api := client.New(cfg, log)
	return app.Run(api, cfg, log)
}

// openUILogger writes to the data-dir log file so log lines never bleed into
// the alternate screen. Any setup failure degrades to a no-op logger.
func openUILogger(cfg config.Config) (logging.Logger, func()) {
	path, err := config.LogPath()
	if err != nil {
		return logging.Nop(), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return logging.Nop(), func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.Nop(), func() {}
	}
	return logging.New(file, logging.ParseLevel(cfg.LogLevel())), func() { _ = file.Close() }
}
