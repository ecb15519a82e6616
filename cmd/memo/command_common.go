package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"memo/internal/client"
	"memo/internal/config"
	"memo/internal/logging"
)

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if len(revision) > 12 {
				revision = revision[:12]
			}
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func newAPIClient(cfg config.Config, stderr io.Writer) *client.Client {
	log := logging.New(stderr, logging.ParseLevel(cfg.LogLevel()))
	return client.New(cfg, log)
}

type VersionCommand struct {
	stdout  io.Writer
	version string
}

func NewVersionCommand(stdout io.Writer, version string) *VersionCommand {
	return &VersionCommand{stdout: stdout, version: version}
}

func (c *VersionCommand) Run(args []string) error {
	fmt.Fprintf(c.stdout, "memo %s\n", c.version)
	return nil
}
