package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/keen-menu/src/internal/config"
	"github.com/maksimkurb/keen-menu/src/internal/log"
)

func CreateCheckConfigCommand() *CheckConfigCommand {
	return &CheckConfigCommand{
		fs:  flag.NewFlagSet("check-config", flag.ExitOnError),
		out: os.Stdout,
	}
}

// CheckConfigCommand validates the configuration and prints what the service would use.
type CheckConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
	out io.Writer
}

func (c *CheckConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *CheckConfigCommand) Run() error {
	g := c.cfg.General

	source := c.cfg.GetConfigPath()
	if source == "" {
		source = "built-in defaults"
	}

	menuSource := "built-in"
	if len(c.cfg.MenuItems) > 0 {
		menuSource = "configured"
	}

	fmt.Fprintf(c.out, "Configuration:      %s\n", source)
	fmt.Fprintf(c.out, "Listen address:     %s\n", g.ListenAddr)
	fmt.Fprintf(c.out, "Log level:          %s\n", g.LogLevel)
	fmt.Fprintf(c.out, "Request log format: %s\n", g.RequestLogFormat)
	fmt.Fprintf(c.out, "ID strategy:        %s\n", g.IDStrategy)
	fmt.Fprintf(c.out, "Update mode:        %s\n", g.UpdateMode)
	fmt.Fprintf(c.out, "Metrics enabled:    %t\n", g.IsMetricsEnabled())
	fmt.Fprintf(c.out, "CORS enabled:       %t\n", g.CORSEnabled)
	fmt.Fprintf(c.out, "Menu items:         %d (%s)\n", len(c.cfg.SeedItems()), menuSource)

	log.Infof("Configuration is valid")
	return nil
}
