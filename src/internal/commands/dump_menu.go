package commands

import (
	"flag"
	"io"
	"os"

	"github.com/maksimkurb/keen-menu/src/internal/config"
	apperrors "github.com/maksimkurb/keen-menu/src/internal/errors"
)

func CreateDumpMenuCommand() *DumpMenuCommand {
	return &DumpMenuCommand{
		fs:  flag.NewFlagSet("dump-menu", flag.ExitOnError),
		out: os.Stdout,
	}
}

// DumpMenuCommand prints the effective configuration with the seed menu as
// [[menu_item]] tables. The output can be used as a config file.
type DumpMenuCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
	out io.Writer
}

func (d *DumpMenuCommand) Name() string {
	return d.fs.Name()
}

func (d *DumpMenuCommand) Init(args []string, ctx *AppContext) error {
	d.ctx = ctx

	if err := d.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	d.cfg = cfg

	return nil
}

func (d *DumpMenuCommand) Run() error {
	buf, err := d.cfg.WithMenu(d.cfg.SeedItems()).SerializeConfig()
	if err != nil {
		return apperrors.NewInternalError("failed to serialize configuration", err)
	}

	_, err = d.out.Write(buf.Bytes())
	return err
}
