package commands

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/maksimkurb/keen-menu/src/internal/components"
	"github.com/maksimkurb/keen-menu/src/internal/config"
	"github.com/maksimkurb/keen-menu/src/internal/log"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

func CreateServiceCommand() *ServiceCommand {
	sc := &ServiceCommand{
		fs: flag.NewFlagSet("service", flag.ExitOnError),
	}

	sc.fs.StringVar(&sc.ListenAddr, "listen", "", "Override general.listen_addr (e.g. 127.0.0.1:3000)")

	return sc
}

type ServiceCommand struct {
	fs         *flag.FlagSet
	cfg        *config.Config
	ctx        *AppContext
	ListenAddr string

	store      *menu.Store
	components []components.Component
}

func (s *ServiceCommand) Name() string {
	return s.fs.Name()
}

func (s *ServiceCommand) Init(args []string, ctx *AppContext) error {
	s.ctx = ctx

	if err := s.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath, func(cfg *config.Config) {
		if s.ListenAddr != "" {
			cfg.General.ListenAddr = s.ListenAddr
		}
	})
	if err != nil {
		return err
	}
	s.cfg = cfg

	if err := applyLogLevel(cfg, ctx); err != nil {
		return err
	}

	s.store = menu.NewStore(cfg.SeedItems(), cfg.General.GetIDStrategy())
	s.components = []components.Component{
		components.NewAPIServer(cfg.General, s.store),
	}

	return nil
}

func (s *ServiceCommand) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM, unix.SIGUSR1)
	defer signal.Stop(sigChan)

	return s.run(sigChan)
}

// run starts all components and blocks until SIGINT or SIGTERM arrives.
func (s *ServiceCommand) run(sigChan <-chan os.Signal) error {
	log.Infof("Starting keen-menu service with %d menu items (id strategy: %s, update mode: %s)",
		s.store.Len(), s.store.Strategy(), s.cfg.General.UpdateMode)

	for i, c := range s.components {
		if err := c.Start(); err != nil {
			s.stopComponents(s.components[:i])
			return fmt.Errorf("failed to start %s: %w", c.Name(), err)
		}
	}

	log.Infof("Service started successfully.")
	log.Infof("Send SIGUSR1 to print the current menu")

	for sig := range sigChan {
		switch sig {
		case unix.SIGUSR1:
			s.logMenu()

		case unix.SIGINT, unix.SIGTERM:
			log.Infof("Received signal %v, shutting down...", sig)
			s.stopComponents(s.components)
			log.Infof("Service stopped successfully")
			return nil
		}
	}

	s.stopComponents(s.components)
	return nil
}

// stopComponents stops components in reverse start order.
func (s *ServiceCommand) stopComponents(started []components.Component) {
	for i := len(started) - 1; i >= 0; i-- {
		if err := started[i].Stop(); err != nil {
			log.Errorf("Failed to stop %s: %v", started[i].Name(), err)
		}
	}
}

func (s *ServiceCommand) logMenu() {
	buf, err := s.cfg.WithMenu(s.store.List()).SerializeConfig()
	if err != nil {
		log.Errorf("Failed to serialize menu: %v", err)
		return
	}
	log.Infof("Current menu (%d items):\n%s", s.store.Len(), buf.String())
}
