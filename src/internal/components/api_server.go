package components

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/maksimkurb/keen-menu/src/internal/api"
	"github.com/maksimkurb/keen-menu/src/internal/config"
	"github.com/maksimkurb/keen-menu/src/internal/log"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

const shutdownTimeout = 5 * time.Second

// APIServer manages the HTTP API server
type APIServer struct {
	listenAddr string
	handler    http.Handler

	mu         sync.Mutex
	addr       string
	listener   net.Listener
	httpServer *http.Server
	supervisor *Supervisor
	running    bool
}

// NewAPIServer creates a new API server component serving store.
func NewAPIServer(general *config.GeneralConfig, store *menu.Store) *APIServer {
	return &APIServer{
		listenAddr: general.ListenAddr,
		handler:    api.NewRouter(general, store),
	}
}

// Name returns the component name.
func (a *APIServer) Name() string {
	return "API server"
}

// Start binds the listen address and serves in the background.
// A failed serve loop is restarted on the same address.
func (a *APIServer) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return fmt.Errorf("API server is already running")
	}

	ln, err := net.Listen("tcp", a.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.listenAddr, err)
	}

	a.listener = ln
	a.addr = ln.Addr().String()
	a.httpServer = &http.Server{
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	a.supervisor = NewSupervisor(SupervisorConfig{
		Name:           a.Name(),
		RestartBackoff: 2 * time.Second,
		MaxBackoff:     30 * time.Second,
	}, a.serve)

	if err := a.supervisor.Start(context.Background()); err != nil {
		_ = ln.Close()
		return err
	}

	a.running = true
	log.Infof("API server listening on http://%s", a.addr)
	return nil
}

// serve runs one serve loop. It binds again only while the server is running,
// so a Stop that wins the race with the first run does not reopen the port.
func (a *APIServer) serve(ctx context.Context) error {
	a.mu.Lock()
	if !a.running || ctx.Err() != nil {
		a.mu.Unlock()
		return nil
	}
	ln := a.listener
	a.listener = nil
	addr := a.addr
	srv := a.httpServer
	a.mu.Unlock()

	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", addr); err != nil {
			return err
		}
	}

	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop shuts the server down, waiting for in-flight requests.
func (a *APIServer) Stop() error {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return fmt.Errorf("API server is not running")
	}
	a.running = false
	srv := a.httpServer
	supervisor := a.supervisor
	ln := a.listener
	a.listener = nil
	a.mu.Unlock()

	log.Infof("Stopping API server...")

	if ln != nil {
		_ = ln.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
		_ = srv.Close()
	}

	if err := supervisor.Stop(shutdownTimeout); err != nil {
		return err
	}

	log.Infof("API server stopped")
	return nil
}

// IsRunning returns whether the API server is running
func (a *APIServer) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Addr returns the bound address, useful when listening on port 0.
func (a *APIServer) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addr
}
