package wireline

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/wireline-web/wireline/config"
	httpserver "github.com/wireline-web/wireline/internal/server/http"
	"github.com/wireline-web/wireline/internal/server/tcp"
	"github.com/wireline-web/wireline/router"
)

// App ties the listener, the connection dispatcher and the router together.
// The listening address is the only mandatory parameter.
type App struct {
	addr    string
	cfg     *config.Config
	onStart func()

	mu  sync.Mutex
	srv *tcp.Server
}

// New returns a new App serving on the given address.
func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
	}
}

// Tune replaces the default config. Zero fields are filled with defaults.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// NotifyOnStart calls the callback once the listener is bound and about to
// accept connections.
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Serve binds the address and runs the accept loop until Stop or
// GracefulShutdown. Failing to bind is the only error fatal to the app;
// everything that happens on individual connections is contained there.
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("wireline: failed to bind %s: %w", a.addr, err)
	}

	server := httpserver.NewServer(a.cfg, r)

	a.mu.Lock()
	a.srv = tcp.NewServer(sock, server.Serve)
	a.mu.Unlock()

	if a.onStart != nil {
		a.onStart()
	}

	log.Printf("wireline: listening on %s", a.addr)

	return a.tcpServer().Start()
}

// Stop closes the listener and all the active connections.
func (a *App) Stop() error {
	if srv := a.tcpServer(); srv != nil {
		return srv.Stop()
	}

	return nil
}

// GracefulShutdown closes the listener, letting in-flight connections run to
// completion.
func (a *App) GracefulShutdown() error {
	if srv := a.tcpServer(); srv != nil {
		return srv.GracefulShutdown()
	}

	return nil
}

func (a *App) tcpServer() *tcp.Server {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.srv
}
