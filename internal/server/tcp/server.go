package tcp

import (
	"errors"
	"log"
	"net"
	"sync"
	"sync/atomic"

	"github.com/wireline-web/wireline/http/status"
)

type onConnection func(net.Conn)

// Server runs the accept loop, dispatching every accepted connection onto
// its own goroutine. The loop itself is sequential: connections are accepted
// one at a time and never interact with each other.
type Server struct {
	sock     net.Listener
	onConn   onConnection
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, onConn onConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

// Start accepts connections until the listener is closed. Transient accept
// failures are logged and don't bring the listener down; only closing the
// listener via Stop or GracefulShutdown ends the loop, after all dispatched
// connections have finished.
func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				wg.Wait()

				if s.shutdown.Load() {
					return status.ErrShutdown
				}

				return err
			}

			log.Printf("wireline: tcp: accept: %v", err)
			continue
		}

		s.track(conn)
		wg.Add(1)
		go s.connHandler(wg, conn)
	}
}

func (s *Server) stopListener() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}

// Stop shuts the listener and ALL the connections down.
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops the listener, leaving in-flight connections free to
// run to completion.
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	s.onConn(conn)
	s.forget(conn)
	wg.Done()
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) forget(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
