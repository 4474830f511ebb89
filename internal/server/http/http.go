package http

import (
	"log"
	"net"

	"github.com/wireline-web/wireline/config"
	"github.com/wireline-web/wireline/http"
	"github.com/wireline-web/wireline/internal/protocol/http1"
	"github.com/wireline-web/wireline/router"
)

// Server is the per-connection unit of work. Within one connection the order
// is strict: read the full request, resolve its framing, hand it to the
// router, write the full response back. Between connections there are no
// ordering promises at all.
type Server struct {
	cfg    *config.Config
	router router.Router
}

func NewServer(cfg *config.Config, r router.Router) *Server {
	return &Server{
		cfg:    cfg,
		router: r,
	}
}

// Serve owns the connection exclusively: exactly one request is read and
// exactly one response is written, then the connection is closed. There is
// no keep-alive.
func (s *Server) Serve(conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	var response *http.Response

	request, err := http1.ParseFrom(s.cfg, conn)
	if err != nil {
		log.Printf("wireline: http: %s: malformed request: %v", conn.RemoteAddr(), err)
		response = notNil(s.router.OnError(err))
	} else {
		request.Remote = conn.RemoteAddr()
		response = notNil(s.router.OnRequest(request))
	}

	buff := make([]byte, 0, s.cfg.NET.WriteBufferPrealloc)
	if _, err = conn.Write(http1.Serialize(response.Expose(), buff)); err != nil {
		log.Printf("wireline: http: %s: writing response: %v", conn.RemoteAddr(), err)
	}
}

func notNil(response *http.Response) *http.Response {
	if response != nil {
		return response
	}

	return http.NewResponse()
}
