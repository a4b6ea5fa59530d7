// Package mcpserver exposes the organizer's read and pin operations as MCP
// tools over SSE/HTTP, so an assistant can inspect and adjust a scenery
// order without shelling out to the CLI.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/startuz/xoxide/internal/organizer"
)

// Version is the MCP server version, matching the xoxide module.
const Version = "0.1.0"

// Server serves organizer tools over SSE/HTTP.
type Server struct {
	org  *organizer.Organizer
	mcp  *mcp.Server
	port int
	srv  *http.Server
	ln   net.Listener
}

// NewServer creates an MCP server wrapping the given organizer.
func NewServer(org *organizer.Organizer, port int) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "xoxide",
			Version: Version,
		},
		nil,
	)

	s := &Server{org: org, mcp: mcpServer, port: port}
	s.registerTools()
	return s
}

// Start begins serving on the configured port. It returns once the listener
// is accepting connections.
func (s *Server) Start(ctx context.Context) error {
	handler := mcp.NewSSEHandler(func(_ *http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("mcpserver: listen on port %d: %w", s.port, err)
	}
	s.ln = ln
	s.srv = &http.Server{Handler: handler}

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "mcpserver: serve error: %v\n", err)
		}
	}()
	return nil
}

// Addr returns the listener address, useful for tests with port 0.
func (s *Server) Addr() net.Addr {
	if s.ln != nil {
		return s.ln.Addr()
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
