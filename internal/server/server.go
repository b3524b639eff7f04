// Package server assembles the MCP server: tools, prompts and UI resources
// backed by the TMDB client.
package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/moviehall/moviehall/internal/config"
	"github.com/moviehall/moviehall/internal/tmdb"
)

// Server wires the TMDB client into an MCP server.
type Server struct {
	mcp    *mcp.Server
	client *tmdb.Client
	logger zerolog.Logger
}

// New creates a Server with all tools, prompts and resources registered.
func New(client *tmdb.Client, logger zerolog.Logger) *Server {
	s := &Server{
		client: client,
		logger: logger.With().Str("component", "server").Logger(),
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "moviehall",
		Title:   "MovieHall",
		Version: config.Version,
	}, nil)

	s.registerTools()
	s.registerPrompts()
	s.registerResources()

	return s
}

// Run serves MCP over the stdio transport until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Msg("Serving MCP over stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns the streamable HTTP handler for mounting on an HTTP
// server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}
