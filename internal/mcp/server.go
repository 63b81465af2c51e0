// Package mcp exposes skill analysis to MCP clients over stdio.
package mcp

import (
	"context"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/careerfit/internal/analysis"
	"github.com/vijay-prabhu/careerfit/internal/logger"
)

// ServerName is reported to clients during initialization.
const ServerName = "careerfit"

// Server wraps an MCP server bound to an analyzer
type Server struct {
	analyzer *analysis.Analyzer
	logger   *zap.Logger
	server   *gomcp.Server
}

// New creates a new MCP server with all tools and resources registered
func New(analyzer *analysis.Analyzer, log *zap.Logger, version string) *Server {
	s := &Server{
		analyzer: analyzer,
		logger:   logger.WithFields(log, zap.String("component", "mcp")),
		server: gomcp.NewServer(&gomcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Start runs the MCP server on stdio until the client disconnects or ctx is done
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("serving on stdio", zap.Int("industry_jobs", s.analyzer.Store().Len()))
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}
