// Package mcp exposes the LYRA catalog and code explainer as MCP tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/nav"
	"github.com/lyra-docs/lyra/internal/site"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server over the catalog.
type Server struct {
	catalog   *content.Catalog
	explainer *explainer.Explainer
	index     []site.SearchEntry
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server. A nil explainer leaves the
// explain_code tool unregistered.
func NewServer(catalog *content.Catalog, exp *explainer.Explainer) *Server {
	s := &Server{
		catalog:   catalog,
		explainer: exp,
		index:     site.BuildSearchIndex(catalog.Sections(), nav.Href),
	}

	s.mcp = server.NewMCPServer(
		"lyra",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
	s.mcp.AddTool(searchSectionsTool, s.handleSearchSections)
	s.mcp.AddTool(getCodeBlockTool, s.handleGetCodeBlock)
	if s.explainer != nil {
		s.mcp.AddTool(explainCodeTool, s.handleExplainCode)
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
