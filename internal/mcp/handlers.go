package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/explainer"
	"github.com/lyra-docs/lyra/internal/render"
	"github.com/lyra-docs/lyra/internal/site"
)

func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, sec := range s.catalog.Sections() {
		fmt.Fprintf(&sb, "- %s: %s", sec.ID, sec.Title)
		if sec.Tagline != "" {
			fmt.Fprintf(&sb, " (%s)", sec.Tagline)
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("section_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section_id"), nil
	}

	sec, ok := s.catalog.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(unknownSection(id, s.catalog)), nil
	}
	return mcp.NewToolResultText(render.SectionMarkdown(sec)), nil
}

func (s *Server) handleSearchSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	hits := site.Search(s.index, query)
	if len(hits) == 0 {
		return mcp.NewToolResultText("No sections match."), nil
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return mcp.NewToolResultText(formatSearchResults(hits)), nil
}

func (s *Server) handleGetCodeBlock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("section_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section_id"), nil
	}
	index, err := request.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: index"), nil
	}

	sec, ok := s.catalog.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(unknownSection(id, s.catalog)), nil
	}
	blocks := sec.CodeBlocks()
	if index < 0 || index >= len(blocks) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"section %q has %d code block(s); index %d is out of range", id, len(blocks), index)), nil
	}
	return mcp.NewToolResultText(blocks[index].Code()), nil
}

func (s *Server) handleExplainCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}

	st, err := s.explainer.Submit(ctx, code)
	switch {
	case errors.Is(err, explainer.ErrInFlight):
		return mcp.NewToolResultError("Another explanation is in progress. Try again when it finishes."), nil
	case err != nil:
		return mcp.NewToolResultError(st.Error), nil
	}
	return mcp.NewToolResultText(st.Explanation), nil
}

func unknownSection(id string, catalog *content.Catalog) string {
	return fmt.Sprintf("No section %q. Available sections: %s.", id, strings.Join(catalog.IDs(), ", "))
}

// formatSearchResults converts search hits into text for AI agent consumption.
func formatSearchResults(hits []site.SearchEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d section(s):\n", len(hits))
	for i, h := range hits {
		fmt.Fprintf(&sb, "\n--- Result %d ---\n", i+1)
		fmt.Fprintf(&sb, "Section: %s\n", h.ID)
		fmt.Fprintf(&sb, "Title: %s\n", h.Title)
		if h.Summary != "" {
			fmt.Fprintf(&sb, "Summary: %s\n", h.Summary)
		}
	}
	return sb.String()
}
