package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List the documentation sections in display order with their ids, titles and taglines."),
)

var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get a documentation section rendered as markdown."),
	mcp.WithString("section_id",
		mcp.Required(),
		mcp.Description("Section id as returned by list_sections"),
	),
)

var searchSectionsTool = mcp.NewTool("search_sections",
	mcp.WithDescription("Search the documentation sections for words in titles, text and code."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Words to look for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
)

var getCodeBlockTool = mcp.NewTool("get_code_block",
	mcp.WithDescription("Get the exact text of one code block of a section, as the copy button would copy it."),
	mcp.WithString("section_id",
		mcp.Required(),
		mcp.Description("Section id"),
	),
	mcp.WithNumber("index",
		mcp.Required(),
		mcp.Description("Zero-based index of the code block within the section"),
	),
)

var explainCodeTool = mcp.NewTool("explain_code",
	mcp.WithDescription("Explain a code snippet: high-level summary, breakdown of key sections and notes on complex syntax, as markdown."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("The code to explain"),
	),
)
