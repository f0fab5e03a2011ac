package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rsdoc-dev/rsdoc/internal/config"
	"github.com/rsdoc-dev/rsdoc/internal/crates"
	"github.com/rsdoc-dev/rsdoc/internal/docsrs"
	"github.com/rsdoc-dev/rsdoc/internal/markdown"
	"github.com/rsdoc-dev/rsdoc/internal/rustdoc"
)

//go:embed instructions.md
var instructions string

type Server struct {
	mcpServer    *server.MCPServer
	fetcher      *docsrs.Fetcher
	crates       *crates.Client
	rewriteLinks bool
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{
		fetcher:      docsrs.NewFetcher(cfg),
		crates:       crates.NewClient(cfg),
		rewriteLinks: cfg.Render.RewriteLinks,
	}

	mcpServer := server.NewMCPServer(
		"rsdoc",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("lookup_crate_docs",
			mcp.WithDescription("Lookup documentation for a Rust crate from docs.rs: crate overview with modules, structs, enums, traits and functions. Version defaults to \"latest\"."),
			mcp.WithString("crateName",
				mcp.Description("Name of the Rust crate"),
				mcp.Required(),
			),
			mcp.WithString("version",
				mcp.Description("Specific version (e.g. \"1.0.0\") or semver range (e.g. \"~4\")"),
			),
			mcp.WithString("target",
				mcp.Description("Target platform (e.g. \"i686-pc-windows-msvc\")"),
			),
			mcp.WithNumber("formatVersion",
				mcp.Description("Rustdoc JSON format version to request"),
			),
		),
		s.handleLookupCrate,
	)

	mcpServer.AddTool(
		mcp.NewTool("lookup_item_docs",
			mcp.WithDescription("Lookup documentation for a specific item (struct, function, trait, ...) in a Rust crate."),
			mcp.WithString("crateName",
				mcp.Description("Name of the Rust crate"),
				mcp.Required(),
			),
			mcp.WithString("itemPath",
				mcp.Description("Path to the item (e.g. \"struct.MyStruct\", \"fn.my_function\" or \"module::MyStruct\")"),
				mcp.Required(),
			),
			mcp.WithString("version",
				mcp.Description("Specific version or semver range"),
			),
			mcp.WithString("target",
				mcp.Description("Target platform"),
			),
		),
		s.handleLookupItem,
	)

	mcpServer.AddTool(
		mcp.NewTool("search_crates",
			mcp.WithDescription("Search crates.io for Rust crates with fuzzy/partial name matching."),
			mcp.WithString("query",
				mcp.Description("Search query (crate name or keyword)"),
				mcp.Required(),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (default 10)"),
			),
		),
		s.handleSearchCrates,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"rsdoc://{crate}/{version}/{path}",
			"Rust documentation item",
			mcp.WithTemplateDescription("Read a specific Rust documentation item. Rewritten doc links use these URIs."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleReadResource,
	)
}

func (s *Server) handleLookupCrate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	crateName, _ := args["crateName"].(string)
	if crateName == "" {
		return mcp.NewToolResultError("missing required parameter: crateName"), nil
	}
	version, _ := args["version"].(string)
	target, _ := args["target"].(string)
	formatVersion := 0
	if fv, ok := args["formatVersion"].(float64); ok {
		formatVersion = int(fv)
	}

	raw, err := s.fetcher.CrateJSON(ctx, crateName, version, target, formatVersion)
	if err != nil {
		return mcp.NewToolResultText(s.notFoundMessage(ctx, crateName, err)), nil
	}

	crate, err := rustdoc.Parse(raw)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}
	text, err := rustdoc.Summarize(crate)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}

	if s.rewriteLinks {
		if root, ok := crate.Index[crate.RootID]; ok {
			text = s.rewriteDocLinks(text, crate, &root, crateName, version)
		}
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleLookupItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	crateName, _ := args["crateName"].(string)
	itemPath, _ := args["itemPath"].(string)
	if crateName == "" || itemPath == "" {
		return mcp.NewToolResultError("missing required parameter: crateName and itemPath are required"), nil
	}
	version, _ := args["version"].(string)
	target, _ := args["target"].(string)

	raw, err := s.fetcher.CrateJSON(ctx, crateName, version, target, 0)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}

	crate, err := rustdoc.Parse(raw)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}
	item, kindOverride, err := rustdoc.FindItem(crate, itemPath)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}
	text := rustdoc.FormatItem(item, kindOverride)

	if s.rewriteLinks {
		text = s.rewriteDocLinks(text, crate, item, crateName, version)
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSearchCrates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if query == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	limit := 0
	if l, ok := args["limit"].(float64); ok {
		limit = int(l)
	}

	results, total, err := s.crates.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText(crates.FormatResults(query, total, results)), nil
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	trimmed := strings.TrimPrefix(uri, "rsdoc://")
	parts := strings.SplitN(trimmed, "/", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}
	crateName, version, itemPath := parts[0], parts[1], parts[2]

	raw, err := s.fetcher.CrateJSON(ctx, crateName, version, "", 0)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", crateName, version, err)
	}
	text, err := rustdoc.DescribeBytes(raw, itemPath)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		},
	}, nil
}

// rewriteDocLinks turns rustdoc intra-doc links in text into rsdoc:// URIs
// that can be read back as resources.
func (s *Server) rewriteDocLinks(text string, crate *rustdoc.Crate, item *rustdoc.Item, crateName, version string) string {
	targets := rustdoc.DocLinkTargets(crate, item)
	if len(targets) == 0 {
		return text
	}
	if version == "" {
		version = "latest"
	}
	uris := make(map[string]string, len(targets))
	for target, fullPath := range targets {
		uris[target] = fmt.Sprintf("rsdoc://%s/%s/%s", crateName, version, fullPath)
	}
	return markdown.Rewrite(text, uris)
}

// notFoundMessage decorates a failed crate lookup with name suggestions from
// crates.io when the crate appears not to exist.
func (s *Server) notFoundMessage(ctx context.Context, crateName string, err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if !strings.Contains(err.Error(), "not found") {
		return msg
	}

	suggestions := s.crates.SuggestSimilar(ctx, crateName, 5)
	var others []string
	for _, name := range suggestions {
		if name != crateName {
			others = append(others, name)
		}
	}
	if len(others) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	b.WriteString("\n\nDid you mean one of these crates?\n")
	for _, name := range others {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return b.String()
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
