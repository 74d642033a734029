// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/helixml/textutil/application/service"
)

// Transformer applies a tr request to in-memory text.
type Transformer interface {
	Transform(req service.Request, text string) (string, error)
}

// Server wraps the MCP server with the textutil tools.
type Server struct {
	mcpServer   *server.MCPServer
	transformer Transformer
	logger      *slog.Logger
}

// NewServer creates a new MCP server exposing translate, delete and basename.
func NewServer(transformer Transformer, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		transformer: transformer,
		logger:      logger,
	}

	mcpServer := server.NewMCPServer(
		"textutil",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	translateTool := mcp.NewTool("translate",
		mcp.WithDescription("Replace each character of text found in set1 with the character at the same position in set2, like tr SET1 SET2"),
		mcp.WithString("set1",
			mcp.Required(),
			mcp.Description("Characters to replace, e.g. a-z or [:lower:]"),
		),
		mcp.WithString("set2",
			mcp.Required(),
			mcp.Description("Replacement characters; the last one repeats when set2 is shorter"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Input text"),
		),
	)
	mcpServer.AddTool(translateTool, s.handleTranslate)

	deleteTool := mcp.NewTool("delete",
		mcp.WithDescription("Remove every character of text found in set1, like tr -d SET1"),
		mcp.WithString("set1",
			mcp.Required(),
			mcp.Description("Characters to remove"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Input text"),
		),
		mcp.WithBoolean("complement",
			mcp.Description("Remove every character NOT in set1 instead (tr -dc)"),
		),
	)
	mcpServer.AddTool(deleteTool, s.handleDelete)

	basenameTool := mcp.NewTool("basename",
		mcp.WithDescription("Strip directory components and an optional suffix from a path"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Path name"),
		),
		mcp.WithString("suffix",
			mcp.Description("Suffix to remove from the final component"),
		),
	)
	mcpServer.AddTool(basenameTool, s.handleBasename)
}

func (s *Server) handleTranslate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set1, err := request.RequireString("set1")
	if err != nil {
		return mcp.NewToolResultError("set1 is required"), nil
	}
	set2, err := request.RequireString("set2")
	if err != nil {
		return mcp.NewToolResultError("set2 is required"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil
	}

	return s.transform("translate", service.NewTranslateRequest(set1, set2), text), nil
}

func (s *Server) handleDelete(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	set1, err := request.RequireString("set1")
	if err != nil {
		return mcp.NewToolResultError("set1 is required"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil
	}
	complement := request.GetBool("complement", false)

	return s.transform("delete", service.NewDeleteRequest(set1, complement), text), nil
}

func (s *Server) transform(tool string, req service.Request, text string) *mcp.CallToolResult {
	out, err := s.transformer.Transform(req, text)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidArgument) {
			s.logger.Error("tool failed", slog.String("tool", tool), slog.Any("error", err))
		}
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(out)
}

func (s *Server) handleBasename(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}

	operands := []string{name}
	if suffix := request.GetString("suffix", ""); suffix != "" {
		operands = append(operands, suffix)
	}

	base, err := service.Basename(operands)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(base), nil
}

// MCPServer returns the underlying MCP server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
