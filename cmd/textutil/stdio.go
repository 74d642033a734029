package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/helixml/textutil/internal/mcp"
)

func stdioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This exposes the translate, delete and basename tools to AI assistants.
Logs go to stderr; stdout carries the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := a.client(cmd.Context(), "stdio")
			logger := client.Logger()

			logger.Info("starting MCP server",
				slog.String("version", version),
				slog.Int("buffer_size", client.BufferSize()),
			)

			return mcp.NewServer(client.Transliterator, version, logger).ServeStdio()
		},
	}
}
